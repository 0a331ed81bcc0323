package dto

import "time"

// RatingCreateDTO value 必须为 1-5 的整数, 3.5 或 "abc" 在解码阶段即失败
type RatingCreateDTO struct {
	UserID   *uint64 `json:"user_id" binding:"required"`
	Value    *int    `json:"value" binding:"required,min=1,max=5"`
	Criteria *string `json:"criteria" binding:"omitempty,max=100"`
}

type RatingDTO struct {
	ID        uint64    `json:"id"`
	ContentID uint64    `json:"content_id"`
	UserID    uint64    `json:"user_id"`
	Value     int       `json:"value"`
	Criteria  *string   `json:"criteria"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentCreateDTO struct {
	UserID *uint64 `json:"user_id" binding:"required"`
	Text   *string `json:"text" binding:"required"`
}

type CommentDTO struct {
	ID        uint64    `json:"id"`
	ContentID uint64    `json:"content_id"`
	UserID    uint64    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
