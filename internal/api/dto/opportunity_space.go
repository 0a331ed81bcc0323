package dto

import "time"

type OpportunitySpaceCreateDTO struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description"`
	CreatedBy   *uint64 `json:"created_by" binding:"required"`
}

type OpportunitySpaceDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedBy   uint64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
