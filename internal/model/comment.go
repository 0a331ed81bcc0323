package model

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	ContentID uint64    `gorm:"not null;index:idx_comment_content"`
	UserID    uint64    `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index:idx_comment_created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
