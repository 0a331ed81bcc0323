package model

import (
	"time"
)

// Rating 每个 (content, user, criteria) 至多一条, criteria 未指定时存空串
type Rating struct {
	ID        uint64 `gorm:"primaryKey"`
	ContentID uint64 `gorm:"not null;uniqueIndex:idx_rating_owner,priority:1"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_rating_owner,priority:2"`
	Criteria  string `gorm:"type:varchar(100);not null;default:'';uniqueIndex:idx_rating_owner,priority:3"`
	Value     int    `gorm:"not null;check:value >= 1 AND value <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Rating) TableName() string {
	return "ratings"
}
