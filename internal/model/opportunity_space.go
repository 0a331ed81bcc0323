package model

import (
	"time"
)

type OpportunitySpace struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	CreatedBy   uint64  `gorm:"not null;index:idx_space_created_by"`
	CreatedAt   time.Time
}

func (OpportunitySpace) TableName() string {
	return "opportunity_spaces"
}
