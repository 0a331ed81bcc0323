package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(80);not null;uniqueIndex:idx_username"`
	Email     string `gorm:"type:varchar(120);not null;uniqueIndex:idx_email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
