package testutil

import (
	"TrendRadar/internal/model"
	"TrendRadar/internal/pkg/database"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB 每个测试独立的内存 SQLite, 已完成迁移
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := database.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(context.Background(), db); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedUser(tb testing.TB, db *gorm.DB, username string) *model.User {
	tb.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
	}
	if err := db.Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedContent createdAt 用于控制排序
func SeedContent(tb testing.TB, db *gorm.DB, userID uint64, title string, ct model.ContentType, status model.ContentStatus, createdAt time.Time) *model.Content {
	tb.Helper()
	c := &model.Content{
		Title:       title,
		ContentType: ct,
		Status:      status,
		CreatedBy:   &userID,
		CreatedAt:   createdAt,
	}
	if err := db.Omit("Creator", "Ratings", "Comments").Create(c).Error; err != nil {
		tb.Fatalf("seed content: %v", err)
	}
	return c
}

func Count(tb testing.TB, db *gorm.DB, m any) int64 {
	tb.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		tb.Fatalf("count: %v", err)
	}
	return n
}
