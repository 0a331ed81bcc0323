package database

import (
	"TrendRadar/internal/model"
	"context"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Models 需要迁移的全部表, 按外键依赖排序
var Models = []any{
	&model.User{},
	&model.Content{},
	&model.Rating{},
	&model.Comment{},
	&model.OpportunitySpace{},
	&model.TrendPhase{},
}

// Migrate 建表并写入默认趋势阶段
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return SeedTrendPhases(ctx, db)
}

func SeedTrendPhases(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.TrendPhase{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	phases := make([]model.TrendPhase, len(model.DefaultTrendPhases))
	copy(phases, model.DefaultTrendPhases)
	if err := db.WithContext(ctx).Create(&phases).Error; err != nil {
		return fmt.Errorf("failed to seed trend phases: %w", err)
	}
	log.InfoContext(ctx, "default trend phases seeded", "count", len(phases))
	return nil
}
