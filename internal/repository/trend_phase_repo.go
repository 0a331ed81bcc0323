package repository

import (
	"TrendRadar/internal/model"
	"context"

	"gorm.io/gorm"
)

type TrendPhaseRepo interface {
	ListPhases(ctx context.Context) ([]*model.TrendPhase, error)
}

type TrendPhaseRepoImpl struct {
	db *gorm.DB
}

func NewTrendPhaseRepo(db *gorm.DB) TrendPhaseRepo {
	return &TrendPhaseRepoImpl{db: db}
}

func (s *TrendPhaseRepoImpl) ListPhases(ctx context.Context) ([]*model.TrendPhase, error) {
	phases := make([]*model.TrendPhase, 0)
	err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&phases).Error
	return phases, err
}
