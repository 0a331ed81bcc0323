package repository

import (
	"TrendRadar/internal/model"
	"context"

	"gorm.io/gorm"
)

type OpportunitySpaceRepo interface {
	CreateSpace(ctx context.Context, space *model.OpportunitySpace) error
	ListSpaces(ctx context.Context) ([]*model.OpportunitySpace, error)
	CountSpaces(ctx context.Context) (int64, error)
}

type OpportunitySpaceRepoImpl struct {
	db *gorm.DB
}

func NewOpportunitySpaceRepo(db *gorm.DB) OpportunitySpaceRepo {
	return &OpportunitySpaceRepoImpl{db: db}
}

func (s *OpportunitySpaceRepoImpl) CreateSpace(ctx context.Context, space *model.OpportunitySpace) error {
	return s.db.WithContext(ctx).Create(space).Error
}

func (s *OpportunitySpaceRepoImpl) ListSpaces(ctx context.Context) ([]*model.OpportunitySpace, error) {
	spaces := make([]*model.OpportunitySpace, 0)
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&spaces).Error
	return spaces, err
}

func (s *OpportunitySpaceRepoImpl) CountSpaces(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.OpportunitySpace{}).Count(&count).Error
	return count, err
}
