package service

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/model"
	"TrendRadar/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

// StatsService 平台统计, 不做缓存
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
	ListTrendPhases(ctx context.Context) ([]*dto.TrendPhaseDTO, error)
}

type StatsServiceImpl struct {
	contentRepo    repository.ContentRepo
	engagementRepo repository.EngagementRepo
	spaceRepo      repository.OpportunitySpaceRepo
	phaseRepo      repository.TrendPhaseRepo
}

func NewStatsService(
	contentRepo repository.ContentRepo,
	engagementRepo repository.EngagementRepo,
	spaceRepo repository.OpportunitySpaceRepo,
	phaseRepo repository.TrendPhaseRepo,
) StatsService {
	return &StatsServiceImpl{
		contentRepo:    contentRepo,
		engagementRepo: engagementRepo,
		spaceRepo:      spaceRepo,
		phaseRepo:      phaseRepo,
	}
}

func (s *StatsServiceImpl) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	total, err := s.contentRepo.CountContents(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.contentRepo.CountContentsByType(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.engagementRepo.CountRatings(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := s.engagementRepo.CountComments(ctx)
	if err != nil {
		return nil, err
	}
	spaces, err := s.spaceRepo.CountSpaces(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsDTO{
		TotalContents:     total,
		Trends:            byType[model.ContentTypeTrend],
		Technologies:      byType[model.ContentTypeTechnology],
		Inspirations:      byType[model.ContentTypeInspiration],
		TotalRatings:      ratings,
		TotalComments:     comments,
		OpportunitySpaces: spaces,
	}, nil
}

func (s *StatsServiceImpl) ListTrendPhases(ctx context.Context) ([]*dto.TrendPhaseDTO, error) {
	phases, err := s.phaseRepo.ListPhases(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.TrendPhaseDTO, 0, len(phases))
	if err = copier.Copy(&result, &phases); err != nil {
		return nil, err
	}
	return result, nil
}
