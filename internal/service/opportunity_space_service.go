package service

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/model"
	"TrendRadar/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type OpportunitySpaceService interface {
	ListSpaces(ctx context.Context) ([]*dto.OpportunitySpaceDTO, error)
	CreateSpace(ctx context.Context, createDTO *dto.OpportunitySpaceCreateDTO) (*dto.OpportunitySpaceDTO, error)
}

type OpportunitySpaceServiceImpl struct {
	spaceRepo repository.OpportunitySpaceRepo
	userRepo  repository.UserRepo
}

func NewOpportunitySpaceService(spaceRepo repository.OpportunitySpaceRepo, userRepo repository.UserRepo) OpportunitySpaceService {
	return &OpportunitySpaceServiceImpl{
		spaceRepo: spaceRepo,
		userRepo:  userRepo,
	}
}

func (s *OpportunitySpaceServiceImpl) ListSpaces(ctx context.Context) ([]*dto.OpportunitySpaceDTO, error) {
	spaces, err := s.spaceRepo.ListSpaces(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.OpportunitySpaceDTO, 0, len(spaces))
	if err = copier.Copy(&result, &spaces); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *OpportunitySpaceServiceImpl) CreateSpace(ctx context.Context, createDTO *dto.OpportunitySpaceCreateDTO) (*dto.OpportunitySpaceDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, *createDTO.CreatedBy)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	space := &model.OpportunitySpace{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		CreatedBy:   user.ID,
	}
	if err = s.spaceRepo.CreateSpace(ctx, space); err != nil {
		return nil, err
	}

	out := &dto.OpportunitySpaceDTO{}
	if err = copier.Copy(out, space); err != nil {
		return nil, err
	}
	return out, nil
}
