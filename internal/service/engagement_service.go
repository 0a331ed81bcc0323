package service

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/model"
	"TrendRadar/internal/pkg/util"
	"TrendRadar/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type EngagementService interface {
	RateContent(ctx context.Context, contentID uint64, ratingDTO *dto.RatingCreateDTO) (*dto.RatingDTO, error)
	CommentContent(ctx context.Context, contentID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, contentID uint64) ([]*dto.CommentDTO, error)
}

type EngagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	contentRepo    repository.ContentRepo
	userRepo       repository.UserRepo
}

func NewEngagementService(engagementRepo repository.EngagementRepo, contentRepo repository.ContentRepo, userRepo repository.UserRepo) EngagementService {
	return &EngagementServiceImpl{
		engagementRepo: engagementRepo,
		contentRepo:    contentRepo,
		userRepo:       userRepo,
	}
}

// RateContent 同一 (content, user, criteria) 重复评分时覆盖原值
func (s *EngagementServiceImpl) RateContent(ctx context.Context, contentID uint64, ratingDTO *dto.RatingCreateDTO) (*dto.RatingDTO, error) {
	if err := s.ensureContent(ctx, contentID); err != nil {
		return nil, err
	}
	if *ratingDTO.Value < 1 || *ratingDTO.Value > 5 {
		return nil, ErrRatingValue
	}
	if err := s.ensureUser(ctx, *ratingDTO.UserID); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		ContentID: contentID,
		UserID:    *ratingDTO.UserID,
		Value:     *ratingDTO.Value,
		Criteria:  util.DerefString(ratingDTO.Criteria),
	}
	if err := s.engagementRepo.UpsertRating(ctx, rating); err != nil {
		return nil, err
	}

	ratingDTOOut := &dto.RatingDTO{}
	if err := copier.Copy(ratingDTOOut, rating); err != nil {
		return nil, err
	}
	// 空串仅用于唯一索引, 对外仍是 null
	ratingDTOOut.Criteria = util.PtrString(rating.Criteria)
	return ratingDTOOut, nil
}

func (s *EngagementServiceImpl) CommentContent(ctx context.Context, contentID uint64, commentDTO *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if err := s.ensureContent(ctx, contentID); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, *commentDTO.UserID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ContentID: contentID,
		UserID:    *commentDTO.UserID,
		Text:      *commentDTO.Text,
	}
	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	out := &dto.CommentDTO{}
	if err := copier.Copy(out, comment); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EngagementServiceImpl) GetComments(ctx context.Context, contentID uint64) ([]*dto.CommentDTO, error) {
	if err := s.ensureContent(ctx, contentID); err != nil {
		return nil, err
	}

	comments, err := s.engagementRepo.GetCommentsByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CommentDTO, 0, len(comments))
	if err = copier.Copy(&result, &comments); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *EngagementServiceImpl) ensureContent(ctx context.Context, contentID uint64) error {
	exists, err := s.contentRepo.ExistsContent(ctx, contentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContentNotFound
	}
	return nil
}

func (s *EngagementServiceImpl) ensureUser(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
