package repository

import (
	"TrendRadar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type EngagementRepo interface {
	UpsertRating(ctx context.Context, rating *model.Rating) error
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByContentID(ctx context.Context, contentID uint64) ([]*model.Comment, error)
	CountRatings(ctx context.Context) (int64, error)
	CountComments(ctx context.Context) (int64, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db: db}
}

// UpsertRating 按 (content_id, user_id, criteria) 覆盖已有评分, 不存在则新增.
// 返回时 rating 为落库后的完整记录
func (s *EngagementRepoImpl) UpsertRating(ctx context.Context, rating *model.Rating) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Rating
		err := tx.Where("content_id = ? AND user_id = ? AND criteria = ?",
			rating.ContentID, rating.UserID, rating.Criteria).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(rating).Error
		}
		if err != nil {
			return err
		}

		existing.Value = rating.Value
		if err = tx.Model(&existing).Update("value", rating.Value).Error; err != nil {
			return err
		}
		*rating = existing
		return nil
	})
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *EngagementRepoImpl) GetCommentsByContentID(ctx context.Context, contentID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC").Order("id DESC").
		Find(&comments).Error
	return comments, err
}

func (s *EngagementRepoImpl) CountRatings(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Rating{}).Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CountComments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error
	return count, err
}
