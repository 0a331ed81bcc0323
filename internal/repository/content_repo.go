package repository

import (
	"TrendRadar/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentFilter 列表过滤条件, 空值表示不过滤
type ContentFilter struct {
	ContentType string
	Industry    string
	Status      string
	Search      string
}

type ContentRepo interface {
	CreateContent(ctx context.Context, content *model.Content) error
	GetContent(ctx context.Context, id uint64) (*model.Content, error)
	ListContents(ctx context.Context, filter ContentFilter) ([]*model.Content, error)
	UpdateContent(ctx context.Context, id uint64, updates map[string]any) error
	DeleteContent(ctx context.Context, id uint64) error
	ExistsContent(ctx context.Context, id uint64) (bool, error)
	CountContents(ctx context.Context) (int64, error)
	CountContentsByType(ctx context.Context) (map[model.ContentType]int64, error)
}

type ContentRepoImpl struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) ContentRepo {
	return &ContentRepoImpl{db: db}
}

func (s *ContentRepoImpl) CreateContent(ctx context.Context, content *model.Content) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(content).Error
}

func (s *ContentRepoImpl) GetContent(ctx context.Context, id uint64) (*model.Content, error) {
	var content model.Content
	err := s.db.WithContext(ctx).First(&content, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (s *ContentRepoImpl) ListContents(ctx context.Context, filter ContentFilter) ([]*model.Content, error) {
	query := s.db.WithContext(ctx).Model(&model.Content{})

	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR short_description LIKE ? OR long_description LIKE ?", like, like, like)
	}

	contents := make([]*model.Content, 0)
	err := query.Order("created_at DESC").Order("id DESC").Find(&contents).Error
	return contents, err
}

func (s *ContentRepoImpl) UpdateContent(ctx context.Context, id uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Content{ID: id}).Updates(updates).Error
}

// DeleteContent 同一事务内删除评分、评论与内容本身
func (s *ContentRepoImpl) DeleteContent(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&model.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Content{}, id).Error
	})
}

func (s *ContentRepoImpl) ExistsContent(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Content{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *ContentRepoImpl) CountContents(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Content{}).Count(&count).Error
	return count, err
}

func (s *ContentRepoImpl) CountContentsByType(ctx context.Context) (map[model.ContentType]int64, error) {
	var rows []struct {
		ContentType model.ContentType
		Total       int64
	}
	err := s.db.WithContext(ctx).Model(&model.Content{}).
		Select("content_type, COUNT(*) AS total").
		Group("content_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[model.ContentType]int64, len(model.ContentTypes))
	for _, ct := range model.ContentTypes {
		counts[ct] = 0
	}
	for _, row := range rows {
		counts[row.ContentType] = row.Total
	}
	return counts, nil
}
