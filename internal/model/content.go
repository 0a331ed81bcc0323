package model

import (
	"time"
)

// ContentType 内容类型
type ContentType string

const (
	ContentTypeTrend       ContentType = "trend"
	ContentTypeTechnology  ContentType = "technology"
	ContentTypeInspiration ContentType = "inspiration"
)

// ContentTypes 按展示顺序排列
var ContentTypes = []ContentType{ContentTypeTrend, ContentTypeTechnology, ContentTypeInspiration}

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeTrend, ContentTypeTechnology, ContentTypeInspiration:
		return true
	}
	return false
}

// ContentStatus 审核状态
type ContentStatus string

const (
	ContentStatusDraft    ContentStatus = "draft"
	ContentStatusApproved ContentStatus = "approved"
)

func (s ContentStatus) Valid() bool {
	return s == ContentStatusDraft || s == ContentStatusApproved
}

type Content struct {
	ID               uint64        `gorm:"primaryKey"`
	Title            string        `gorm:"type:varchar(255);not null"`
	ShortDescription *string       `gorm:"type:text"`
	LongDescription  *string       `gorm:"type:text"`
	ContentType      ContentType   `gorm:"type:varchar(20);not null;index:idx_content_type;check:content_type IN ('trend','technology','inspiration')"`
	ImageURL         *string       `gorm:"type:varchar(1024)"`
	CreatedBy        *uint64       `gorm:"index:idx_created_by"`
	Industry         *string       `gorm:"type:varchar(100);index:idx_industry"`
	TimeHorizon      *string       `gorm:"type:varchar(50)"`
	Status           ContentStatus `gorm:"type:varchar(20);not null;default:'draft';index:idx_status;check:status IN ('draft','approved')"`
	CreatedAt        time.Time     `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time

	// 关联关系
	Creator  *User     `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:SET NULL"`
	Ratings  []Rating  `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Content) TableName() string {
	return "contents"
}
