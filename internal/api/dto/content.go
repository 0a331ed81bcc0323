package dto

import (
	"TrendRadar/internal/model"
	"time"
)

// ContentDTO 内容返回体
type ContentDTO struct {
	ID               uint64              `json:"id"`
	Title            string              `json:"title"`
	ShortDescription *string             `json:"short_description"`
	LongDescription  *string             `json:"long_description"`
	ContentType      model.ContentType   `json:"content_type"`
	ImageURL         *string             `json:"image_url"`
	CreatedBy        *uint64             `json:"created_by"`
	Industry         *string             `json:"industry"`
	TimeHorizon      *string             `json:"time_horizon"`
	Status           model.ContentStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ContentListQuery GET /contents 查询参数, status 缺省为 approved
type ContentListQuery struct {
	Type     string  `form:"type"`
	Industry string  `form:"industry"`
	Status   *string `form:"status"`
	Search   string  `form:"search"`
}

// ContentCreateDTO POST /contents 完整字段
type ContentCreateDTO struct {
	Title            string  `json:"title" binding:"required,max=255"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	ContentType      string  `json:"content_type" binding:"required,oneof=trend technology inspiration"`
	ImageURL         *string `json:"image_url" binding:"omitempty,max=1024"`
	CreatedBy        *uint64 `json:"created_by" binding:"required"`
	Industry         *string `json:"industry" binding:"omitempty,max=100"`
	TimeHorizon      *string `json:"time_horizon" binding:"omitempty,max=50"`
	Status           string  `json:"status" binding:"omitempty,oneof=draft approved"`
}

// ContentSlimCreateDTO POST /content, Web 端 "添加" 页使用.
// tags/source_type/source_url/site 目前只接收不落库
type ContentSlimCreateDTO struct {
	Type       string   `json:"type" validate:"oneof=trend technology inspiration"`
	Title      string   `json:"title" validate:"required,max=255"`
	Summary    *string  `json:"summary"`
	Image      *string  `json:"image" validate:"omitempty,max=1024"`
	CreatedBy  *uint64  `json:"created_by"`
	Status     string   `json:"status" validate:"oneof=draft approved"`
	Tags       []string `json:"tags"`
	SourceType string   `json:"source_type"`
	SourceURL  string   `json:"source_url"`
	Site       string   `json:"site"`
}

// ContentUpdateDTO PUT /contents/:id, 只更新请求体中出现的字段
type ContentUpdateDTO struct {
	Title            OptionalString `json:"title"`
	ShortDescription OptionalString `json:"short_description"`
	LongDescription  OptionalString `json:"long_description"`
	ImageURL         OptionalString `json:"image_url"`
	Industry         OptionalString `json:"industry"`
	TimeHorizon      OptionalString `json:"time_horizon"`
	Status           OptionalString `json:"status"`
}

// ContentUploadForm POST /content/upload 的表单字段, 文件单独读取
type ContentUploadForm struct {
	Type      string  `form:"type"`
	Title     string  `form:"title"`
	Status    string  `form:"status"`
	CreatedBy *string `form:"created_by"`
}

// UploadFile 已打开的上传文件
type UploadFile struct {
	Filename    string
	Size        int64
	ContentType string
}

// ContentUploadDTO 上传返回体
type ContentUploadDTO struct {
	OK       bool        `json:"ok"`
	Filename string      `json:"filename"`
	Content  *ContentDTO `json:"content"`
}
