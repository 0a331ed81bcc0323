package handler

import (
	"TrendRadar/internal/pkg/response"
	"TrendRadar/internal/service"

	"github.com/gin-gonic/gin"
)

type PreviewHandler struct {
	previewSvc service.PreviewService
}

func NewPreviewHandler(previewSvc service.PreviewService) *PreviewHandler {
	return &PreviewHandler{
		previewSvc: previewSvc,
	}
}

// Preview 抓取失败同样返回 200, 错误放在 error 字段
func (s *PreviewHandler) Preview(c *gin.Context) {
	meta, err := s.previewSvc.Preview(c.Request.Context(), c.Query("url"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, meta)
}
