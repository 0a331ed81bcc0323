package handler

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/pkg/response"
	"TrendRadar/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

// RateContent 新增与覆盖均返回 201
func (s *EngagementHandler) RateContent(c *gin.Context) {
	contentID, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RatingCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	rating, err := s.engagementSvc.RateContent(c.Request.Context(), contentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, rating)
}

func (s *EngagementHandler) CommentContent(c *gin.Context) {
	contentID, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CommentCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.engagementSvc.CommentContent(c.Request.Context(), contentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

func (s *EngagementHandler) GetComments(c *gin.Context) {
	contentID, err := parseID(c, "id", service.ErrContentNotFound)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := s.engagementSvc.GetComments(c.Request.Context(), contentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}
