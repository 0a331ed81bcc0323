package handler

import (
	"TrendRadar/internal/api/dto"
	"TrendRadar/internal/pkg/response"
	"TrendRadar/internal/service"

	"github.com/gin-gonic/gin"
)

type OpportunitySpaceHandler struct {
	spaceSvc service.OpportunitySpaceService
}

func NewOpportunitySpaceHandler(spaceSvc service.OpportunitySpaceService) *OpportunitySpaceHandler {
	return &OpportunitySpaceHandler{
		spaceSvc: spaceSvc,
	}
}

func (s *OpportunitySpaceHandler) ListSpaces(c *gin.Context) {
	spaces, err := s.spaceSvc.ListSpaces(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, spaces)
}

func (s *OpportunitySpaceHandler) CreateSpace(c *gin.Context) {
	var req dto.OpportunitySpaceCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	space, err := s.spaceSvc.CreateSpace(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, space)
}
