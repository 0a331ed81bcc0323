package handler

import (
	"TrendRadar/internal/pkg/response"
	"TrendRadar/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

func (s *StatsHandler) GetStats(c *gin.Context) {
	stats, err := s.statsSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) ListTrendPhases(c *gin.Context) {
	phases, err := s.statsSvc.ListTrendPhases(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, phases)
}
