package handler

import (
	"IdeaVerse/internal/pkg/response"
	"IdeaVerse/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	actionSvc service.IdeaActionService
}

func NewStatsHandler(actionSvc service.IdeaActionService) *StatsHandler {
	return &StatsHandler{
		actionSvc: actionSvc,
	}
}

// GetCategoryStats 获取分类统计快照
func (s *StatsHandler) GetCategoryStats(c *gin.Context) {
	stats, err := s.actionSvc.GetCategoryStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
