package job

import (
	"IdeaVerse/internal/service"
	"context"
	log "log/slog"
	"time"
)

// IdeaStatsJob 周期性重算分类统计快照并写入 redis
type IdeaStatsJob struct {
	actionSvc service.IdeaActionService
}

func NewIdeaStatsJob(actionSvc service.IdeaActionService) *IdeaStatsJob {
	return &IdeaStatsJob{
		actionSvc: actionSvc,
	}
}

func (s *IdeaStatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	if err := s.actionSvc.RefreshCategoryStats(ctx); err != nil {
		log.Error("idea stats refresh failed", "err", err)
		return
	}
	log.Info("idea stats refreshed", "latency", time.Since(start))
}
