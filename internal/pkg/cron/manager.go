package cron

import (
	"IdeaVerse/internal/api/config"
	"IdeaVerse/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine       *cron.Cron
	ideaStatsJob *job.IdeaStatsJob
}

func NewCronManager(ideaStatsJob *job.IdeaStatsJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		ideaStatsJob: ideaStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	schedule := config.Cfg.Stats.Schedule
	if schedule == "" {
		schedule = "@hourly"
	}

	if _, err := s.engine.AddJob(schedule, s.ideaStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
