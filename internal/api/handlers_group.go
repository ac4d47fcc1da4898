package api

import "IdeaVerse/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	IdeaHandler       *handler.IdeaHandler
	IdeaActionHandler *handler.IdeaActionHandler
	MediaHandler      *handler.MediaHandler
	StatsHandler      *handler.StatsHandler
}
