package wire

import (
	"IdeaVerse/internal/api"
	"IdeaVerse/internal/api/config"
	"IdeaVerse/internal/api/handler"
	"IdeaVerse/internal/job"
	"IdeaVerse/internal/pkg/cron"
	"IdeaVerse/internal/pkg/identity"
	"IdeaVerse/internal/pkg/mongo"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"IdeaVerse/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	Mongo   *mongodriver.Database
	CronMgr *cron.Manager
}

func BuildApplication(db *mongodriver.Database, cfg *config.Config) (*ApplicationContainer, error) {
	ideaRepo := mongo.NewIdeaRepo(db)

	provider, err := identity.NewClerkProvider(cfg.Auth)
	if err != nil {
		return nil, err
	}

	ideaService := service.NewIdeaService(ideaRepo)
	actionService := service.NewIdeaActionService(ideaRepo)

	handlers := &api.HandlersGroup{
		IdeaHandler:       handler.NewIdeaHandler(ideaService),
		IdeaActionHandler: handler.NewIdeaActionHandler(actionService),
		MediaHandler:      handler.NewMediaHandler(),
		StatsHandler:      handler.NewStatsHandler(actionService),
	}

	router := api.SetupRouter(handlers, provider)

	cronMgr := cron.NewCronManager(job.NewIdeaStatsJob(actionService))

	return &ApplicationContainer{
		Router:  router,
		Mongo:   db,
		CronMgr: cronMgr,
	}, nil
}
