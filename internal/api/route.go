package api

import (
	"IdeaVerse/internal/api/middleware"
	"IdeaVerse/internal/pkg/identity"
	"IdeaVerse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, provider identity.Provider) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		ideaGroup := apiGroup.Group("/ideas")
		{
			// 无需登录即可访问的接口
			ideaGroup.GET("", group.IdeaHandler.ListIdeas)
			ideaGroup.GET("/:idea_id", group.IdeaHandler.GetIdea)

			authGroup := ideaGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(provider))
			{
				authGroup.POST("", group.IdeaHandler.CreateIdea)
				authGroup.PUT("/:idea_id", group.IdeaHandler.UpdateIdea)
				authGroup.DELETE("/:idea_id", group.IdeaHandler.DeleteIdea)
			}
		}

		actionGroup := apiGroup.Group("/idea/action")
		{
			actionGroup.POST("/batch/likes", group.IdeaActionHandler.GetBatchLikes)

			authOptGroup := actionGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware(provider))
			{
				authOptGroup.GET("/state/:idea_id", group.IdeaActionHandler.GetActionState)
			}

			authActionGroup := actionGroup.Group("")
			authActionGroup.Use(middleware.AuthMiddleware(provider))
			{
				authActionGroup.POST("/likes/:idea_id", group.IdeaActionHandler.ToggleLike)
				authActionGroup.GET("/liked/:idea_id", group.IdeaActionHandler.GetLiked)
			}
		}

		statsGroup := apiGroup.Group("/stats")
		{
			statsGroup.GET("/categories", group.StatsHandler.GetCategoryStats)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(provider))
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
