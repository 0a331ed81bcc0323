package api

import (
	"TrendRadar/internal/api/handler"
	"TrendRadar/internal/api/middleware"
	"TrendRadar/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter 每个 method+path 只注册一次, gin 遇到重复注册会直接 panic
func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})
	r.MaxMultipartMemory = 32 << 20

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.GET("/health", handler.Health)

	apiGroup := r.Group("/api")
	{
		userGroup := apiGroup.Group("/users")
		{
			userGroup.GET("", group.UserHandler.ListUsers)
			userGroup.POST("", group.UserHandler.CreateUser)
			userGroup.GET("/:id", group.UserHandler.GetUser)
			userGroup.PUT("/:id", group.UserHandler.UpdateUser)
		}

		contentsGroup := apiGroup.Group("/contents")
		{
			contentsGroup.GET("", group.ContentHandler.ListContents)
			contentsGroup.POST("", group.ContentHandler.CreateContent)
			contentsGroup.GET("/:id", group.ContentHandler.GetContent)
			contentsGroup.PUT("/:id", group.ContentHandler.UpdateContent)
			contentsGroup.DELETE("/:id", group.ContentHandler.DeleteContent)
			contentsGroup.POST("/:id/ratings", group.EngagementHandler.RateContent)
			contentsGroup.POST("/:id/comments", group.EngagementHandler.CommentContent)
			contentsGroup.GET("/:id/comments", group.EngagementHandler.GetComments)
		}

		// Web 端添加页使用的轻量接口
		contentGroup := apiGroup.Group("/content")
		{
			contentGroup.POST("", group.ContentHandler.CreateSlimContent)
			contentGroup.POST("/upload", group.ContentHandler.UploadContent)
			contentGroup.GET("/preview", group.PreviewHandler.Preview)
		}

		spaceGroup := apiGroup.Group("/opportunity-spaces")
		{
			spaceGroup.GET("", group.OpportunitySpaceHandler.ListSpaces)
			spaceGroup.POST("", group.OpportunitySpaceHandler.CreateSpace)
		}

		apiGroup.GET("/stats", group.StatsHandler.GetStats)
		apiGroup.GET("/trend-phases", group.StatsHandler.ListTrendPhases)
	}

	return r
}
