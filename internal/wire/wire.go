package wire

import (
	"TrendRadar/internal/api"
	"TrendRadar/internal/api/config"
	"TrendRadar/internal/api/handler"
	"TrendRadar/internal/pkg/preview"
	"TrendRadar/internal/pkg/storage"
	"TrendRadar/internal/repository"
	"TrendRadar/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, cfg *config.Config, store storage.FileStore) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	contentRepo := repository.NewContentRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	spaceRepo := repository.NewOpportunitySpaceRepo(db)
	phaseRepo := repository.NewTrendPhaseRepo(db)

	fetcher := preview.NewFetcher(time.Duration(cfg.Preview.TimeoutSeconds)*time.Second, cfg.Preview.UserAgent)

	userService := service.NewUserService(userRepo)
	contentService := service.NewContentService(contentRepo, userRepo, store)
	engagementService := service.NewEngagementService(engagementRepo, contentRepo, userRepo)
	spaceService := service.NewOpportunitySpaceService(spaceRepo, userRepo)
	statsService := service.NewStatsService(contentRepo, engagementRepo, spaceRepo, phaseRepo)
	previewService := service.NewPreviewService(fetcher)

	handlers := &api.HandlersGroup{
		UserHandler:             handler.NewUserHandler(userService),
		ContentHandler:          handler.NewContentHandler(contentService),
		EngagementHandler:       handler.NewEngagementHandler(engagementService),
		OpportunitySpaceHandler: handler.NewOpportunitySpaceHandler(spaceService),
		StatsHandler:            handler.NewStatsHandler(statsService),
		PreviewHandler:          handler.NewPreviewHandler(previewService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
