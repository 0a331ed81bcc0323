package api

import "TrendRadar/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler             *handler.UserHandler
	ContentHandler          *handler.ContentHandler
	EngagementHandler       *handler.EngagementHandler
	OpportunitySpaceHandler *handler.OpportunitySpaceHandler
	StatsHandler            *handler.StatsHandler
	PreviewHandler          *handler.PreviewHandler
}
