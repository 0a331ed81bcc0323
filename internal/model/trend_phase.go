package model

// TrendPhase 趋势生命周期阶段, 仅作描述性数据
type TrendPhase struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(50);not null;uniqueIndex:idx_phase_name"`
	Description string `gorm:"type:varchar(255)"`
	Order       int    `gorm:"column:sort_order;not null"`
	Color       string `gorm:"type:varchar(7)"`
}

func (TrendPhase) TableName() string {
	return "trend_phases"
}

// DefaultTrendPhases 首次启动时写入
var DefaultTrendPhases = []TrendPhase{
	{Name: "Emerging", Description: "New, weak signals", Order: 1, Color: "#EF4444"},
	{Name: "Growing", Description: "Growing trends with evidence", Order: 2, Color: "#F59E0B"},
	{Name: "Mainstream", Description: "Established trends, broad adoption", Order: 3, Color: "#10B981"},
	{Name: "Declining", Description: "Decreasing relevance", Order: 4, Color: "#6B7280"},
	{Name: "Legacy", Description: "Historical, kept for reference", Order: 5, Color: "#374151"},
}
