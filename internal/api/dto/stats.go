package dto

// StatsDTO 平台统计, 每次请求实时计算
type StatsDTO struct {
	TotalContents     int64 `json:"total_contents"`
	Trends            int64 `json:"trends"`
	Technologies      int64 `json:"technologies"`
	Inspirations      int64 `json:"inspirations"`
	TotalRatings      int64 `json:"total_ratings"`
	TotalComments     int64 `json:"total_comments"`
	OpportunitySpaces int64 `json:"opportunity_spaces"`
}

type TrendPhaseDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Color       string `json:"color"`
}
