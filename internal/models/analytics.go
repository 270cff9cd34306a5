package models

type KPI struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Trend       string `json:"trend"` // up, down
	Description string `json:"description"`
}

type FunnelStage struct {
	Stage      string `json:"stage"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type SourcePerformance struct {
	Source         string  `json:"source"`
	Applications   int     `json:"applications"`
	Hires          int     `json:"hires"`
	Cost           string  `json:"cost"`
	ConversionRate float64 `json:"conversion_rate"`
}

type DiversityMetric struct {
	Metric  string `json:"metric"`
	Current string `json:"current"`
	Target  string `json:"target"`
	Status  string `json:"status"` // on-track, behind, exceeded
}

type OfferStats struct {
	Pending      int `json:"pending"`
	ExpiringSoon int `json:"expiring_soon"`
	Accepted     int `json:"accepted"`
	Total        int `json:"total"`
}
