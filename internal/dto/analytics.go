package dto

import "time"

type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type IntentCount struct {
	Intent string `json:"intent"`
	Count  int64  `json:"count"`
}

type QueryCount struct {
	Query       string    `json:"query"`
	Count       int64     `json:"count"`
	LastAskedAt time.Time `json:"last_asked_at"`
}

type OverviewResponse struct {
	TotalChats int64         `json:"total_chats"`
	BySource   []SourceCount `json:"by_source"`
	TopIntents []IntentCount `json:"top_intents"`
}

type DashboardStatsResponse struct {
	TotalChats int64 `json:"total_chats"`
	Faqs       int64 `json:"faqs"`
	Schemes    int64 `json:"schemes"`
}

type ClassifyResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}
