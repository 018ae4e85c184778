package dto

import "time"

type ActivityResponse struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Package string    `json:"package"`
	Time    time.Time `json:"time"`
	Type    string    `json:"type"`
}

type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

type StatsResponse struct {
	TotalDeliveries  int            `json:"total_deliveries"`
	OnTimeRate       float64        `json:"on_time_rate"`
	SatisfactionRate float64        `json:"satisfaction_rate"`
	StatusBreakdown  map[string]int `json:"status_breakdown"`
}

type AdminResponse struct {
	IsAdmin bool `json:"is_admin"`
}
