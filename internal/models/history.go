package models

import (
	"time"
)

// LocationCheck представляет запись о проверке риска в точке
type LocationCheck struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Probability float64   `json:"probability"`
	IsDangerous bool      `json:"is_dangerous"`
	CheckedAt   time.Time `json:"checked_at"`
}

// RouteSearch - запись истории поиска маршрута
type RouteSearch struct {
	ID              int64        `json:"id"`
	UserID          string       `json:"user_id"`
	Start           Coordinate   `json:"start"`
	End             Coordinate   `json:"end"`
	AvoidHighRisk   bool         `json:"avoid_high_risk"`
	RouteType       RouteType    `json:"route_type"`
	Outcome         PlanOutcome  `json:"outcome"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	AvoidedCount    int          `json:"avoided_count"`
	Path            []Coordinate `json:"-"`
	SearchedAt      time.Time    `json:"searched_at"`
}

// History - недавняя активность пользователя
type History struct {
	RouteSearches  []*RouteSearch   `json:"route_searches"`
	LocationChecks []*LocationCheck `json:"location_checks"`
}
