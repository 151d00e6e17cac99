package v1

import (
	"time"

	"github.com/google/uuid"
)

// SafeRouteRequest DTO для построения маршрута
// @Description DTO для построения маршрута
type SafeRouteRequest struct {
	StartLat *float64 `json:"start_lat" validate:"required,latitude"`
	StartLng *float64 `json:"start_lng" validate:"required,longitude"`
	EndLat   *float64 `json:"end_lat" validate:"required,latitude"`
	EndLng   *float64 `json:"end_lng" validate:"required,longitude"`

	// AvoidHighRisk - по умолчанию true
	AvoidHighRisk *bool `json:"avoid_high_risk,omitempty"`
}

// WaypointResponse - точка маршрута
type WaypointResponse struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type"`
}

// AvoidedRiskResponse - обойденная зона риска
type AvoidedRiskResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	RiskScore    float64   `json:"risk_score"`
	Reason       string    `json:"reason"`
}

// SafeRouteResponse DTO ответа с маршрутом
// @Description DTO ответа с маршрутом
type SafeRouteResponse struct {
	Route            []WaypointResponse    `json:"route"`
	Distance         float64               `json:"distance"`
	Duration         int                   `json:"duration"`
	RiskAreasAvoided []AvoidedRiskResponse `json:"risk_areas_avoided"`
	Warnings         []string              `json:"warnings"`
	RouteType        string                `json:"route_type"`
	Outcome          string                `json:"outcome"`
	Summary          string                `json:"summary"`
}

// LocationRiskRequest DTO для оценки риска в точке
// @Description DTO для оценки риска в точке
type LocationRiskRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// NearbyRiskResponse - зона рядом с точкой
type NearbyRiskResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	RadiusMeters   float64   `json:"radius_meters"`
	RiskScore      float64   `json:"risk_score"`
	DistanceMeters float64   `json:"distance_meters"`
	Inside         bool      `json:"inside"`
}

// LocationRiskResponse DTO ответа с оценкой риска
// @Description DTO ответа с оценкой риска
type LocationRiskResponse struct {
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Probability float64              `json:"probability"`
	RiskLevel   string               `json:"risk_level"`
	Color       string               `json:"color"`
	Label       string               `json:"label"`
	IsDangerous bool                 `json:"is_dangerous"`
	NearbyRisks []NearbyRiskResponse `json:"nearby_risks"`
}

// RiskClassResponse DTO классификации вероятности
// @Description DTO классификации вероятности
type RiskClassResponse struct {
	Probability float64 `json:"probability"`
	RiskLevel   string  `json:"risk_level"`
	Color       string  `json:"color"`
	Label       string  `json:"label"`
}

// CreateHazardRequest DTO для создания зоны риска
// @Description DTO для создания зоны риска
type CreateHazardRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Description  string   `json:"description,omitempty"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,gt=0"`
	RiskScore    *float64 `json:"risk_score" validate:"required,gte=0,lte=1"`
}

// UpdateHazardRequest DTO для обновления зоны риска
// @Description DTO для обновления зоны риска
type UpdateHazardRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Description  string   `json:"description,omitempty"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64  `json:"radius_meters" validate:"required,gt=0"`
	RiskScore    *float64 `json:"risk_score" validate:"required,gte=0,lte=1"`
	Status       string   `json:"status" validate:"required,oneof=active inactive"`
}

// HazardResponse DTO для ответа с информацией о зоне риска
// @Description DTO для ответа с информацией о зоне риска
type HazardResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	RiskScore    float64   `json:"risk_score"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}
