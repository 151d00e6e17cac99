package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	HazardStatusActive   = "active"
	HazardStatusInactive = "inactive"
)

// HazardZone - круговая зона повышенного риска провала грунта
type HazardZone struct {
	ID           uuid.UUID `json:"id" yaml:"-"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description" yaml:"description"`
	Latitude     float64   `json:"latitude" yaml:"latitude"`
	Longitude    float64   `json:"longitude" yaml:"longitude"`
	RadiusMeters float64   `json:"radius_meters" yaml:"radius_meters"`
	RiskScore    float64   `json:"risk_score" yaml:"risk_score"`
	Status       string    `json:"status" yaml:"status"`
	CreatedAt    time.Time `json:"created_at" yaml:"-"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"-"`
}

// Validate проверяет координаты центра, радиус и оценку риска
func (h HazardZone) Validate() error {
	if err := h.Center().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHazard, err)
	}
	if !(h.RadiusMeters > 0) {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidHazard, h.RadiusMeters)
	}
	if !(h.RiskScore >= 0 && h.RiskScore <= 1) {
		return fmt.Errorf("%w: risk score must be within [0,1], got %v", ErrInvalidHazard, h.RiskScore)
	}
	return nil
}

// Center возвращает центр зоны
func (h HazardZone) Center() Coordinate {
	return Coordinate{Latitude: h.Latitude, Longitude: h.Longitude}
}
