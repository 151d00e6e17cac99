package v1

import (
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
)

// DTOToRouteRequest преобразует запрос маршрута в доменную модель
func DTOToRouteRequest(dto SafeRouteRequest) models.RouteRequest {
	avoid := true
	if dto.AvoidHighRisk != nil {
		avoid = *dto.AvoidHighRisk
	}
	return models.RouteRequest{
		Start:         models.Coordinate{Latitude: *dto.StartLat, Longitude: *dto.StartLng},
		End:           models.Coordinate{Latitude: *dto.EndLat, Longitude: *dto.EndLng},
		AvoidHighRisk: avoid,
	}
}

// ModelToSafeRouteResponse преобразует план маршрута в DTO для ответа
func ModelToSafeRouteResponse(plan *models.RoutePlan) *SafeRouteResponse {
	route := make([]WaypointResponse, len(plan.Waypoints))
	for i, w := range plan.Waypoints {
		route[i] = WaypointResponse{Lat: w.Latitude, Lng: w.Longitude, Type: string(w.Role)}
	}

	avoided := make([]AvoidedRiskResponse, len(plan.AvoidedHazards))
	for i, a := range plan.AvoidedHazards {
		avoided[i] = AvoidedRiskResponse{
			ID:           a.Hazard.ID,
			Name:         a.Hazard.Name,
			Latitude:     a.Hazard.Latitude,
			Longitude:    a.Hazard.Longitude,
			RadiusMeters: a.Hazard.RadiusMeters,
			RiskScore:    a.Hazard.RiskScore,
			Reason:       a.Reason,
		}
	}

	warnings := plan.Warnings
	if warnings == nil {
		warnings = make([]string, 0)
	}

	return &SafeRouteResponse{
		Route:            route,
		Distance:         plan.DistanceMeters,
		Duration:         plan.DurationSeconds,
		RiskAreasAvoided: avoided,
		Warnings:         warnings,
		RouteType:        string(plan.RouteType),
		Outcome:          string(plan.Outcome),
		Summary:          planner.Summary(*plan),
	}
}

// ModelToLocationRiskResponse преобразует оценку риска в DTO для ответа
func ModelToLocationRiskResponse(risk *models.LocationRisk) *LocationRiskResponse {
	nearby := make([]NearbyRiskResponse, len(risk.NearbyHazards))
	for i, n := range risk.NearbyHazards {
		nearby[i] = NearbyRiskResponse{
			ID:             n.Hazard.ID,
			Name:           n.Hazard.Name,
			Latitude:       n.Hazard.Latitude,
			Longitude:      n.Hazard.Longitude,
			RadiusMeters:   n.Hazard.RadiusMeters,
			RiskScore:      n.Hazard.RiskScore,
			DistanceMeters: n.DistanceMeters,
			Inside:         n.Inside,
		}
	}
	return &LocationRiskResponse{
		Latitude:    risk.Location.Latitude,
		Longitude:   risk.Location.Longitude,
		Probability: risk.Probability,
		RiskLevel:   risk.RiskLevel,
		Color:       risk.Color,
		Label:       risk.Label,
		IsDangerous: risk.Dangerous(),
		NearbyRisks: nearby,
	}
}

// DTOToHazardModel преобразует DTO создания/обновления в доменную модель
func DTOToHazardModel(dto any) *models.HazardZone {
	switch v := dto.(type) {
	case CreateHazardRequest:
		return &models.HazardZone{
			Name:         v.Name,
			Description:  v.Description,
			Latitude:     *v.Latitude,
			Longitude:    *v.Longitude,
			RadiusMeters: v.RadiusMeters,
			RiskScore:    *v.RiskScore,
		}
	case UpdateHazardRequest:
		return &models.HazardZone{
			Name:         v.Name,
			Description:  v.Description,
			Latitude:     *v.Latitude,
			Longitude:    *v.Longitude,
			RadiusMeters: v.RadiusMeters,
			RiskScore:    *v.RiskScore,
			Status:       v.Status,
		}
	}
	return nil
}

// ModelToHazardResponse преобразует доменную модель в DTO для ответа
func ModelToHazardResponse(model *models.HazardZone) *HazardResponse {
	return &HazardResponse{
		ID:           model.ID,
		Name:         model.Name,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		RiskScore:    model.RiskScore,
		Status:       model.Status,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToHazardResponses преобразует слайс моделей в слайс DTO
func ModelsToHazardResponses(hazards []*models.HazardZone) []*HazardResponse {
	responses := make([]*HazardResponse, len(hazards))
	for i, model := range hazards {
		responses[i] = ModelToHazardResponse(model)
	}
	return responses
}
