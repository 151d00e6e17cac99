package planner

import (
	"sort"

	"github.com/shenikar/sinkhole_navigator/internal/models"
)

// AssessLocation оценивает риск в точке по известным зонам.
// Вероятность - наибольшая оценка риска среди зон, внутри которых находится точка;
// в nearby попадают зоны, до границы которых не больше marginMeters.
func AssessLocation(point models.Coordinate, hazards []models.HazardZone, marginMeters float64) models.LocationRisk {
	if marginMeters < 0 {
		marginMeters = 0
	}

	probability := 0.0
	nearby := make([]models.NearbyHazard, 0)
	for _, h := range hazards {
		d := GreatCircleDistanceMeters(point, h.Center())
		if !finite(d) || d > h.RadiusMeters+marginMeters {
			continue
		}
		inside := d < h.RadiusMeters
		if inside && h.RiskScore > probability {
			probability = h.RiskScore
		}
		nearby = append(nearby, models.NearbyHazard{Hazard: h, DistanceMeters: d, Inside: inside})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	class := ClassifyRisk(probability)
	return models.LocationRisk{
		Location:      point,
		Probability:   probability,
		RiskLevel:     string(class.Band),
		Color:         class.Color,
		Label:         class.Label,
		NearbyHazards: nearby,
	}
}
