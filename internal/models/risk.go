package models

// NearbyHazard - зона рядом с точкой и расстояние до её центра
type NearbyHazard struct {
	Hazard         HazardZone `json:"hazard"`
	DistanceMeters float64    `json:"distance_meters"`
	Inside         bool       `json:"inside"`
}

// LocationRisk - оценка риска в точке
type LocationRisk struct {
	Location      Coordinate     `json:"location"`
	Probability   float64        `json:"probability"`
	RiskLevel     string         `json:"risk_level"`
	Color         string         `json:"color"`
	Label         string         `json:"label"`
	NearbyHazards []NearbyHazard `json:"nearby_risks"`
}

// Dangerous сообщает, находится ли точка внутри хотя бы одной зоны
func (r LocationRisk) Dangerous() bool {
	for _, n := range r.NearbyHazards {
		if n.Inside {
			return true
		}
	}
	return false
}
