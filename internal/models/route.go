package models

type WaypointRole string

const (
	RoleStart    WaypointRole = "start"
	RoleWaypoint WaypointRole = "waypoint"
	RoleEnd      WaypointRole = "end"
)

type RouteType string

const (
	RouteTypeSafe   RouteType = "safe"
	RouteTypeDirect RouteType = "direct"
)

// PlanOutcome отличает успешный план от прямого и деградированного
type PlanOutcome string

const (
	OutcomePlanned  PlanOutcome = "planned"
	OutcomeDirect   PlanOutcome = "direct"
	OutcomeDegraded PlanOutcome = "degraded"
)

// RouteRequest - запрос на построение маршрута
type RouteRequest struct {
	Start         Coordinate
	End           Coordinate
	AvoidHighRisk bool
}

type Waypoint struct {
	Coordinate
	Role WaypointRole `json:"type"`
}

// AvoidedHazard - зона, которую маршрут обходит, с причиной
type AvoidedHazard struct {
	Hazard HazardZone `json:"hazard"`
	Reason string     `json:"reason"`
}

// RoutePlan - результат планирования маршрута.
// Waypoints всегда начинается с RoleStart и заканчивается RoleEnd.
type RoutePlan struct {
	Waypoints       []Waypoint      `json:"waypoints"`
	DistanceMeters  float64         `json:"distance"`
	DurationSeconds int             `json:"duration"`
	AvoidedHazards  []AvoidedHazard `json:"avoided_risks"`
	Warnings        []string        `json:"warnings"`
	RouteType       RouteType       `json:"route_type"`
	Outcome         PlanOutcome     `json:"outcome"`
}

func (p *RoutePlan) Degraded() bool {
	return p.Outcome == OutcomeDegraded
}
