package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultWalkingSpeed - скорость пешехода в метрах в минуту
const DefaultWalkingSpeed = 50.0

// ProximityMode определяет, как проверяется близость зоны к маршруту
type ProximityMode string

const (
	// ProximitySegment - зона на пути, если её центр ближе радиуса к отрезку старт→финиш
	// (включая сами конечные точки)
	ProximitySegment ProximityMode = "segment"
	// ProximityEndpoints - зона на пути, только если её центр ближе радиуса к старту или финишу
	ProximityEndpoints ProximityMode = "endpoints"
)

var errComputation = errors.New("route computation failure")

type Options struct {
	WalkingSpeedMetersPerMinute float64
	Proximity                   ProximityMode
	// Distance заменяет формулу гаверсинуса, nil - значение по умолчанию
	Distance                    DistanceFunc
}

// Planner строит безопасный маршрут между двумя точками с учетом зон риска.
// Не хранит изменяемого состояния и безопасен для конкурентного использования.
type Planner struct {
	opts   Options
	logger *logrus.Logger
}

func New(logger *logrus.Logger, opts Options) *Planner {
	if opts.WalkingSpeedMetersPerMinute <= 0 {
		opts.WalkingSpeedMetersPerMinute = DefaultWalkingSpeed
	}
	if opts.Proximity == "" {
		opts.Proximity = ProximitySegment
	}
	if opts.Distance == nil {
		opts.Distance = GreatCircleDistanceMeters
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Planner{opts: opts, logger: logger}
}

// PlanRoute строит маршрут от start до end.
// Ошибки вычисления никогда не возвращаются вызывающему: вместо них строится
// прямой маршрут с Outcome == OutcomeDegraded и предупреждением.
func (p *Planner) PlanRoute(start, end models.Coordinate, avoidHighRisk bool, hazards []models.HazardZone) (plan models.RoutePlan) {
	log := p.logger.WithFields(logrus.Fields{
		"component":       "planner",
		"method":          "PlanRoute",
		"avoid_high_risk": avoidHighRisk,
		"hazards":         len(hazards),
	})

	if !avoidHighRisk {
		return p.directPlan(start, end, warnAvoidanceDisabled, models.OutcomeDirect)
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Route synthesis panicked, falling back to direct route")
			plan = p.directPlan(start, end, warnCalculationFailed, models.OutcomeDegraded)
		}
	}()

	plan, err := p.safePlan(start, end, hazards)
	if err != nil {
		log.WithError(err).Error("Route synthesis failed, falling back to direct route")
		return p.directPlan(start, end, warnCalculationFailed, models.OutcomeDegraded)
	}

	log.WithFields(logrus.Fields{
		"distance_m":      plan.DistanceMeters,
		"avoided_hazards": len(plan.AvoidedHazards),
	}).Debug("Safe route planned")
	return plan
}

func (p *Planner) safePlan(start, end models.Coordinate, hazards []models.HazardZone) (models.RoutePlan, error) {
	waypoints := []models.Waypoint{
		{Coordinate: start, Role: models.RoleStart},
		{Coordinate: midpoint(start, end), Role: models.RoleWaypoint},
		{Coordinate: end, Role: models.RoleEnd},
	}

	distance := PathLengthMeters(coordinates(waypoints), p.opts.Distance)
	if !finite(distance) || distance < 0 {
		return models.RoutePlan{}, fmt.Errorf("%w: path length %v", errComputation, distance)
	}

	avoided := make([]models.AvoidedHazard, 0)
	warnings := make([]string, 0)
	for _, h := range hazards {
		onPath, err := p.onPath(h, start, end)
		if err != nil {
			return models.RoutePlan{}, err
		}
		if !onPath {
			continue
		}
		avoided = append(avoided, models.AvoidedHazard{Hazard: h, Reason: hazardReason})
		warnings = append(warnings, hazardWarning(h))
	}

	return models.RoutePlan{
		Waypoints:       waypoints,
		DistanceMeters:  distance,
		DurationSeconds: int(distance / p.opts.WalkingSpeedMetersPerMinute * 60),
		AvoidedHazards:  avoided,
		Warnings:        warnings,
		RouteType:       models.RouteTypeSafe,
		Outcome:         models.OutcomePlanned,
	}, nil
}

// onPath - грубая эвристика близости, а не пересечение реального пути с кругом зоны
func (p *Planner) onPath(h models.HazardZone, start, end models.Coordinate) (bool, error) {
	center := h.Center()
	nearest := math.Min(p.opts.Distance(start, center), p.opts.Distance(end, center))
	if !finite(nearest) {
		return false, fmt.Errorf("%w: distance to hazard %s is %v", errComputation, h.ID, nearest)
	}
	if nearest < h.RadiusMeters {
		return true, nil
	}
	if p.opts.Proximity != ProximitySegment {
		return false, nil
	}

	toSegment := DistanceToSegmentMeters(center, start, end)
	if !finite(toSegment) {
		return false, fmt.Errorf("%w: distance from hazard %s to segment is %v", errComputation, h.ID, toSegment)
	}
	return toSegment < h.RadiusMeters, nil
}

func (p *Planner) directPlan(start, end models.Coordinate, warning string, outcome models.PlanOutcome) models.RoutePlan {
	return models.RoutePlan{
		Waypoints: []models.Waypoint{
			{Coordinate: start, Role: models.RoleStart},
			{Coordinate: end, Role: models.RoleEnd},
		},
		DistanceMeters:  p.fallbackDistance(start, end),
		DurationSeconds: 0,
		AvoidedHazards:  make([]models.AvoidedHazard, 0),
		Warnings:        []string{warning},
		RouteType:       models.RouteTypeDirect,
		Outcome:         outcome,
	}
}

// fallbackDistance не паникует и не возвращает NaN: при сбое длина прямого маршрута равна 0
func (p *Planner) fallbackDistance(a, b models.Coordinate) (distance float64) {
	defer func() {
		if r := recover(); r != nil {
			distance = 0
		}
	}()
	distance = p.opts.Distance(a, b)
	if !finite(distance) || distance < 0 {
		return 0
	}
	return distance
}

// midpoint - среднее арифметическое широт и долгот, без учета зон риска
func midpoint(a, b models.Coordinate) models.Coordinate {
	return models.Coordinate{
		Latitude:  (a.Latitude + b.Latitude) / 2,
		Longitude: (a.Longitude + b.Longitude) / 2,
	}
}

func coordinates(waypoints []models.Waypoint) []models.Coordinate {
	out := make([]models.Coordinate, len(waypoints))
	for i, w := range waypoints {
		out[i] = w.Coordinate
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
