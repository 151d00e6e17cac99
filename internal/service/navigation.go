package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/sinkhole_navigator/internal/config"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/metrics"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/shenikar/sinkhole_navigator/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=navigation.go -destination=mocks/navigation_mock.go -package=mocks

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100

	warnHazardsUnavailable = "Hazard data is temporarily unavailable; route was planned without known risk areas."
)

// HistoryRepository определяет контракт для хранения истории пользователей
type HistoryRepository interface {
	SaveRouteSearch(ctx context.Context, search *models.RouteSearch) error
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	ListRouteSearches(ctx context.Context, userID string, limit int) ([]*models.RouteSearch, error)
	ListLocationChecks(ctx context.Context, userID string, limit int) ([]*models.LocationCheck, error)
	CountActiveUsers(ctx context.Context, minutes int) (int, error)
}

// RoutePlanner строит маршрут по известным зонам риска
type RoutePlanner interface {
	PlanRoute(start, end models.Coordinate, avoidHighRisk bool, hazards []models.HazardZone) models.RoutePlan
}

// NavigationService определяет контракт построения маршрутов и оценки риска
type NavigationService interface {
	PlanSafeRoute(ctx context.Context, callerID string, req models.RouteRequest) (*models.RoutePlan, error)
	AssessLocation(ctx context.Context, callerID string, point models.Coordinate) (*models.LocationRisk, error)
	History(ctx context.Context, callerID string, limit int) (*models.History, error)
	Stats(ctx context.Context) (int, error)
}

type navigationService struct {
	hazards   HazardRepository
	history   HistoryRepository
	planner   RoutePlanner
	publisher webhook.WebhookPublisher
	metrics   *metrics.Collector
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewNavigationService(
	hazards HazardRepository,
	history HistoryRepository,
	routePlanner RoutePlanner,
	publisher webhook.WebhookPublisher,
	collector *metrics.Collector,
	logger *logrus.Logger,
	cfg *config.Config,
) NavigationService {
	return &navigationService{
		hazards:   hazards,
		history:   history,
		planner:   routePlanner,
		publisher: publisher,
		metrics:   collector,
		logger:    logger,
		cfg:       cfg,
	}
}

// PlanSafeRoute строит маршрут для пользователя и сохраняет его в истории.
// Ошибки загрузки зон, истории и вебхуков не прерывают построение маршрута.
func (s *navigationService) PlanSafeRoute(ctx context.Context, callerID string, req models.RouteRequest) (*models.RoutePlan, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "navigation",
		"method":          "PlanSafeRoute",
		"user_id":         callerID,
		"avoid_high_risk": req.AvoidHighRisk,
	})

	for _, c := range []models.Coordinate{req.Start, req.End} {
		if err := s.checkCoordinate(c); err != nil {
			log.WithError(err).Warn("Rejected route request")
			return nil, fmt.Errorf("service: could not plan route: %w", err)
		}
	}

	var (
		hazards    []*models.HazardZone
		loadFailed bool
		err        error
	)
	if req.AvoidHighRisk {
		hazards, err = s.hazards.FindActiveNearSegment(ctx, req.Start, req.End, s.cfg.HazardSearchMarginMeters)
		if err != nil {
			log.WithError(err).Error("Failed to load hazards, planning without them")
			hazards, loadFailed = nil, true
		}
	}

	plan := s.planner.PlanRoute(req.Start, req.End, req.AvoidHighRisk, values(hazards))
	if loadFailed {
		plan.Warnings = append(plan.Warnings, warnHazardsUnavailable)
	}
	s.metrics.ObserveRoutePlan(&plan)

	log = log.WithFields(logrus.Fields{
		"route_type":      plan.RouteType,
		"outcome":         plan.Outcome,
		"avoided_hazards": len(plan.AvoidedHazards),
	})

	search := &models.RouteSearch{
		UserID:          callerID,
		Start:           req.Start,
		End:             req.End,
		AvoidHighRisk:   req.AvoidHighRisk,
		RouteType:       plan.RouteType,
		Outcome:         plan.Outcome,
		DistanceMeters:  plan.DistanceMeters,
		DurationSeconds: plan.DurationSeconds,
		AvoidedCount:    len(plan.AvoidedHazards),
		Path:            path(plan.Waypoints),
	}
	if err := s.history.SaveRouteSearch(ctx, search); err != nil {
		log.WithError(err).Error("Failed to save route search")
	}

	if len(plan.AvoidedHazards) > 0 {
		avoided := make([]*models.HazardZone, 0, len(plan.AvoidedHazards))
		maxRisk := 0.0
		for i := range plan.AvoidedHazards {
			h := plan.AvoidedHazards[i].Hazard
			avoided = append(avoided, &h)
			if h.RiskScore > maxRisk {
				maxRisk = h.RiskScore
			}
		}
		end := req.End
		event := webhook.WebhookEvent{
			Type:        webhook.EventHazardsAvoided,
			UserID:      callerID,
			Latitude:    req.Start.Latitude,
			Longitude:   req.Start.Longitude,
			Destination: &end,
			Probability: maxRisk,
			Timestamp:   time.Now().UTC(),
			Hazards:     avoided,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish hazards avoided event")
		}
	}

	log.Info("Route planned")
	return &plan, nil
}

// AssessLocation оценивает риск провала грунта в точке.
// Зоны-кандидаты кешируются по ячейке H3, в которую попадает точка.
func (s *navigationService) AssessLocation(ctx context.Context, callerID string, point models.Coordinate) (*models.LocationRisk, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "navigation",
		"method":  "AssessLocation",
		"user_id": callerID,
	})

	if err := s.checkCoordinate(point); err != nil {
		log.WithError(err).Warn("Rejected location check")
		return nil, fmt.Errorf("service: could not assess location: %w", err)
	}

	hazards, err := s.candidateHazards(ctx, log, point)
	if err != nil {
		log.WithError(err).Error("Failed to find hazards near location")
		return nil, fmt.Errorf("service: failed to find hazards near location: %w", err)
	}

	risk := planner.AssessLocation(point, values(hazards), s.cfg.HazardSearchMarginMeters)
	s.metrics.ObserveLocationCheck(&risk)
	dangerous := risk.Dangerous()

	check := &models.LocationCheck{
		UserID:      callerID,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		Probability: risk.Probability,
		IsDangerous: dangerous,
	}
	if err := s.history.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save location check")
	}

	if dangerous {
		inside := make([]*models.HazardZone, 0)
		for i := range risk.NearbyHazards {
			if risk.NearbyHazards[i].Inside {
				h := risk.NearbyHazards[i].Hazard
				inside = append(inside, &h)
			}
		}
		event := webhook.WebhookEvent{
			Type:        webhook.EventDangerousLocation,
			UserID:      callerID,
			Latitude:    point.Latitude,
			Longitude:   point.Longitude,
			IsDangerous: true,
			Probability: risk.Probability,
			Timestamp:   time.Now().UTC(),
			Hazards:     inside,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish dangerous location event")
		}
	}

	log.WithFields(logrus.Fields{
		"risk_level":   risk.RiskLevel,
		"is_dangerous": dangerous,
	}).Info("Location check completed")
	return &risk, nil
}

// candidateHazards возвращает зоны рядом с ячейкой точки, используя кеш ячеек
func (s *navigationService) candidateHazards(ctx context.Context, log *logrus.Entry, point models.Coordinate) ([]*models.HazardZone, error) {
	margin := s.cfg.HazardSearchMarginMeters

	cell, centroid, err := geo.Cell(point)
	if err != nil {
		log.WithError(err).Warn("Failed to index location, querying repository directly")
		return s.hazards.FindActiveNearPoint(ctx, point, margin)
	}

	hazards, ok, err := s.hazards.GetCellHazardsFromCache(ctx, cell)
	if err != nil {
		log.WithError(err).Warn("Failed to read cell cache")
	}
	if ok {
		return hazards, nil
	}

	hazards, err = s.hazards.FindActiveNearPoint(ctx, centroid, margin+geo.CellPaddingMeters)
	if err != nil {
		return nil, err
	}
	if err := s.hazards.SetCellHazardsCache(ctx, cell, hazards, s.cfg.LocationCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache cell hazards")
	}
	return hazards, nil
}

// History возвращает недавние маршруты и проверки пользователя
func (s *navigationService) History(ctx context.Context, callerID string, limit int) (*models.History, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "navigation",
		"method":  "History",
		"user_id": callerID,
		"limit":   limit,
	})

	history := &models.History{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		searches, err := s.history.ListRouteSearches(gctx, callerID, limit)
		if err != nil {
			return fmt.Errorf("route searches: %w", err)
		}
		history.RouteSearches = searches
		return nil
	})
	g.Go(func() error {
		checks, err := s.history.ListLocationChecks(gctx, callerID, limit)
		if err != nil {
			return fmt.Errorf("location checks: %w", err)
		}
		history.LocationChecks = checks
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load history")
		return nil, fmt.Errorf("service: could not load history: %w", err)
	}

	return history, nil
}

// Stats возвращает количество уникальных пользователей за настроенное окно времени
func (s *navigationService) Stats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "navigation",
		"method":  "Stats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.history.CountActiveUsers(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count active users")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

func (s *navigationService) checkCoordinate(c models.Coordinate) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if s.cfg.ServiceArea != nil && !s.cfg.ServiceArea.Contains(c) {
		return fmt.Errorf("%w: (%v, %v)", models.ErrOutsideArea, c.Latitude, c.Longitude)
	}
	return nil
}

func values(hazards []*models.HazardZone) []models.HazardZone {
	out := make([]models.HazardZone, 0, len(hazards))
	for _, h := range hazards {
		if h != nil {
			out = append(out, *h)
		}
	}
	return out
}

func path(waypoints []models.Waypoint) []models.Coordinate {
	out := make([]models.Coordinate, len(waypoints))
	for i, w := range waypoints {
		out[i] = w.Coordinate
	}
	return out
}
