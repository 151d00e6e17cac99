package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=hazard.go -destination=mocks/hazard_mock.go -package=mocks

// HazardRepository определяет контракт для работы с бд зон риска и их кешем
type HazardRepository interface {
	Create(ctx context.Context, hazard *models.HazardZone) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.HazardZone, error)
	Update(ctx context.Context, hazard *models.HazardZone) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListHazards(ctx context.Context, page, pageSize int) ([]*models.HazardZone, error)
	FindActiveNearSegment(ctx context.Context, start, end models.Coordinate, marginMeters float64) ([]*models.HazardZone, error)
	FindActiveNearPoint(ctx context.Context, point models.Coordinate, marginMeters float64) ([]*models.HazardZone, error)

	GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.HazardZone, error)
	SetHazardCache(ctx context.Context, hazard *models.HazardZone) error
	InvalidateHazardCache(ctx context.Context, id uuid.UUID) error
	GetCellHazardsFromCache(ctx context.Context, cell string) ([]*models.HazardZone, bool, error)
	SetCellHazardsCache(ctx context.Context, cell string, hazards []*models.HazardZone, ttl time.Duration) error
	InvalidateCellCache(ctx context.Context) error
}

// HazardService определяет контракт бизнес-логики управления зонами риска
type HazardService interface {
	CreateHazard(ctx context.Context, hazard *models.HazardZone) error
	GetHazard(ctx context.Context, id uuid.UUID) (*models.HazardZone, error)
	UpdateHazard(ctx context.Context, hazard *models.HazardZone) error
	DeactivateHazard(ctx context.Context, id uuid.UUID) error
	ListHazards(ctx context.Context, page, pageSize int) ([]*models.HazardZone, error)
}

type hazardService struct {
	repo   HazardRepository
	logger *logrus.Logger
}

func NewHazardService(repo HazardRepository, logger *logrus.Logger) HazardService {
	return &hazardService{
		repo:   repo,
		logger: logger,
	}
}

// CreateHazard создает зону риска
func (s *hazardService) CreateHazard(ctx context.Context, hazard *models.HazardZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "hazard",
		"method":  "CreateHazard",
		"name":    hazard.Name,
	})
	log.Info("Attempting to create a new hazard zone")

	if hazard.Status == "" {
		hazard.Status = models.HazardStatusActive
	}
	if err := validateHazard(hazard); err != nil {
		log.WithError(err).Warn("Rejected invalid hazard zone")
		return fmt.Errorf("service: could not create hazard: %w", err)
	}

	if err := s.repo.Create(ctx, hazard); err != nil {
		log.WithError(err).Error("Failed to create hazard in repository")
		return fmt.Errorf("service: could not create hazard: %w", err)
	}

	s.invalidate(ctx, log, hazard.ID)
	log.WithField("hazard_id", hazard.ID).Info("Hazard zone created successfully")
	return nil
}

// GetHazard получает зону по ID, сначала из кеша
func (s *hazardService) GetHazard(ctx context.Context, id uuid.UUID) (*models.HazardZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "GetHazard",
		"hazard_id": id,
	})
	log.Debug("Fetching hazard zone by ID")

	cached, err := s.repo.GetHazardFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read hazard from cache")
	}
	if cached != nil {
		log.Debug("Hazard zone served from cache")
		return cached, nil
	}

	hazard, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get hazard from repository")
		return nil, fmt.Errorf("service: could not get hazard: %w", err)
	}

	if err := s.repo.SetHazardCache(ctx, hazard); err != nil {
		log.WithError(err).Warn("Failed to cache hazard zone")
	}
	return hazard, nil
}

// UpdateHazard обновляет существующую зону риска
func (s *hazardService) UpdateHazard(ctx context.Context, hazard *models.HazardZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "UpdateHazard",
		"hazard_id": hazard.ID,
	})
	log.Info("Attempting to update hazard zone")

	existing, err := s.repo.GetByID(ctx, hazard.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent hazard zone")
		return fmt.Errorf("service: hazard %s not found for update: %w", hazard.ID, err)
	}

	existing.Name = hazard.Name
	existing.Description = hazard.Description
	existing.Latitude = hazard.Latitude
	existing.Longitude = hazard.Longitude
	existing.RadiusMeters = hazard.RadiusMeters
	existing.RiskScore = hazard.RiskScore
	if hazard.Status != "" {
		existing.Status = hazard.Status
	}
	if err := validateHazard(existing); err != nil {
		log.WithError(err).Warn("Rejected invalid hazard zone update")
		return fmt.Errorf("service: could not update hazard: %w", err)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update hazard in repository")
		return fmt.Errorf("service: could not update hazard: %w", err)
	}

	*hazard = *existing
	s.invalidate(ctx, log, hazard.ID)
	log.Info("Hazard zone updated successfully")
	return nil
}

// DeactivateHazard деактивирует зону риска
func (s *hazardService) DeactivateHazard(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "DeactivateHazard",
		"hazard_id": id,
	})
	log.Info("Attempting to deactivate hazard zone")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent hazard zone")
		return fmt.Errorf("service: hazard %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate hazard in repository")
		return fmt.Errorf("service: could not deactivate hazard: %w", err)
	}

	s.invalidate(ctx, log, id)
	log.Info("Hazard zone deactivated successfully")
	return nil
}

// ListHazards возвращает список зон с пагинацией
func (s *hazardService) ListHazards(ctx context.Context, page, pageSize int) ([]*models.HazardZone, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "hazard",
		"method":    "ListHazards",
		"page":      page,
		"page_size": pageSize,
	})

	hazards, err := s.repo.ListHazards(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list hazards from repository")
		return nil, fmt.Errorf("service: could not list hazards: %w", err)
	}

	log.WithField("count", len(hazards)).Debug("Hazard zones listed successfully")
	return hazards, nil
}

// invalidate сбрасывает кеш зоны и кеш ячеек, в которых она могла оказаться
func (s *hazardService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateHazardCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate hazard cache")
	}
	if err := s.repo.InvalidateCellCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate cell cache")
	}
}

func validateHazard(h *models.HazardZone) error {
	if h.Status != models.HazardStatusActive && h.Status != models.HazardStatusInactive {
		return fmt.Errorf("%w: unknown status %q", models.ErrInvalidHazard, h.Status)
	}
	return h.Validate()
}
