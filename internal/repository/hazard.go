package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

const hazardColumns = `
	id,
	name,
	description,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	radius_meters,
	risk_score,
	status,
	created_at,
	updated_at`

type HazardRepository struct {
	db          DB
	redisClient *redis.Client
}

func NewHazardRepository(db DB, redisClient *redis.Client) *HazardRepository {
	return &HazardRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую зону риска в бд
func (r *HazardRepository) Create(ctx context.Context, hazard *models.HazardZone) error {
	query := `
		INSERT INTO hazard_zones (name, description, location, radius_meters, risk_score, status)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		hazard.Name,
		hazard.Description,
		hazard.Longitude,
		hazard.Latitude,
		hazard.RadiusMeters,
		hazard.RiskScore,
		hazard.Status,
	).Scan(&hazard.ID, &hazard.CreatedAt, &hazard.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hazard: %w", err)
	}
	return nil
}

// GetByID возвращает зону по её UUID
func (r *HazardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.HazardZone, error) {
	query := `SELECT` + hazardColumns + `
		FROM hazard_zones
		WHERE id = $1;
	`
	hazard, err := scanHazard(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("hazard with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get hazard by id: %w", err)
	}
	return hazard, nil
}

func (r *HazardRepository) Update(ctx context.Context, hazard *models.HazardZone) error {
	query := `
		UPDATE hazard_zones SET
			name = $1,
			description = $2,
			location = ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography,
			radius_meters = $5,
			risk_score = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		hazard.Name,
		hazard.Description,
		hazard.Longitude,
		hazard.Latitude,
		hazard.RadiusMeters,
		hazard.RiskScore,
		hazard.Status,
		hazard.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hazard: %w", err)
	}

	// RowsAffected() == 0 - зоны с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hazard with id %s for update: %w", hazard.ID, models.ErrNotFound)
	}
	return nil
}

// Delete (деактивация) устанавливает статус 'inactive'
func (r *HazardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE hazard_zones SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate hazard: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("hazard with id %s for deactivate: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListHazards возвращает зоны с пагинацией, новые первыми
func (r *HazardRepository) ListHazards(ctx context.Context, page, pageSize int) ([]*models.HazardZone, error) {
	offset := (page - 1) * pageSize

	query := `SELECT` + hazardColumns + `
		FROM hazard_zones
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hazards: %w", err)
	}
	return collectHazards(rows, "ListHazards")
}

// FindActiveNearSegment находит активные зоны, круг которых с запасом marginMeters
// пересекает отрезок start→end
func (r *HazardRepository) FindActiveNearSegment(ctx context.Context, start, end models.Coordinate, marginMeters float64) ([]*models.HazardZone, error) {
	segment, err := geo.EncodePathEWKB([]models.Coordinate{start, end})
	if err != nil {
		return nil, fmt.Errorf("failed to encode route segment: %w", err)
	}

	query := `SELECT` + hazardColumns + `
		FROM hazard_zones
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_GeomFromEWKB($1)::geography,
				radius_meters + $2
			)
		ORDER BY risk_score DESC;
	`
	rows, err := r.db.Query(ctx, query, segment, marginMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find active hazards near segment: %w", err)
	}
	return collectHazards(rows, "FindActiveNearSegment")
}

// FindActiveNearPoint находит активные зоны, до границы которых не больше marginMeters
func (r *HazardRepository) FindActiveNearPoint(ctx context.Context, point models.Coordinate, marginMeters float64) ([]*models.HazardZone, error) {
	query := `SELECT` + hazardColumns + `
		FROM hazard_zones
		WHERE
			status = 'active'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				radius_meters + $3
			)
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography);
	`
	rows, err := r.db.Query(ctx, query, point.Longitude, point.Latitude, marginMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find active hazards near point: %w", err)
	}
	return collectHazards(rows, "FindActiveNearPoint")
}

func scanHazard(row rowScanner) (*models.HazardZone, error) {
	hazard := &models.HazardZone{}
	err := row.Scan(
		&hazard.ID,
		&hazard.Name,
		&hazard.Description,
		&hazard.Latitude,
		&hazard.Longitude,
		&hazard.RadiusMeters,
		&hazard.RiskScore,
		&hazard.Status,
		&hazard.CreatedAt,
		&hazard.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return hazard, nil
}

func collectHazards(rows pgx.Rows, op string) ([]*models.HazardZone, error) {
	defer rows.Close()

	hazards := make([]*models.HazardZone, 0)
	for rows.Next() {
		hazard, err := scanHazard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard row in %s: %w", op, err)
		}
		hazards = append(hazards, hazard)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in %s: %w", op, err)
	}
	return hazards, nil
}
