package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

type HistoryRepository struct {
	db DB
}

func NewHistoryRepository(db DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// SaveRouteSearch сохраняет поиск маршрута вместе с геометрией пути
func (r *HistoryRepository) SaveRouteSearch(ctx context.Context, search *models.RouteSearch) error {
	path, err := geo.EncodePathEWKB(search.Path)
	if err != nil {
		return fmt.Errorf("failed to encode route path: %w", err)
	}

	query := `
		INSERT INTO route_searches (
			user_id, start_location, end_location, avoid_high_risk, route_type, outcome,
			distance_meters, duration_seconds, avoided_count, path
		)
		VALUES (
			$1,
			ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography,
			ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography,
			$6, $7, $8, $9, $10, $11,
			ST_GeomFromEWKB($12)
		)
		RETURNING id, searched_at;
	`
	err = r.db.QueryRow(ctx, query,
		search.UserID,
		search.Start.Longitude,
		search.Start.Latitude,
		search.End.Longitude,
		search.End.Latitude,
		search.AvoidHighRisk,
		string(search.RouteType),
		string(search.Outcome),
		search.DistanceMeters,
		search.DurationSeconds,
		search.AvoidedCount,
		path,
	).Scan(&search.ID, &search.SearchedAt)
	if err != nil {
		return fmt.Errorf("failed to save route search: %w", err)
	}
	return nil
}

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *HistoryRepository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, location, probability, is_dangerous)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5)
		RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.Probability,
		check.IsDangerous,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}

// ListRouteSearches возвращает последние поиски маршрутов пользователя
func (r *HistoryRepository) ListRouteSearches(ctx context.Context, userID string, limit int) ([]*models.RouteSearch, error) {
	query := `
		SELECT
			id,
			user_id,
			ST_Y(start_location::geometry),
			ST_X(start_location::geometry),
			ST_Y(end_location::geometry),
			ST_X(end_location::geometry),
			avoid_high_risk,
			route_type,
			outcome,
			distance_meters,
			duration_seconds,
			avoided_count,
			ST_AsEWKB(path),
			searched_at
		FROM route_searches
		WHERE user_id = $1
		ORDER BY searched_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list route searches: %w", err)
	}
	defer rows.Close()

	searches := make([]*models.RouteSearch, 0)
	for rows.Next() {
		var (
			s                  models.RouteSearch
			routeType, outcome string
			path               []byte
		)
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Start.Latitude,
			&s.Start.Longitude,
			&s.End.Latitude,
			&s.End.Longitude,
			&s.AvoidHighRisk,
			&routeType,
			&outcome,
			&s.DistanceMeters,
			&s.DurationSeconds,
			&s.AvoidedCount,
			&path,
			&s.SearchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route search row: %w", err)
		}
		s.RouteType = models.RouteType(routeType)
		s.Outcome = models.PlanOutcome(outcome)
		if s.Path, err = geo.DecodePathEWKB(path); err != nil {
			return nil, fmt.Errorf("failed to decode route search path: %w", err)
		}
		searches = append(searches, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListRouteSearches: %w", err)
	}
	return searches, nil
}

// ListLocationChecks возвращает последние проверки местоположения пользователя
func (r *HistoryRepository) ListLocationChecks(ctx context.Context, userID string, limit int) ([]*models.LocationCheck, error) {
	query := `
		SELECT
			id,
			user_id,
			ST_Y(location::geometry),
			ST_X(location::geometry),
			probability,
			is_dangerous,
			checked_at
		FROM location_checks
		WHERE user_id = $1
		ORDER BY checked_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list location checks: %w", err)
	}
	defer rows.Close()

	checks := make([]*models.LocationCheck, 0)
	for rows.Next() {
		c := &models.LocationCheck{}
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Latitude,
			&c.Longitude,
			&c.Probability,
			&c.IsDangerous,
			&c.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location check row: %w", err)
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListLocationChecks: %w", err)
	}
	return checks, nil
}

// CountActiveUsers возвращает количество уникальных пользователей за последние minutes минут
func (r *HistoryRepository) CountActiveUsers(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id) FROM (
			SELECT user_id FROM location_checks WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute')
			UNION ALL
			SELECT user_id FROM route_searches WHERE searched_at >= NOW() - ($1 * INTERVAL '1 minute')
		) AS activity;
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active user stats: %w", err)
	}
	return count, nil
}
