package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryRepository(t *testing.T) (*HistoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewHistoryRepository(mock), mock
}

func TestHistoryRepository_SaveRouteSearch(t *testing.T) {
	repo, mock := newTestHistoryRepository(t)
	now := time.Now().UTC()
	search := &models.RouteSearch{
		UserID:          "alice",
		Start:           models.Coordinate{Latitude: 37.5665, Longitude: 126.9780},
		End:             models.Coordinate{Latitude: 37.5400, Longitude: 127.0000},
		AvoidHighRisk:   true,
		RouteType:       models.RouteTypeSafe,
		Outcome:         models.OutcomePlanned,
		DistanceMeters:  3527.6,
		DurationSeconds: 4233,
		AvoidedCount:    1,
		Path: []models.Coordinate{
			{Latitude: 37.5665, Longitude: 126.9780},
			{Latitude: 37.55325, Longitude: 126.989},
			{Latitude: 37.5400, Longitude: 127.0000},
		},
	}
	path, err := geo.EncodePathEWKB(search.Path)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO route_searches").
		WithArgs("alice", 126.9780, 37.5665, 127.0000, 37.5400, true, "safe", "planned", 3527.6, 4233, 1, path).
		WillReturnRows(pgxmock.NewRows([]string{"id", "searched_at"}).AddRow(int64(7), now))

	require.NoError(t, repo.SaveRouteSearch(context.Background(), search))
	assert.Equal(t, int64(7), search.ID)
	assert.Equal(t, now, search.SearchedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_SaveLocationCheck(t *testing.T) {
	repo, mock := newTestHistoryRepository(t)
	now := time.Now().UTC()
	check := &models.LocationCheck{UserID: "bob", Latitude: 37.551, Longitude: 126.9882, Probability: 0.8, IsDangerous: true}

	mock.ExpectQuery("INSERT INTO location_checks").
		WithArgs("bob", 126.9882, 37.551, 0.8, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "checked_at"}).AddRow(int64(3), now))

	require.NoError(t, repo.SaveLocationCheck(context.Background(), check))
	assert.Equal(t, int64(3), check.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ListRouteSearches(t *testing.T) {
	repo, mock := newTestHistoryRepository(t)
	now := time.Now().UTC()
	pathCoords := []models.Coordinate{
		{Latitude: 37.5665, Longitude: 126.9780},
		{Latitude: 37.5400, Longitude: 127.0000},
	}
	path, err := geo.EncodePathEWKB(pathCoords)
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "start_lat", "start_lng", "end_lat", "end_lng", "avoid_high_risk",
		"route_type", "outcome", "distance_meters", "duration_seconds", "avoided_count", "path", "searched_at",
	}).AddRow(int64(1), "alice", 37.5665, 126.9780, 37.5400, 127.0000, false,
		"direct", "direct", 3400.0, 0, 0, path, now)

	mock.ExpectQuery("FROM route_searches").WithArgs("alice", 20).WillReturnRows(rows)

	searches, err := repo.ListRouteSearches(context.Background(), "alice", 20)
	require.NoError(t, err)
	require.Len(t, searches, 1)
	assert.Equal(t, models.RouteTypeDirect, searches[0].RouteType)
	assert.Equal(t, models.OutcomeDirect, searches[0].Outcome)
	assert.Equal(t, 37.5400, searches[0].End.Latitude)
	require.Len(t, searches[0].Path, 2)
	assert.InDelta(t, 126.9780, searches[0].Path[0].Longitude, 1e-12)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_ListLocationChecks(t *testing.T) {
	repo, mock := newTestHistoryRepository(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{"id", "user_id", "lat", "lng", "probability", "is_dangerous", "checked_at"}).
		AddRow(int64(5), "bob", 37.551, 126.9882, 0.8, true, now).
		AddRow(int64(4), "bob", 37.6, 127.1, 0.0, false, now.Add(-time.Minute))

	mock.ExpectQuery("FROM location_checks").WithArgs("bob", 10).WillReturnRows(rows)

	checks, err := repo.ListLocationChecks(context.Background(), "bob", 10)
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.True(t, checks[0].IsDangerous)
	assert.Equal(t, int64(4), checks[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_CountActiveUsers(t *testing.T) {
	repo, mock := newTestHistoryRepository(t)

	mock.ExpectQuery("COUNT\\(DISTINCT user_id\\)").
		WithArgs(60).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountActiveUsers(context.Background(), 60)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
