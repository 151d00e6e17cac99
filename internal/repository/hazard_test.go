package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hazardRowColumns = []string{
	"id", "name", "description", "latitude", "longitude",
	"radius_meters", "risk_score", "status", "created_at", "updated_at",
}

func newTestHazardRepository(t *testing.T) (*HazardRepository, pgxmock.PgxPoolIface, *miniredis.Miniredis) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewHazardRepository(mock, client), mock, mr
}

func sampleHazard() *models.HazardZone {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.HazardZone{
		ID:           uuid.New(),
		Name:         "Namsan",
		Description:  "ground subsidence",
		Latitude:     37.5510,
		Longitude:    126.9882,
		RadiusMeters: 200,
		RiskScore:    0.8,
		Status:       models.HazardStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func hazardRows(hazards ...*models.HazardZone) *pgxmock.Rows {
	rows := pgxmock.NewRows(hazardRowColumns)
	for _, h := range hazards {
		rows.AddRow(h.ID, h.Name, h.Description, h.Latitude, h.Longitude,
			h.RadiusMeters, h.RiskScore, h.Status, h.CreatedAt, h.UpdatedAt)
	}
	return rows
}

func TestHazardRepository_Create(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	h := sampleHazard()
	h.ID = uuid.Nil
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO hazard_zones").
		WithArgs(h.Name, h.Description, h.Longitude, h.Latitude, h.RadiusMeters, h.RiskScore, h.Status).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id, now, now))

	require.NoError(t, repo.Create(context.Background(), h))
	assert.Equal(t, id, h.ID)
	assert.Equal(t, now, h.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_GetByID(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	h := sampleHazard()

	mock.ExpectQuery("FROM hazard_zones\\s+WHERE id = \\$1").
		WithArgs(h.ID).
		WillReturnRows(hazardRows(h))

	got, err := repo.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	id := uuid.New()

	mock.ExpectQuery("FROM hazard_zones").WithArgs(id).WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestHazardRepository_Update(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	h := sampleHazard()

	mock.ExpectExec("UPDATE hazard_zones SET").
		WithArgs(h.Name, h.Description, h.Longitude, h.Latitude, h.RadiusMeters, h.RiskScore, h.Status, h.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), h))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_Update_NotFound(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	h := sampleHazard()

	mock.ExpectExec("UPDATE hazard_zones SET").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), h)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestHazardRepository_Delete(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	id := uuid.New()

	mock.ExpectExec("status = 'inactive'").WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec("status = 'inactive'").WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), models.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_ListHazards(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	first, second := sampleHazard(), sampleHazard()

	// страница 3 по 10 - смещение 20
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(10, 20).
		WillReturnRows(hazardRows(first, second))

	hazards, err := repo.ListHazards(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, []*models.HazardZone{first, second}, hazards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_FindActiveNearSegment(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	h := sampleHazard()
	start := models.Coordinate{Latitude: 37.5665, Longitude: 126.9780}
	end := models.Coordinate{Latitude: 37.5400, Longitude: 127.0000}

	mock.ExpectQuery("ST_GeomFromEWKB\\(\\$1\\)::geography").
		WithArgs(pgxmock.AnyArg(), 500.0).
		WillReturnRows(hazardRows(h))

	hazards, err := repo.FindActiveNearSegment(context.Background(), start, end, 500)
	require.NoError(t, err)
	require.Len(t, hazards, 1)
	assert.Equal(t, h.ID, hazards[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_FindActiveNearPoint(t *testing.T) {
	repo, mock, _ := newTestHazardRepository(t)
	point := models.Coordinate{Latitude: 37.5510, Longitude: 126.9882}

	mock.ExpectQuery("status = 'active'").
		WithArgs(point.Longitude, point.Latitude, 850.0).
		WillReturnRows(hazardRows())

	hazards, err := repo.FindActiveNearPoint(context.Background(), point, 850)
	require.NoError(t, err)
	assert.NotNil(t, hazards)
	assert.Empty(t, hazards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHazardRepository_HazardCache(t *testing.T) {
	repo, _, mr := newTestHazardRepository(t)
	ctx := context.Background()
	h := sampleHazard()

	cached, err := repo.GetHazardFromCache(ctx, h.ID)
	require.NoError(t, err)
	assert.Nil(t, cached)

	require.NoError(t, repo.SetHazardCache(ctx, h))
	assert.True(t, mr.Exists("hazard:"+h.ID.String()))
	assert.Equal(t, hazardCacheTTL, mr.TTL("hazard:"+h.ID.String()))

	cached, err = repo.GetHazardFromCache(ctx, h.ID)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, h.ID, cached.ID)
	assert.Equal(t, h.RiskScore, cached.RiskScore)

	require.NoError(t, repo.InvalidateHazardCache(ctx, h.ID))
	assert.False(t, mr.Exists("hazard:"+h.ID.String()))
}

func TestHazardRepository_CellCache(t *testing.T) {
	repo, _, mr := newTestHazardRepository(t)
	ctx := context.Background()
	h := sampleHazard()

	_, ok, err := repo.GetCellHazardsFromCache(ctx, "8930e1d8a7bffff")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetCellHazardsCache(ctx, "8930e1d8a7bffff", []*models.HazardZone{h}, time.Minute))
	require.NoError(t, repo.SetCellHazardsCache(ctx, "8930e1d8a0fffff", nil, time.Minute))
	require.NoError(t, repo.SetHazardCache(ctx, h))

	hazards, ok, err := repo.GetCellHazardsFromCache(ctx, "8930e1d8a7bffff")
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, hazards, 1)
	assert.Equal(t, h.ID, hazards[0].ID)

	// Пустой список - тоже попадание
	hazards, ok, err = repo.GetCellHazardsFromCache(ctx, "8930e1d8a0fffff")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, hazards)

	mr.FastForward(2 * time.Minute)
	_, ok, err = repo.GetCellHazardsFromCache(ctx, "8930e1d8a0fffff")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHazardRepository_InvalidateCellCache(t *testing.T) {
	repo, _, mr := newTestHazardRepository(t)
	ctx := context.Background()
	h := sampleHazard()

	require.NoError(t, repo.InvalidateCellCache(ctx))

	require.NoError(t, repo.SetCellHazardsCache(ctx, "a", []*models.HazardZone{h}, time.Minute))
	require.NoError(t, repo.SetCellHazardsCache(ctx, "b", []*models.HazardZone{h}, time.Minute))
	require.NoError(t, repo.SetHazardCache(ctx, h))

	require.NoError(t, repo.InvalidateCellCache(ctx))

	assert.False(t, mr.Exists(cellCachePrefix+"a"))
	assert.False(t, mr.Exists(cellCachePrefix+"b"))
	assert.True(t, mr.Exists("hazard:"+h.ID.String()))
}
