package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sinkhole_navigator/internal/config"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/shenikar/sinkhole_navigator/internal/service/mocks"
	"github.com/shenikar/sinkhole_navigator/internal/webhook"
	webhook_mocks "github.com/shenikar/sinkhole_navigator/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	cityHall = models.Coordinate{Latitude: 37.5665, Longitude: 126.9780}
	yongsan  = models.Coordinate{Latitude: 37.5400, Longitude: 127.0000}
)

type navigationMocks struct {
	hazards   *mocks.MockHazardRepository
	history   *mocks.MockHistoryRepository
	publisher *webhook_mocks.MockWebhookPublisher
}

// newTestNavigationService - сервис с моками репозиториев и настоящим планировщиком
func newTestNavigationService(t *testing.T, cfg *config.Config) (*navigationService, navigationMocks) {
	ctrl := gomock.NewController(t)
	m := navigationMocks{
		hazards:   mocks.NewMockHazardRepository(ctrl),
		history:   mocks.NewMockHistoryRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{
			StatsTimeWindowMinutes:   60,
			HazardSearchMarginMeters: 500,
			LocationCacheTTL:         time.Minute,
		}
	}

	svc := NewNavigationService(m.hazards, m.history, planner.New(logger, planner.Options{}), m.publisher, nil, logger, cfg)
	return svc.(*navigationService), m
}

func namsanHazard() *models.HazardZone {
	return &models.HazardZone{
		ID:           uuid.New(),
		Name:         "Намсан",
		Latitude:     37.5510,
		Longitude:    126.9882,
		RadiusMeters: 200,
		RiskScore:    0.8,
		Status:       models.HazardStatusActive,
	}
}

func TestPlanSafeRoute_AvoidsHazard(t *testing.T) {
	// Подготовка
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	hazard := namsanHazard()
	req := models.RouteRequest{Start: cityHall, End: yongsan, AvoidHighRisk: true}

	// Ожидания
	// 1. Поиск зон вдоль отрезка
	m.hazards.EXPECT().
		FindActiveNearSegment(ctx, cityHall, yongsan, 500.0).
		Return([]*models.HazardZone{hazard}, nil).
		Times(1)

	// 2. Сохранение истории
	m.history.EXPECT().
		SaveRouteSearch(ctx, gomock.Any()).
		Do(func(ctx context.Context, search *models.RouteSearch) {
			assert.Equal(t, "alice", search.UserID)
			assert.Equal(t, models.RouteTypeSafe, search.RouteType)
			assert.Equal(t, 1, search.AvoidedCount)
			assert.Len(t, search.Path, 3)
		}).Return(nil).Times(1)

	// 3. Публикация вебхука
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventHazardsAvoided, event.Type)
			assert.Equal(t, "alice", event.UserID)
			require.Len(t, event.Hazards, 1)
			assert.Equal(t, hazard.ID, event.Hazards[0].ID)
			assert.Equal(t, 0.8, event.Probability)
			require.NotNil(t, event.Destination)
			assert.Equal(t, yongsan, *event.Destination)
		}).Return(nil).Times(1)

	// Действие
	plan, err := service.PlanSafeRoute(ctx, "alice", req)

	// Проверки
	require.NoError(t, err)
	require.Len(t, plan.Waypoints, 3)
	assert.Equal(t, models.OutcomePlanned, plan.Outcome)
	require.Len(t, plan.AvoidedHazards, 1)
	assert.Contains(t, plan.Warnings[0], "80%")
}

func TestPlanSafeRoute_NoHazardsNoWebhook(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	req := models.RouteRequest{Start: cityHall, End: yongsan, AvoidHighRisk: true}

	m.hazards.EXPECT().FindActiveNearSegment(ctx, cityHall, yongsan, 500.0).Return([]*models.HazardZone{}, nil).Times(1)
	m.history.EXPECT().SaveRouteSearch(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	plan, err := service.PlanSafeRoute(ctx, "alice", req)

	require.NoError(t, err)
	assert.Equal(t, models.RouteTypeSafe, plan.RouteType)
	assert.Empty(t, plan.AvoidedHazards)
	assert.Empty(t, plan.Warnings)
}

func TestPlanSafeRoute_DirectWhenAvoidanceNotRequested(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	req := models.RouteRequest{Start: cityHall, End: yongsan, AvoidHighRisk: false}

	// Зоны не загружаются, вебхук не публикуется
	m.hazards.EXPECT().FindActiveNearSegment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.history.EXPECT().
		SaveRouteSearch(ctx, gomock.Any()).
		Do(func(ctx context.Context, search *models.RouteSearch) {
			assert.Equal(t, models.OutcomeDirect, search.Outcome)
			assert.False(t, search.AvoidHighRisk)
		}).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	plan, err := service.PlanSafeRoute(ctx, "bob", req)

	require.NoError(t, err)
	assert.Len(t, plan.Waypoints, 2)
	assert.Equal(t, models.RouteTypeDirect, plan.RouteType)
	assert.Len(t, plan.Warnings, 1)
}

func TestPlanSafeRoute_HazardLoadFailureStillPlans(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	req := models.RouteRequest{Start: cityHall, End: yongsan, AvoidHighRisk: true}

	m.hazards.EXPECT().FindActiveNearSegment(ctx, cityHall, yongsan, 500.0).Return(nil, fmt.Errorf("db down")).Times(1)
	m.history.EXPECT().SaveRouteSearch(ctx, gomock.Any()).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	plan, err := service.PlanSafeRoute(ctx, "alice", req)

	require.NoError(t, err)
	assert.Len(t, plan.Waypoints, 3)
	assert.Empty(t, plan.AvoidedHazards)
	assert.Equal(t, []string{warnHazardsUnavailable}, plan.Warnings)
}

func TestPlanSafeRoute_HistoryAndWebhookFailuresAreNotFatal(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	req := models.RouteRequest{Start: cityHall, End: yongsan, AvoidHighRisk: true}

	m.hazards.EXPECT().FindActiveNearSegment(ctx, cityHall, yongsan, 500.0).Return([]*models.HazardZone{namsanHazard()}, nil).Times(1)
	m.history.EXPECT().SaveRouteSearch(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	plan, err := service.PlanSafeRoute(ctx, "alice", req)

	require.NoError(t, err)
	assert.Len(t, plan.AvoidedHazards, 1)
}

func TestPlanSafeRoute_InvalidCoordinate(t *testing.T) {
	service, _ := newTestNavigationService(t, nil)
	req := models.RouteRequest{Start: models.Coordinate{Latitude: 91, Longitude: 0}, End: yongsan, AvoidHighRisk: true}

	plan, err := service.PlanSafeRoute(context.Background(), "alice", req)

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestPlanSafeRoute_OutsideServiceArea(t *testing.T) {
	service, _ := newTestNavigationService(t, &config.Config{
		HazardSearchMarginMeters: 500,
		ServiceArea:              &models.Bounds{MinLatitude: 37.4, MinLongitude: 126.7, MaxLatitude: 37.8, MaxLongitude: 127.3},
	})
	busan := models.Coordinate{Latitude: 35.1796, Longitude: 129.0756}

	_, err := service.PlanSafeRoute(context.Background(), "alice", models.RouteRequest{Start: cityHall, End: busan, AvoidHighRisk: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrOutsideArea)
}

func TestAssessLocation_DangerousCacheMiss(t *testing.T) {
	// Подготовка
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	hazard := namsanHazard()
	point := hazard.Center()
	cell, centroid, err := geo.Cell(point)
	require.NoError(t, err)

	// Ожидания
	// 1. Промах кеша ячейки
	m.hazards.EXPECT().GetCellHazardsFromCache(ctx, cell).Return(nil, false, nil).Times(1)
	// 2. Поиск вокруг центра ячейки с запасом
	m.hazards.EXPECT().
		FindActiveNearPoint(ctx, centroid, 500+geo.CellPaddingMeters).
		Return([]*models.HazardZone{hazard}, nil).
		Times(1)
	// 3. Запись в кеш
	m.hazards.EXPECT().SetCellHazardsCache(ctx, cell, []*models.HazardZone{hazard}, time.Minute).Return(nil).Times(1)
	// 4. Сохранение проверки
	m.history.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		Do(func(ctx context.Context, check *models.LocationCheck) {
			assert.True(t, check.IsDangerous)
			assert.Equal(t, "alice", check.UserID)
			assert.Equal(t, 0.8, check.Probability)
		}).Return(nil).Times(1)
	// 5. Публикация вебхука
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, webhook.EventDangerousLocation, event.Type)
			assert.True(t, event.IsDangerous)
			require.Len(t, event.Hazards, 1)
			assert.Equal(t, hazard.ID, event.Hazards[0].ID)
		}).Return(nil).Times(1)

	// Действие
	risk, err := service.AssessLocation(ctx, "alice", point)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.8, risk.Probability)
	assert.Equal(t, "very_high", risk.RiskLevel)
	assert.Equal(t, "#FF0000", risk.Color)
	require.Len(t, risk.NearbyHazards, 1)
	assert.True(t, risk.NearbyHazards[0].Inside)
}

func TestAssessLocation_SafeFromCache(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	point := models.Coordinate{Latitude: 37.6, Longitude: 127.1}
	cell, _, err := geo.Cell(point)
	require.NoError(t, err)

	m.hazards.EXPECT().GetCellHazardsFromCache(ctx, cell).Return([]*models.HazardZone{namsanHazard()}, true, nil).Times(1)
	m.hazards.EXPECT().FindActiveNearPoint(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.history.EXPECT().
		SaveLocationCheck(ctx, gomock.Any()).
		Do(func(ctx context.Context, check *models.LocationCheck) {
			assert.False(t, check.IsDangerous)
		}).Return(nil).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	risk, err := service.AssessLocation(ctx, "alice", point)

	require.NoError(t, err)
	assert.Equal(t, 0.0, risk.Probability)
	assert.Equal(t, "very_low", risk.RiskLevel)
	assert.Empty(t, risk.NearbyHazards)
}

func TestAssessLocation_RepositoryError(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	point := cityHall

	m.hazards.EXPECT().GetCellHazardsFromCache(ctx, gomock.Any()).Return(nil, false, fmt.Errorf("redis down")).Times(1)
	m.hazards.EXPECT().FindActiveNearPoint(ctx, gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("db down")).Times(1)
	m.history.EXPECT().SaveLocationCheck(gomock.Any(), gomock.Any()).Times(0)

	risk, err := service.AssessLocation(ctx, "alice", point)

	require.Error(t, err)
	assert.Nil(t, risk)
	assert.ErrorContains(t, err, "failed to find hazards near location")
}

func TestHistory_Success(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()
	searches := []*models.RouteSearch{{ID: 1, UserID: "alice"}}
	checks := []*models.LocationCheck{{ID: 2, UserID: "alice"}}

	// Запросы выполняются параллельно с производным контекстом
	m.history.EXPECT().ListRouteSearches(gomock.Any(), "alice", 20).Return(searches, nil).Times(1)
	m.history.EXPECT().ListLocationChecks(gomock.Any(), "alice", 20).Return(checks, nil).Times(1)

	history, err := service.History(ctx, "alice", 0)

	require.NoError(t, err)
	assert.Equal(t, searches, history.RouteSearches)
	assert.Equal(t, checks, history.LocationChecks)
}

func TestHistory_Error(t *testing.T) {
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()

	m.history.EXPECT().ListRouteSearches(gomock.Any(), "alice", 100).Return(nil, fmt.Errorf("db down")).Times(1)
	m.history.EXPECT().ListLocationChecks(gomock.Any(), "alice", 100).Return([]*models.LocationCheck{}, nil).AnyTimes()

	history, err := service.History(ctx, "alice", 1000)

	require.Error(t, err)
	assert.Nil(t, history)
	assert.ErrorContains(t, err, "route searches")
}

func TestStats_Success(t *testing.T) {
	// Подготовка
	service, m := newTestNavigationService(t, nil)
	ctx := context.Background()

	// Ожидания
	m.history.EXPECT().CountActiveUsers(ctx, service.cfg.StatsTimeWindowMinutes).Return(42, nil).Times(1)

	// Действие
	count, err := service.Stats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
