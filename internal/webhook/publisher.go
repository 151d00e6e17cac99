package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

const (
	webhookQueueKey = "webhook_events"
)

type EventType string

const (
	// EventHazardsAvoided - построенный маршрут обходит зоны риска
	EventHazardsAvoided EventType = "route.hazards_avoided"
	// EventDangerousLocation - пользователь находится внутри зоны риска
	EventDangerousLocation EventType = "location.dangerous"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type        EventType            `json:"type"`
	UserID      string               `json:"user_id"`
	Latitude    float64              `json:"latitude"`
	Longitude   float64              `json:"longitude"`
	Destination *models.Coordinate   `json:"destination,omitempty"`
	IsDangerous bool                 `json:"is_dangerous"`
	Probability float64              `json:"probability,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
	Hazards     []*models.HazardZone `json:"hazards,omitempty"` // Зоны, которые обходит маршрут или в которых находится пользователь
}

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
