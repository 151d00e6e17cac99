package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sinkhole_navigator/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	signatureHeader = "X-Webhook-Signature"
	// pollTimeout ограничивает BRPOP, чтобы воркер замечал отмену контекста
	pollTimeout = time.Second
	// requeueTimeout - время на возврат события в очередь после отмены контекста
	requeueTimeout = 2 * time.Second
)

// WebhookWorker - структура для обработки и отправки вебхуков
type WebhookWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWebhookWorker создает новый WebhookWorker
func NewWebhookWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *WebhookWorker {
	return &WebhookWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Run обрабатывает очередь вебхуков до отмены контекста
func (w *WebhookWorker) Run(ctx context.Context) error {
	w.logger.Info("Starting webhook worker...")
	for ctx.Err() == nil {
		if err := w.pollOnce(ctx, pollTimeout); err != nil && ctx.Err() == nil {
			w.logger.WithError(err).Error("Failed to pop webhook event from Redis")
			sleep(ctx, w.cfg.WebhookTimeout)
		}
	}
	w.logger.Info("Stopping webhook worker.")
	return nil
}

// pollOnce извлекает одно событие из очереди и доставляет его
func (w *WebhookWorker) pollOnce(ctx context.Context, timeout time.Duration) error {
	// BRPOP - блокирующее извлечение из правой части списка (очереди)
	result, err := w.redisClient.BRPop(ctx, timeout, webhookQueueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	// result[0] - ключ, result[1] - значение
	payload := result[1]
	var event WebhookEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		w.logger.WithError(err).Error("Failed to unmarshal webhook event from Redis")
		return nil
	}

	w.processWebhookEvent(ctx, event, payload)
	return nil
}

func (w *WebhookWorker) processWebhookEvent(ctx context.Context, event WebhookEvent, rawPayload string) {
	log := w.logger.WithFields(logrus.Fields{
		"event_type":         event.Type,
		"event_user_id":      event.UserID,
		"event_is_dangerous": event.IsDangerous,
	})
	log.Debug("Processing webhook event...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping webhook delivery.")
		return
	}

	maxRetries := w.cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Webhook delivered successfully.")
			return
		}
		if ctx.Err() != nil {
			w.requeue(log.WithError(err), rawPayload)
			return
		}

		retriesLeft := maxRetries - 1 - i
		if retriesLeft == 0 {
			log.WithError(err).Warn("Webhook delivery attempt failed.")
			break
		}
		log.WithError(err).Warnf("Webhook delivery attempt failed. Retrying in %v. Retries left: %d", delay, retriesLeft)
		if !sleep(ctx, delay) {
			w.requeue(log, rawPayload)
			return
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver webhook for event after %d attempts.", maxRetries)
}

// requeue возвращает извлеченное событие в очередь, если доставку прервала отмена контекста.
// RPUSH кладет его в правый конец списка, поэтому следующий BRPOP заберет его первым.
func (w *WebhookWorker) requeue(log *logrus.Entry, rawPayload string) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()

	if err := w.redisClient.RPush(ctx, webhookQueueKey, rawPayload).Err(); err != nil {
		log.WithError(err).Error("Webhook delivery interrupted and event could not be requeued, event dropped.")
		return
	}
	log.Warn("Webhook delivery interrupted by shutdown, event returned to queue.")
}

func (w *WebhookWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint responded with status code %d", resp.StatusCode)
	}
	return nil
}

// sleep ждет d или отмены контекста, false - контекст отменен
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
