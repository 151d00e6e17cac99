package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sinkhole_navigator/internal/models"
)

const (
	hazardCacheTTL    = 5 * time.Minute
	cellCachePrefix   = "hazards:cell:"
	cellCacheScanSize = 100
)

func hazardCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("hazard:%s", id.String())
}

// GetHazardFromCache пытается получить зону из Redis, (nil, nil) - промах кеша
func (r *HazardRepository) GetHazardFromCache(ctx context.Context, id uuid.UUID) (*models.HazardZone, error) {
	val, err := r.redisClient.Get(ctx, hazardCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hazard from cache: %w", err)
	}

	hazard := &models.HazardZone{}
	if err := json.Unmarshal(val, hazard); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hazard from cache: %w", err)
	}
	return hazard, nil
}

// SetHazardCache сохраняет зону в Redis на 5 минут
func (r *HazardRepository) SetHazardCache(ctx context.Context, hazard *models.HazardZone) error {
	val, err := json.Marshal(hazard)
	if err != nil {
		return fmt.Errorf("failed to marshal hazard for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hazardCacheKey(hazard.ID), val, hazardCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set hazard in cache: %w", err)
	}
	return nil
}

// InvalidateHazardCache удаляет зону из кеша
func (r *HazardRepository) InvalidateHazardCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, hazardCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hazard cache: %w", err)
	}
	return nil
}

// GetCellHazardsFromCache возвращает зоны-кандидаты ячейки H3.
// Второе значение false - промах кеша; пустой список тоже кешируется.
func (r *HazardRepository) GetCellHazardsFromCache(ctx context.Context, cell string) ([]*models.HazardZone, bool, error) {
	val, err := r.redisClient.Get(ctx, cellCachePrefix+cell).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cell hazards from cache: %w", err)
	}

	hazards := make([]*models.HazardZone, 0)
	if err := json.Unmarshal(val, &hazards); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cell hazards from cache: %w", err)
	}
	return hazards, true, nil
}

func (r *HazardRepository) SetCellHazardsCache(ctx context.Context, cell string, hazards []*models.HazardZone, ttl time.Duration) error {
	if hazards == nil {
		hazards = make([]*models.HazardZone, 0)
	}
	val, err := json.Marshal(hazards)
	if err != nil {
		return fmt.Errorf("failed to marshal cell hazards for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, cellCachePrefix+cell, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cell hazards in cache: %w", err)
	}
	return nil
}

// InvalidateCellCache удаляет кеш всех ячеек
func (r *HazardRepository) InvalidateCellCache(ctx context.Context) error {
	iter := r.redisClient.Scan(ctx, 0, cellCachePrefix+"*", cellCacheScanSize).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cell cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cell cache: %w", err)
	}
	return nil
}
