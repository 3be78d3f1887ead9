package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

// ErrCacheMiss is returned when no slots are cached for a date.
var ErrCacheMiss = errors.New("available hours not found in cache")

// AvailabilityCacheRepository caches the available hours of a day in Redis
type AvailabilityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached slots
}

// NewAvailabilityCacheRepository creates a new repository instance with the given TTL
func NewAvailabilityCacheRepository(client *redis.Client, expiration time.Duration) *AvailabilityCacheRepository {
	return &AvailabilityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func availabilityKey(date string) string {
	return fmt.Sprintf("available_hours:%s", date)
}

// Get returns the cached slots for date, or ErrCacheMiss.
func (r *AvailabilityCacheRepository) Get(ctx context.Context, date string) ([]models.HourSlot, error) {
	key := availabilityKey(date)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("cache get",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var slots []models.HourSlot
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, fmt.Errorf("decode cached slots for %s: %w", date, err)
	}
	return slots, nil
}

// Set caches slots for date with the repository TTL.
func (r *AvailabilityCacheRepository) Set(ctx context.Context, date string, slots []models.HourSlot) error {
	key := availabilityKey(date)

	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"slots", len(slots),
		"result", "ok",
		"error", err,
	)

	return err
}
