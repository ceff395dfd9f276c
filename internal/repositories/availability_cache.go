package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ucrconnect/dashboard-api/internal/logger"
)

// AvailabilityCacheRepository caches email-availability answers in Redis
// so repeated form keystroke checks do not hit the database.
type AvailabilityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached answers
}

// NewAvailabilityCacheRepository creates a new repository instance with the given TTL.
func NewAvailabilityCacheRepository(client *redis.Client, expiration time.Duration) *AvailabilityCacheRepository {
	return &AvailabilityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetEmailAvailability fetches a cached availability answer for an email.
func (r *AvailabilityCacheRepository) GetEmailAvailability(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf("email_availability:%s", email)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("availability cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return false, fmt.Errorf("availability not found in cache for %s", email)
		}
		return false, err
	}

	available, err := strconv.ParseBool(val)
	if err != nil {
		logger.Log.Infow("availability cache malformed value",
			"key", key,
			"value", val,
			"error", err,
		)
		return false, err
	}

	logger.Log.Infow("availability cache hit",
		"key", key,
		"result", available,
		"error", nil,
	)

	return available, nil
}

// SetEmailAvailability caches an availability answer with expiration.
func (r *AvailabilityCacheRepository) SetEmailAvailability(ctx context.Context, email string, available bool) error {
	key := fmt.Sprintf("email_availability:%s", email)
	err := r.client.Set(ctx, key, strconv.FormatBool(available), r.exp).Err()

	logger.Log.Infow("availability cache set",
		"key", key,
		"value", available,
		"error", err,
	)

	return err
}
