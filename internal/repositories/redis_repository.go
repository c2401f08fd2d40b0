package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/homebase-labs/seller-marketplace/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository throttles seller write traffic (listing and ledger
// mutations) with a sliding window per caller.
type RateLimitRepository interface {
	CheckWriteRateLimit(ctx context.Context, sellerID string) (bool, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg}
}

// CheckWriteRateLimit returns whether the write is allowed and, when it is
// not, how many seconds the caller should wait before retrying.
func (r *redisRepository) CheckWriteRateLimit(ctx context.Context, sellerID string) (bool, int, error) {

	key := fmt.Sprintf("write_attempts:%s", sellerID)

	// nanosecond members keep same-second attempts as distinct entries
	now := time.Now().UnixNano()
	windowStart := now - r.cfg.RateConfig.WindowSize.Nanoseconds()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.RateConfig.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts >= r.cfg.RateConfig.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).Result()
		if err != nil || len(scores) == 0 {
			return false, int(r.cfg.RateConfig.WindowSize.Seconds()), nil
		}

		oldest := int64(scores[0].Score)
		retryAfter := int64(max(time.Duration(oldest+r.cfg.RateConfig.WindowSize.Nanoseconds()-now).Seconds(), 0))

		slog.Warn("Write rate limit exceeded", slog.String("sellerId", sellerID), slog.Int64("attempts", attempts))

		return false, int(retryAfter), nil
	}

	return true, 0, nil
}
