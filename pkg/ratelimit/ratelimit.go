package ratelimit

import (
	"context"
	"time"

	"yamdb/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter decides whether the client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// New picks the Redis backend when an address is configured so several instances share counters.
func New(ctx context.Context, throttle utils.ThrottleConfig, redisCfg utils.RedisConfig, log *zap.Logger) (Limiter, func() error, error) {
	if redisCfg.Addr == "" {
		log.Info("Throttling uses in-process buckets",
			zap.Int("requests", throttle.Requests),
			zap.Duration("window", throttle.Window),
		)
		return NewMemoryLimiter(throttle.Requests, throttle.Burst, throttle.Window), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         redisCfg.Addr,
		Password:     redisCfg.Password,
		DB:           redisCfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	log.Info("Throttling uses Redis",
		zap.String("addr", redisCfg.Addr),
		zap.Int("requests", throttle.Requests),
		zap.Duration("window", throttle.Window),
	)
	return NewRedisLimiter(client, "throttle", throttle.Requests, throttle.Window), client.Close, nil
}
