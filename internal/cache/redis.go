package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/config"
)

// NewClient connects to redis for the public read paths. A missing redis
// is tolerated: callers fall straight through to the database.
func NewClient(cfg *config.Config, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, public caching disabled",
			zap.String("addr", cfg.RedisURL),
			zap.Error(err),
		)
	}

	return client
}
