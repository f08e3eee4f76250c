package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Lasya-02/Mama-Sync/utils"
)

var (
	Client *redis.Client
	ctx    = context.Background()
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = redis.Nil

// InitRedis connects the shared redis client. The cache is optional:
// callers fall back to Mongo when it is unavailable.
func InitRedis(logger *zap.Logger) error {
	addr := fmt.Sprintf("%s:%s",
		utils.GetEnvAsString("REDIS_HOST", "localhost"),
		utils.GetEnvAsString("REDIS_PORT", "6379"))

	Client = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     utils.GetEnvAsString("REDIS_PASSWORD", ""),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := Client.Ping(ctx).Err(); err != nil {
		logger.Error("redis_connection_failed",
			zap.Error(err),
			zap.String("addr", addr),
		)
		// Leave Client nil so Get/Set short-circuit instead of
		// re-dialing a dead instance on every request.
		Client = nil
		return err
	}

	logger.Info("redis_connected", zap.String("addr", addr))
	return nil
}

// Set serializes value as JSON and stores it with the given TTL.
func Set(key string, value interface{}, expiration time.Duration) error {
	if Client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return Client.Set(ctx, key, data, expiration).Err()
}

// Get reads a key and deserializes it into dest. Returns ErrCacheMiss
// when the key does not exist.
func Get(key string, dest interface{}) error {
	if Client == nil {
		return ErrCacheMiss
	}
	val, err := Client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Close disconnects the redis client on shutdown.
func Close() {
	if Client != nil {
		_ = Client.Close()
	}
}
