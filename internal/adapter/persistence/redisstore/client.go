// Package redisstore keeps connection sessions in Redis and fans status
// snapshots out over Redis pub/sub, so several API instances share them.
package redisstore

import (
	"context"
	"fmt"
	"time"

	appconfig "motomind/internal/config"
	"motomind/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "motomind:"

func sessionKey(workshopID string) string {
	return keyPrefix + "session:" + workshopID
}

func statusChannel(workshopID string) string {
	return keyPrefix + "status:" + workshopID
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, cfg appconfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	log := logger.WithComponent("redis")
	log.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("connected to Redis")
	return client, nil
}
