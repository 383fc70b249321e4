package config

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects to redis with short timeouts. Used for the token
// deny-list; the portal degrades gracefully if redis is unreachable.
func NewRedis(cfg App) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}
