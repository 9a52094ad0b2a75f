// Package cache memoizes semantic assessments in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultTTL  = 24 * time.Hour
	pingTimeout = 2 * time.Second
)

type Options struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Redis is a JSON key-value store. When the server is unreachable at start
// it turns into a bypass that never hits and never stores.
type Redis struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, opts Options, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}

	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &Redis{logger: logger, ttl: opts.TTL}
	}

	logger.Debug("redis cache connected", zap.String("addr", addr))
	return &Redis{client: client, logger: logger, ttl: opts.TTL}
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis request failed, cache degraded", zap.Error(err))
	}
}

// GetJSON decodes the value stored at key into out. It reports false on a miss.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
