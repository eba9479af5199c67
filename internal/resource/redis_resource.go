package resource

import (
	"sync"

	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/redisclient"
)

var (
	redisResourceOnce sync.Once
	redisSingleton    *RedisResource
)

// RedisResource manages the lifecycle of the shared Redis client.
type RedisResource struct {
	client *redisclient.Client
}

// DefaultRedisResource returns the global Redis resource instance.
func DefaultRedisResource() *RedisResource {
	redisResourceOnce.Do(func() {
		redisSingleton = &RedisResource{}
	})
	return redisSingleton
}

// MustOpen establishes the Redis connection using global configuration.
// Idempotent: repeat calls after the first are no-ops.
func (r *RedisResource) MustOpen() {
	if r.client != nil {
		return
	}

	cfg := config.GetGlobalConfig()
	if cfg == nil {
		panic("global config not initialized")
	}

	client, err := redisclient.New(cfg.Redis)
	if err != nil {
		panic("failed to connect redis: " + err.Error())
	}

	r.client = client
}

// Close tidies up the underlying Redis client.
func (r *RedisResource) Close() {
	if r.client != nil {
		_ = r.client.Close()
	}
}

// Client exposes the shared queue client handle.
func (r *RedisResource) Client() *redisclient.Client {
	return r.client
}
