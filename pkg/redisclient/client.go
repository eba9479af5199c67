package redisclient

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/logger"
)

// Push retry policy. Internal on purpose: every caller gets the same
// predictable fire-and-forget semantics.
const (
	maxPushAttempts = 3
	backoffBase     = 100 * time.Millisecond
)

// Client wraps the go-redis client. The wrapper identity is stable across
// Reconnect, so holders observe a repaired connection without re-acquiring it.
type Client struct {
	mu     sync.RWMutex
	native *redis.Client
	cfg    config.RedisConfig
}

// New builds a redis client using service configuration and validates the
// connection with a ping.
func New(cfg config.RedisConfig) (*Client, error) {
	native, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{native: native, cfg: cfg}, nil
}

func dial(cfg config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr: cfg.GetRedisAddr(),
	}

	if cfg.Username != "" {
		opts.Username = cfg.Username
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}

	opts.DialTimeout = pickDuration(cfg.DialTimeout, 5*time.Second)
	opts.ReadTimeout = pickDuration(cfg.ReadTimeout, 3*time.Second)
	opts.WriteTimeout = pickDuration(cfg.WriteTimeout, 3*time.Second)

	if cfg.EnableTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	cli := redis.NewClient(opts)
	if err := cli.Ping(context.Background()).Err(); err != nil {
		_ = cli.Close()
		return nil, err
	}
	return cli, nil
}

// Raw exposes the underlying go-redis client for advanced use cases.
func (c *Client) Raw() *redis.Client {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.native
}

// Close stops the redis client and releases pooled connections.
func (c *Client) Close() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.native.Close()
}

// Reconnect closes the current connection and dials a fresh one. The Client
// pointer held by callers stays valid throughout.
func (c *Client) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger.Infof("Reconnecting to redis addr=%s", c.cfg.GetRedisAddr())
	if c.native != nil {
		_ = c.native.Close()
	}
	native, err := dial(c.cfg)
	if err != nil {
		return err
	}
	c.native = native
	logger.Infof("Redis reconnected addr=%s", c.cfg.GetRedisAddr())
	return nil
}

// HealthCheck pings the server once, no retries.
func (c *Client) HealthCheck(ctx context.Context) bool {
	if err := c.Raw().Ping(ctx).Err(); err != nil {
		logger.Errorf("Redis health check failed error=%v", err)
		return false
	}
	return true
}

// Push enqueues payload with LPUSH and returns the resulting list length.
// Transient connectivity errors are retried with exponential backoff; after
// the budget is exhausted, or on any non-transient error, the failure is
// logged and 0 is returned. Push never fails the caller.
func (c *Client) Push(ctx context.Context, queue string, payload string) int64 {
	var length int64
	err := c.withRetry(ctx, func() error {
		n, err := c.Raw().LPush(ctx, queue, payload).Result()
		if err != nil {
			return err
		}
		length = n
		return nil
	})
	if err != nil {
		logger.Errorf("Error LPUSH queue=%s error=%v", queue, err)
		return 0
	}
	return length
}

// BlockingPop waits up to timeout for an element (0 = wait indefinitely).
// A timeout yields ("", nil). Connection failures are propagated so a
// consumer can detect them and reconnect instead of silently spinning.
func (c *Client) BlockingPop(ctx context.Context, queue string, timeout time.Duration) (string, error) {
	vals, err := c.Raw().BLPop(ctx, timeout, queue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logger.Errorf("Error BLPOP queue=%s error=%v", queue, err)
		return "", err
	}
	// BLPOP returns [key, value].
	if len(vals) < 2 {
		return "", nil
	}
	return vals[1], nil
}

// withRetry runs op up to maxPushAttempts times, sleeping backoffBase*2^n
// between attempts, but only while the error looks like a connectivity
// hiccup. The sleep happens on the calling goroutine.
func (c *Client) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxPushAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isTransient(lastErr) {
			return lastErr
		}
		if attempt < maxPushAttempts-1 {
			wait := backoffBase << attempt
			logger.Warnf("Retry %d/%d after %s error=%v", attempt+1, maxPushAttempts, wait, lastErr)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

// isTransient reports whether err is worth retrying: network-level failures
// and timeouts, not protocol or usage errors.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func pickDuration(v time.Duration, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}
