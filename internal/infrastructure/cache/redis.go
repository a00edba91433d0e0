package cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Gajendran57/GoalGrid/pkg/config"
	"github.com/Gajendran57/GoalGrid/pkg/logger"
)

var log = logger.NewLogger()

// Custom error types
var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
	ErrInvalidConfig   = errors.New("cache: invalid configuration")
)

// Config holds the configuration for Redis client
type Config struct {
	Addr             string
	Password         string
	DB               int
	PoolSize         int
	MinIdleConns     int
	MaxRetries       int
	ConnTimeout      time.Duration
	OperationTimeout time.Duration
	UseCompression   bool
	DefaultTTL       time.Duration
	MaxKeyLength     int
	KeyPrefix        string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PoolSize:         100,
		MinIdleConns:     10,
		MaxRetries:       3,
		ConnTimeout:      5 * time.Second,
		OperationTimeout: 2 * time.Second,
		UseCompression:   false,
		DefaultTTL:       30 * time.Minute,
		MaxKeyLength:     256,
		KeyPrefix:        "goalgrid:",
	}
}

// NewConfigFromEnv creates a Redis config from project configuration
func NewConfigFromEnv(cfg *config.Config) *Config {
	c := DefaultConfig()
	c.Addr = fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c.Password = cfg.Redis.Password
	c.DB = cfg.Redis.DB
	c.OperationTimeout = cfg.Server.Timeout
	return c
}

// CacheMetrics tracks cache hit/miss statistics with atomic operations
type CacheMetrics struct {
	hits      atomic.Int64
	misses    atomic.Int64
	hitRate   atomic.Int64 // stored as percentage * 100
	lastReset atomic.Int64
	byType    sync.Map // map[string]*TypeMetrics
}

// TypeMetrics tracks metrics for a specific cache type with atomic operations
type TypeMetrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// RedisClient wraps the Redis client with additional functionality
type RedisClient struct {
	client    *redis.Client
	metrics   *CacheMetrics
	ttls      sync.Map // map[string]time.Duration
	config    *Config
	closeOnce sync.Once
	health    int32 // 0 = healthy, 1 = unhealthy, using atomic operations
}

// NewRedisClient creates a new Redis client with the provided configuration
func NewRedisClient(cfg *Config) (*RedisClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &RedisClient{
		client:  client,
		config:  cfg,
		metrics: &CacheMetrics{},
	}

	// Per-type TTLs, read through TTLFor
	r.ttls.Store("default", 30*time.Minute)
	r.ttls.Store("dashboard", 5*time.Minute)
	r.ttls.Store("analytics", 10*time.Minute)
	r.ttls.Store("streaks", 10*time.Minute)
	r.ttls.Store("habit", time.Hour)
	r.ttls.Store("habit_list", 10*time.Minute)
	r.ttls.Store("records", 10*time.Minute)
	r.ttls.Store("user", 2*time.Hour)

	go r.healthCheckLoop()

	return r, nil
}

// TTLFor returns the configured TTL for a cache type
func (r *RedisClient) TTLFor(cacheType string) time.Duration {
	if v, ok := r.ttls.Load(cacheType); ok {
		return v.(time.Duration)
	}
	return r.config.DefaultTTL
}

// healthCheckLoop periodically checks Redis health
func (r *RedisClient) healthCheckLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.OperationTimeout)
		if err := r.HealthCheck(ctx); err != nil {
			atomic.StoreInt32(&r.health, 1)
			log.Error("Redis health check failed", zap.Error(err))
		} else {
			atomic.StoreInt32(&r.health, 0)
		}
		cancel()
	}
}

// IsHealthy returns whether Redis is currently healthy
func (r *RedisClient) IsHealthy() bool {
	return atomic.LoadInt32(&r.health) == 0
}

// withContext wraps the context with a timeout if none is set
func (r *RedisClient) withContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.config.OperationTimeout)
	}
	return ctx, func() {}
}

// validateKey checks if the key is valid
func (r *RedisClient) validateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidConfig)
	}
	if len(key) > r.config.MaxKeyLength {
		return fmt.Errorf("%w: key too long (max %d characters)", ErrInvalidConfig, r.config.MaxKeyLength)
	}
	return nil
}

// prefixKey adds the configured prefix to the key
func (r *RedisClient) prefixKey(key string) string {
	return r.config.KeyPrefix + key
}

// Get retrieves a value from the cache with proper context handling
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if err := r.validateKey(key); err != nil {
		return "", err
	}

	if !r.IsHealthy() {
		return "", ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefixKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("%w: %s", ErrCacheNotFound, key)
		}
		return "", fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}

	if r.config.UseCompression {
		return r.decompress(val)
	}
	return val, nil
}

// Set stores a value in the cache with proper context and compression handling
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.validateKey(key); err != nil {
		return err
	}

	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	if r.config.UseCompression {
		compressed, err := r.compress(value)
		if err != nil {
			return fmt.Errorf("compression failed: %w", err)
		}
		value = compressed
	}

	return r.client.Set(ctx, r.prefixKey(key), value, ttl).Err()
}

// compress compresses a string using gzip
func (r *RedisClient) compress(data string) (string, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if _, err := gz.Write([]byte(data)); err != nil {
		return "", err
	}

	if err := gz.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// decompress decompresses a gzipped string
func (r *RedisClient) decompress(data string) (string, error) {
	gr, err := gzip.NewReader(strings.NewReader(data))
	if err != nil {
		return "", err
	}
	defer gr.Close()

	decompressed, err := io.ReadAll(gr)
	if err != nil {
		return "", err
	}

	return string(decompressed), nil
}

// Close properly closes the Redis client and stops background tasks
func (r *RedisClient) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.client.Close()
	})
	return err
}

// TrackCacheEvent tracks cache hits/misses with atomic operations
func (r *RedisClient) TrackCacheEvent(hit bool, cacheType string) {
	if hit {
		r.metrics.hits.Add(1)
	} else {
		r.metrics.misses.Add(1)
	}

	total := r.metrics.hits.Load() + r.metrics.misses.Load()
	if total > 0 {
		hitRate := int64((float64(r.metrics.hits.Load()) / float64(total)) * 100)
		r.metrics.hitRate.Store(hitRate)
	}

	value, _ := r.metrics.byType.LoadOrStore(cacheType, &TypeMetrics{})
	typeMetrics := value.(*TypeMetrics)

	if hit {
		typeMetrics.hits.Add(1)
	} else {
		typeMetrics.misses.Add(1)
	}
}

// GetMetrics returns current cache metrics with additional information
func (r *RedisClient) GetMetrics() map[string]interface{} {
	metrics := make(map[string]interface{})
	typeMetrics := make(map[string]interface{})

	r.metrics.byType.Range(func(key, value interface{}) bool {
		tm := value.(*TypeMetrics)
		typeMetrics[key.(string)] = map[string]interface{}{
			"hits":   tm.hits.Load(),
			"misses": tm.misses.Load(),
		}
		return true
	})

	stats := r.client.PoolStats()
	metrics["hits"] = r.metrics.hits.Load()
	metrics["misses"] = r.metrics.misses.Load()
	metrics["hit_rate"] = float64(r.metrics.hitRate.Load()) / 100.0
	metrics["by_type"] = typeMetrics
	metrics["health"] = r.IsHealthy()
	metrics["pool_stats"] = map[string]interface{}{
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}

	return metrics
}

// ResetCacheMetrics resets the cache hit/miss metrics
func (r *RedisClient) ResetCacheMetrics() {
	r.metrics.hits.Store(0)
	r.metrics.misses.Store(0)
	r.metrics.hitRate.Store(0)
	r.metrics.lastReset.Store(time.Now().Unix())
}

// HealthCheck checks if Redis is responding
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Delete removes values from the cache
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixedKeys := make([]string, len(keys))
	for i, key := range keys {
		if err := r.validateKey(key); err != nil {
			return err
		}
		prefixedKeys[i] = r.prefixKey(key)
	}

	return r.client.Del(ctx, prefixedKeys...).Err()
}

// ClearByPattern removes all cache entries matching the given pattern
func (r *RedisClient) ClearByPattern(ctx context.Context, pattern string) error {
	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixedPattern := r.prefixKey(pattern)
	iter := r.client.Scan(ctx, 0, prefixedPattern, 100).Iterator()
	var keys []string

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}

	return nil
}

// InvalidateUserCache removes every cached response belonging to a user.
// Called after any write that changes what the user's read endpoints return.
func (r *RedisClient) InvalidateUserCache(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("http:*%s*", userID)
	log.Debug("Invalidating user cache", zap.String("user_id", userID))
	return r.ClearByPattern(ctx, pattern)
}

// GetPoolStats returns connection pool statistics
func (r *RedisClient) GetPoolStats() *redis.PoolStats {
	return r.client.PoolStats()
}

// ExportMetrics flattens cache metrics for Prometheus gauges
func (r *RedisClient) ExportMetrics() map[string]float64 {
	stats := r.GetPoolStats()
	metrics := map[string]float64{
		"cache_hits":       float64(r.metrics.hits.Load()),
		"cache_misses":     float64(r.metrics.misses.Load()),
		"cache_hit_rate":   float64(r.metrics.hitRate.Load()) / 100.0,
		"cache_last_reset": float64(r.metrics.lastReset.Load()),
		"pool_total_conns": float64(stats.TotalConns),
		"pool_idle_conns":  float64(stats.IdleConns),
		"pool_stale_conns": float64(stats.StaleConns),
	}
	return metrics
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.client
}
