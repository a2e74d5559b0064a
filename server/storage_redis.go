package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	config "github.com/inference-gateway/sam3d/server/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStorageFactory implements StorageFactory for Redis storage
type RedisStorageFactory struct{}

// SupportedProvider returns the provider name
func (f *RedisStorageFactory) SupportedProvider() string {
	return "redis"
}

// ValidateConfig validates the configuration for Redis storage
func (f *RedisStorageFactory) ValidateConfig(cfg config.StorageConfig) error {
	if cfg.RedisURL == "" {
		return fmt.Errorf("STORAGE_REDIS_URL is required for Redis storage provider")
	}
	return nil
}

// CreateStorage connects to Redis and returns a storage instance
func (f *RedisStorageFactory) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		zap.String("addr", opt.Addr),
		zap.Int("db", opt.DB))

	return NewRedisArtifactStorage(client, cfg.KeyPrefix), nil
}

// RedisArtifactStorage implements ArtifactStorageProvider with one string key
// per artifact
type RedisArtifactStorage struct {
	client *redis.Client
	prefix string
}

var _ ArtifactStorageProvider = (*RedisArtifactStorage)(nil)

// NewRedisArtifactStorage wraps an existing client
func NewRedisArtifactStorage(client *redis.Client, prefix string) *RedisArtifactStorage {
	return &RedisArtifactStorage{client: client, prefix: prefix}
}

func (r *RedisArtifactStorage) key(name string) string {
	return r.prefix + name
}

// Store writes the artifact with a single SET, which Redis applies atomically
func (r *RedisArtifactStorage) Store(ctx context.Context, name string, data []byte) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store artifact in Redis: %w", err)
	}
	return nil
}

// Retrieve reads the artifact
func (r *RedisArtifactStorage) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to retrieve artifact from Redis: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Exists checks if an artifact exists in Redis
func (r *RedisArtifactStorage) Exists(ctx context.Context, name string) (bool, error) {
	name, err := validateName(name)
	if err != nil {
		return false, err
	}

	n, err := r.client.Exists(ctx, r.key(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check artifact existence in Redis: %w", err)
	}
	return n > 0, nil
}

// Delete removes an artifact from Redis
func (r *RedisArtifactStorage) Delete(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(name)).Err(); err != nil {
		return fmt.Errorf("failed to delete artifact from Redis: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (r *RedisArtifactStorage) Close() error {
	return r.client.Close()
}
