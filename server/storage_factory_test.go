package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	config "github.com/inference-gateway/sam3d/server/config"
)

type stubStorageFactory struct {
	provider    string
	invalid     bool
	createCalls int
}

func (s *stubStorageFactory) SupportedProvider() string {
	return s.provider
}

func (s *stubStorageFactory) ValidateConfig(config.StorageConfig) error {
	if s.invalid {
		return assert.AnError
	}
	return nil
}

func (s *stubStorageFactory) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	s.createCalls++
	return NewFilesystemArtifactStorage(cfg.BasePath)
}

func newTestRegistry() *StorageFactoryRegistry {
	return &StorageFactoryRegistry{factories: make(map[string]StorageFactory)}
}

func TestStorageFactoryRegistry(t *testing.T) {
	registry := newTestRegistry()
	stub := &stubStorageFactory{provider: "test"}
	registry.Register("test", stub)

	factory, err := registry.GetFactory("test")
	require.NoError(t, err)
	assert.Equal(t, stub, factory)

	_, err = registry.GetFactory("nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage provider: nonexistent")
	assert.Contains(t, err.Error(), "[test]")

	assert.Equal(t, []string{"test"}, registry.GetProviders())
}

func TestStorageFactoryRegistryPanicsOnMismatch(t *testing.T) {
	registry := newTestRegistry()

	assert.Panics(t, func() {
		registry.Register("expected", &stubStorageFactory{provider: "actual"})
	})
}

func TestStorageFactoryRegistry_CreateStorage(t *testing.T) {
	tests := []struct {
		name        string
		invalid     bool
		wantErr     string
		wantCreates int
	}{
		{name: "valid configuration", wantCreates: 1},
		{name: "invalid configuration", invalid: true, wantErr: "invalid configuration for provider test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := newTestRegistry()
			stub := &stubStorageFactory{provider: "test", invalid: tt.invalid}
			registry.Register("test", stub)

			cfg := config.StorageConfig{Provider: "test", BasePath: t.TempDir()}
			storage, err := registry.CreateStorage(context.Background(), cfg, zaptest.NewLogger(t))
			assert.Equal(t, tt.wantCreates, stub.createCalls)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.ErrorIs(t, err, assert.AnError)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, storage.Close())
		})
	}
}

func TestStorageFactories_ValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		factory StorageFactory
		cfg     config.StorageConfig
		wantErr string
	}{
		{
			name:    "filesystem requires base path",
			factory: &FilesystemStorageFactory{},
			wantErr: "STORAGE_BASE_PATH is required",
		},
		{
			name:    "filesystem with base path",
			factory: &FilesystemStorageFactory{},
			cfg:     config.StorageConfig{BasePath: "./outputs"},
		},
		{
			name:    "minio requires bucket",
			factory: &MinIOStorageFactory{},
			cfg:     config.StorageConfig{Endpoint: "minio:9000"},
			wantErr: "STORAGE_BUCKET_NAME is required",
		},
		{
			name:    "minio complete",
			factory: &MinIOStorageFactory{},
			cfg:     config.StorageConfig{Endpoint: "minio:9000", BucketName: "models"},
		},
		{
			name:    "pebble requires path",
			factory: &PebbleStorageFactory{},
			wantErr: "STORAGE_PEBBLE_PATH is required",
		},
		{
			name:    "redis requires url",
			factory: &RedisStorageFactory{},
			wantErr: "STORAGE_REDIS_URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.factory.ValidateConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
