package server

import (
	"context"
	"fmt"
	"sort"
	"sync"

	config "github.com/inference-gateway/sam3d/server/config"
	"go.uber.org/zap"
)

// StorageFactory defines the interface for creating artifact storage instances
type StorageFactory interface {
	// CreateStorage creates a storage instance with the given configuration
	CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error)

	// SupportedProvider returns the provider name this factory supports
	SupportedProvider() string

	// ValidateConfig validates the configuration for this provider
	ValidateConfig(cfg config.StorageConfig) error
}

// StorageFactoryRegistry manages registered storage providers
type StorageFactoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]StorageFactory
}

// globalRegistry is the global storage factory registry
var globalRegistry = &StorageFactoryRegistry{
	factories: make(map[string]StorageFactory),
}

// RegisterStorageProvider registers a storage provider factory
func RegisterStorageProvider(provider string, factory StorageFactory) {
	globalRegistry.Register(provider, factory)
}

// GetSupportedProviders returns the sorted names of all registered providers
func GetSupportedProviders() []string {
	return globalRegistry.GetProviders()
}

// CreateArtifactStorage creates the storage backend selected by the configuration
func CreateArtifactStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	return globalRegistry.CreateStorage(ctx, cfg, logger)
}

// Register registers a factory for a provider
func (r *StorageFactoryRegistry) Register(provider string, factory StorageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if factory.SupportedProvider() != provider {
		panic(fmt.Sprintf("factory provider mismatch: expected %s, got %s", provider, factory.SupportedProvider()))
	}

	r.factories[provider] = factory
}

// GetFactory retrieves a factory for a provider
func (r *StorageFactoryRegistry) GetFactory(provider string) (StorageFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[provider]
	if !exists {
		return nil, fmt.Errorf("unsupported storage provider: %s (supported: %v)", provider, r.getProviderNames())
	}

	return factory, nil
}

// GetProviders returns a list of all registered provider names
func (r *StorageFactoryRegistry) GetProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.getProviderNames()
}

// getProviderNames must be called with the read lock held
func (r *StorageFactoryRegistry) getProviderNames() []string {
	providers := make([]string, 0, len(r.factories))
	for provider := range r.factories {
		providers = append(providers, provider)
	}
	sort.Strings(providers)
	return providers
}

// CreateStorage creates a storage instance using the appropriate factory
func (r *StorageFactoryRegistry) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	factory, err := r.GetFactory(cfg.Provider)
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration for provider %s: %w", cfg.Provider, err)
	}

	return factory.CreateStorage(ctx, cfg, logger)
}

// FilesystemStorageFactory implements StorageFactory for the local filesystem
type FilesystemStorageFactory struct{}

// SupportedProvider returns the provider name
func (f *FilesystemStorageFactory) SupportedProvider() string {
	return "filesystem"
}

// ValidateConfig validates the configuration for filesystem storage
func (f *FilesystemStorageFactory) ValidateConfig(cfg config.StorageConfig) error {
	if cfg.BasePath == "" {
		return fmt.Errorf("STORAGE_BASE_PATH is required for filesystem storage provider")
	}
	return nil
}

// CreateStorage creates a filesystem storage instance
func (f *FilesystemStorageFactory) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	s, err := NewFilesystemArtifactStorage(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	logger.Info("using filesystem artifact store", zap.String("path", cfg.BasePath))
	return s, nil
}

// MinIOStorageFactory implements StorageFactory for MinIO and S3
type MinIOStorageFactory struct{}

// SupportedProvider returns the provider name
func (f *MinIOStorageFactory) SupportedProvider() string {
	return "minio"
}

// ValidateConfig validates the configuration for MinIO storage
func (f *MinIOStorageFactory) ValidateConfig(cfg config.StorageConfig) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("STORAGE_ENDPOINT is required for MinIO storage provider")
	}
	if cfg.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET_NAME is required for MinIO storage provider")
	}
	return nil
}

// CreateStorage creates a MinIO storage instance
func (f *MinIOStorageFactory) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	s, err := NewMinIOArtifactStorage(ctx, cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.BucketName, cfg.UseSSL)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to MinIO",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.BucketName))
	return s, nil
}

func init() {
	RegisterStorageProvider("filesystem", &FilesystemStorageFactory{})
	RegisterStorageProvider("minio", &MinIOStorageFactory{})
	RegisterStorageProvider("redis", &RedisStorageFactory{})
	RegisterStorageProvider("pebble", &PebbleStorageFactory{})
}
