package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/pebble"
	config "github.com/inference-gateway/sam3d/server/config"
	"go.uber.org/zap"
)

// PebbleStorageFactory implements StorageFactory for an embedded Pebble store
type PebbleStorageFactory struct{}

// SupportedProvider returns the provider name
func (f *PebbleStorageFactory) SupportedProvider() string {
	return "pebble"
}

// ValidateConfig validates the configuration for Pebble storage
func (f *PebbleStorageFactory) ValidateConfig(cfg config.StorageConfig) error {
	if cfg.PebblePath == "" {
		return fmt.Errorf("STORAGE_PEBBLE_PATH is required for Pebble storage provider")
	}
	return nil
}

// CreateStorage opens the Pebble database
func (f *PebbleStorageFactory) CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (ArtifactStorageProvider, error) {
	s, err := NewPebbleArtifactStorage(cfg.PebblePath)
	if err != nil {
		return nil, err
	}
	logger.Info("opened pebble artifact store", zap.String("path", cfg.PebblePath))
	return s, nil
}

var pebbleKeyPrefix = []byte("artifact/")

// PebbleArtifactStorage implements ArtifactStorageProvider on an embedded
// key-value store
type PebbleArtifactStorage struct {
	db *pebble.DB
}

var _ ArtifactStorageProvider = (*PebbleArtifactStorage)(nil)

// NewPebbleArtifactStorage opens or creates a Pebble database at dir
func NewPebbleArtifactStorage(dir string) (*PebbleArtifactStorage, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble store: %w", err)
	}
	return &PebbleArtifactStorage{db: db}, nil
}

func pebbleKey(name string) []byte {
	key := make([]byte, 0, len(pebbleKeyPrefix)+len(name))
	key = append(key, pebbleKeyPrefix...)
	return append(key, name...)
}

// Store writes the artifact. Single key sets are atomic.
func (p *PebbleArtifactStorage) Store(ctx context.Context, name string, data []byte) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := p.db.Set(pebbleKey(name), data, pebble.Sync); err != nil {
		return fmt.Errorf("failed to store artifact in pebble: %w", err)
	}
	return nil
}

// Retrieve copies the artifact out of the store
func (p *PebbleArtifactStorage) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	val, closer, err := p.db.Get(pebbleKey(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to retrieve artifact from pebble: %w", err)
	}
	// val is only valid until closer is closed
	data := bytes.Clone(val)
	_ = closer.Close()

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Exists checks if an artifact exists in the store
func (p *PebbleArtifactStorage) Exists(ctx context.Context, name string) (bool, error) {
	name, err := validateName(name)
	if err != nil {
		return false, err
	}

	_, closer, err := p.db.Get(pebbleKey(name))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check artifact existence in pebble: %w", err)
	}
	_ = closer.Close()
	return true, nil
}

// Delete removes an artifact from the store
func (p *PebbleArtifactStorage) Delete(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := p.db.Delete(pebbleKey(name), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete artifact from pebble: %w", err)
	}
	return nil
}

// Close flushes and closes the database
func (p *PebbleArtifactStorage) Close() error {
	return p.db.Close()
}
