package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemArtifactStorage implements ArtifactStorageProvider using a flat
// directory on the local filesystem
type FilesystemArtifactStorage struct {
	basePath string
}

var _ ArtifactStorageProvider = (*FilesystemArtifactStorage)(nil)

// NewFilesystemArtifactStorage creates a new filesystem-based artifact storage provider
func NewFilesystemArtifactStorage(basePath string) (*FilesystemArtifactStorage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}

	return &FilesystemArtifactStorage{basePath: basePath}, nil
}

// Store writes the artifact to a temp file in the same directory and renames
// it into place
func (s *FilesystemArtifactStorage) Store(ctx context.Context, name string, data []byte) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.basePath, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create artifact file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set artifact permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write artifact data: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync artifact data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close artifact file: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(s.basePath, name)); err != nil {
		return fmt.Errorf("failed to commit artifact: %w", err)
	}
	return nil
}

// Retrieve retrieves an artifact from the local filesystem
func (s *FilesystemArtifactStorage) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.basePath, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	return file, nil
}

// Exists checks if an artifact exists in the filesystem
func (s *FilesystemArtifactStorage) Exists(ctx context.Context, name string) (bool, error) {
	name, err := validateName(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(filepath.Join(s.basePath, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check artifact existence: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Delete removes an artifact from the filesystem
func (s *FilesystemArtifactStorage) Delete(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	err = os.Remove(filepath.Join(s.basePath, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// Close is a no-op for filesystem storage
func (s *FilesystemArtifactStorage) Close() error {
	return nil
}
