package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	types "github.com/inference-gateway/sam3d/types"
)

// ErrArtifactNotFound is returned by storage providers when no artifact is
// stored under the requested name
var ErrArtifactNotFound = errors.New("artifact not found")

// ArtifactStorageProvider defines the interface for artifact storage backends.
// Names are flat, see ArtifactName.
//
//go:generate counterfeiter -o mocks/fake_artifact_storage_provider.go . ArtifactStorageProvider
type ArtifactStorageProvider interface {
	// Store writes an artifact. Readers never observe a partially written artifact.
	Store(ctx context.Context, name string, data []byte) error

	// Retrieve opens an artifact for reading
	Retrieve(ctx context.Context, name string) (io.ReadCloser, error)

	// Exists checks if an artifact exists in storage
	Exists(ctx context.Context, name string) (bool, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error

	// Close closes the storage provider and cleans up resources
	Close() error
}

// ArtifactName returns the storage name of a model artifact
func ArtifactName(id string, format types.Format) string {
	return fmt.Sprintf("model_%s.%s", id, format.Extension())
}

// validateName rejects names that would escape a flat namespace
func validateName(name string) (string, error) {
	clean := sanitizePath(name)
	if clean == "" || clean != name {
		return "", fmt.Errorf("invalid artifact name: %q", name)
	}
	return clean, nil
}

// sanitizePath removes dangerous characters and path traversal attempts
func sanitizePath(path string) string {
	path = strings.ReplaceAll(path, "/", "")
	path = strings.ReplaceAll(path, "\\", "")
	path = strings.ReplaceAll(path, "..", "")
	path = strings.TrimSpace(path)
	return path
}
