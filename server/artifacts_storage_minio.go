package server

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioNoSuchKey = "NoSuchKey"

// MinIOArtifactStorage implements ArtifactStorageProvider using MinIO/S3
type MinIOArtifactStorage struct {
	client     *minio.Client
	bucketName string
}

var _ ArtifactStorageProvider = (*MinIOArtifactStorage)(nil)

// NewMinIOArtifactStorage creates a new MinIO-based artifact storage provider
// and makes sure the bucket exists
func NewMinIOArtifactStorage(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOArtifactStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOArtifactStorage{client: client, bucketName: bucketName}, nil
}

// Store uploads the artifact as a single object. S3 PUTs are atomic.
func (m *MinIOArtifactStorage) Store(ctx context.Context, name string, data []byte) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	_, err = m.client.PutObject(ctx, m.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to store artifact in MinIO: %w", err)
	}
	return nil
}

// Retrieve retrieves an artifact from MinIO
func (m *MinIOArtifactStorage) Retrieve(ctx context.Context, name string) (io.ReadCloser, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	object, err := m.client.GetObject(ctx, m.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve artifact from MinIO: %w", err)
	}
	// GetObject is lazy; Stat surfaces a missing key before the caller reads.
	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to retrieve artifact from MinIO: %w", err)
	}

	return object, nil
}

// Exists checks if an artifact exists in MinIO
func (m *MinIOArtifactStorage) Exists(ctx context.Context, name string) (bool, error) {
	name, err := validateName(name)
	if err != nil {
		return false, err
	}

	_, err = m.client.StatObject(ctx, m.bucketName, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioNoSuchKey {
			return false, nil
		}
		return false, fmt.Errorf("failed to check artifact existence in MinIO: %w", err)
	}
	return true, nil
}

// Delete removes an artifact from MinIO
func (m *MinIOArtifactStorage) Delete(ctx context.Context, name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	if err := m.client.RemoveObject(ctx, m.bucketName, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete artifact from MinIO: %w", err)
	}
	return nil
}

// Close is a no-op, the MinIO client holds no persistent connection
func (m *MinIOArtifactStorage) Close() error {
	return nil
}
