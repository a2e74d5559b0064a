package server

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"go.uber.org/zap"

	types "github.com/inference-gateway/sam3d/types"
)

// StoredModel is a model artifact read from or written to the content store
type StoredModel struct {
	ID     string
	Format types.Format
	Data   []byte
}

// Name returns the storage name of the model
func (m *StoredModel) Name() string {
	return ArtifactName(m.ID, m.Format)
}

// ETag returns the content identifier of the model bytes
func (m *StoredModel) ETag() (string, error) {
	return ContentID(m.Data)
}

// ArtifactService persists and locates model artifacts
//
//go:generate counterfeiter -o mocks/fake_artifact_service.go . ArtifactService
type ArtifactService interface {
	// Persist stores data under a freshly generated id
	Persist(ctx context.Context, format types.Format, data []byte) (*StoredModel, error)

	// Locate finds a model by id, probing every supported format in
	// preference order. Returns ErrNotFound if none is stored.
	Locate(ctx context.Context, id string) (*StoredModel, error)

	// Close closes the underlying storage
	Close() error
}

// ArtifactServiceImpl is the concrete implementation of ArtifactService
type ArtifactServiceImpl struct {
	storage   ArtifactStorageProvider
	publisher EventPublisher
	source    string
	logger    *zap.Logger
	newID     func() string
}

var _ ArtifactService = (*ArtifactServiceImpl)(nil)

// NewArtifactService creates an artifact service on top of a storage provider.
// publisher may be nil.
func NewArtifactService(storage ArtifactStorageProvider, publisher EventPublisher, source string, logger *zap.Logger) *ArtifactServiceImpl {
	if publisher == nil {
		publisher = NoopEventPublisher{}
	}
	return &ArtifactServiceImpl{
		storage:   storage,
		publisher: publisher,
		source:    source,
		logger:    logger,
		newID:     func() string { return uuid.New().String() },
	}
}

// Persist stores the model and announces it. A failed announcement is logged
// and does not fail the call.
func (s *ArtifactServiceImpl) Persist(ctx context.Context, format types.Format, data []byte) (*StoredModel, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	model := &StoredModel{ID: s.newID(), Format: format, Data: data}
	if err := s.storage.Store(ctx, model.Name(), data); err != nil {
		return nil, fmt.Errorf("failed to persist model: %w", err)
	}

	s.logger.Info("model stored",
		zap.String("model_id", model.ID),
		zap.String("format", string(format)),
		zap.Int("size", len(data)))

	etag, err := model.ETag()
	if err != nil {
		s.logger.Warn("failed to compute model etag", zap.String("model_id", model.ID), zap.Error(err))
	}
	event := types.NewModelCreatedEvent(s.source, types.ModelCreatedData{
		ModelID: model.ID,
		Format:  format,
		Size:    len(data),
		ETag:    etag,
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish model event", zap.String("model_id", model.ID), zap.Error(err))
	}

	return model, nil
}

// Locate finds a stored model by id
func (s *ArtifactServiceImpl) Locate(ctx context.Context, id string) (*StoredModel, error) {
	// Only the canonical form is ever minted
	if parsed, err := uuid.Parse(id); err != nil || parsed.String() != id {
		return nil, ErrNotFound
	}

	for _, format := range types.SupportedFormats {
		name := ArtifactName(id, format)
		rc, err := s.storage.Retrieve(ctx, name)
		if errors.Is(err, ErrArtifactNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to retrieve model: %w", err)
		}

		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read model: %w", err)
		}
		return &StoredModel{ID: id, Format: format, Data: data}, nil
	}

	return nil, ErrNotFound
}

// Close closes the underlying storage
func (s *ArtifactServiceImpl) Close() error {
	return s.storage.Close()
}

// ContentID returns the CIDv1 (raw codec, sha2-256) of data
func ContentID(data []byte) (string, error) {
	hash, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("failed to compute multihash: %w", err)
	}
	return cid.NewCidV1(cid.Raw, hash).String(), nil
}
