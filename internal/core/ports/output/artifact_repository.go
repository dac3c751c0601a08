package ports

import (
	"context"

	"model-serving-service/internal/core/domain"
)

// ArtifactRepository reads the serialized model and its metadata record
// from durable storage. Implementations must return
// domain.ErrArtifactNotFound (possibly wrapped) when the artifact or
// its metadata is missing.
type ArtifactRepository interface {
	Fetch(ctx context.Context) (*domain.ModelArtifact, error)
}
