// Package localfs reads the model artifact and its metadata record
// from the local filesystem, the default artifact source.
package localfs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"model-serving-service/internal/core/domain"
	ports "model-serving-service/internal/core/ports/output"
)

type artifactRepo struct {
	modelPath    string
	metadataPath string
}

func NewArtifactRepository(modelPath, metadataPath string) ports.ArtifactRepository {
	return &artifactRepo{modelPath: modelPath, metadataPath: metadataPath}
}

func (r *artifactRepo) Fetch(ctx context.Context) (*domain.ModelArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metaBytes, err := os.ReadFile(r.metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: metadata file %s", domain.ErrArtifactNotFound, r.metadataPath)
		}
		return nil, fmt.Errorf("read metadata %s: %w", r.metadataPath, err)
	}

	var meta domain.ArtifactMetadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, fmt.Errorf("%w: malformed metadata record: %v", domain.ErrDeserialization, err)
	}

	content, err := os.ReadFile(r.modelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: model file %s", domain.ErrArtifactNotFound, r.modelPath)
		}
		return nil, fmt.Errorf("read model %s: %w", r.modelPath, err)
	}

	return &domain.ModelArtifact{Bytes: content, Metadata: &meta}, nil
}
