// Package postgres fetches the model artifact from a Postgres table,
// the blob-reference artifact source. The newest revision of the named
// artifact wins; bytes live in a bytea column, the metadata record in
// a jsonb column alongside.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-serving-service/internal/core/domain"
	ports "model-serving-service/internal/core/ports/output"
)

type artifactRepo struct {
	pool *pgxpool.Pool
	name string
}

func NewArtifactRepository(pool *pgxpool.Pool, name string) ports.ArtifactRepository {
	return &artifactRepo{pool: pool, name: name}
}

func (r *artifactRepo) Fetch(ctx context.Context) (*domain.ModelArtifact, error) {
	query := `
		SELECT content, metadata
		FROM model_artifact
		WHERE name = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var content []byte
	var metaJSON []byte
	err := r.pool.QueryRow(ctx, query, r.name).Scan(&content, &metaJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no artifact named %q", domain.ErrArtifactNotFound, r.name)
		}
		return nil, fmt.Errorf("fetch artifact %q: %w", r.name, err)
	}

	var meta domain.ArtifactMetadata
	if err := json.Unmarshal(metaJSON, &meta); err != nil {
		return nil, fmt.Errorf("%w: malformed metadata record: %v", domain.ErrDeserialization, err)
	}

	return &domain.ModelArtifact{Bytes: content, Metadata: &meta}, nil
}
