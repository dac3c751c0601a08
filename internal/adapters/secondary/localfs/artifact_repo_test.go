package localfs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"model-serving-service/internal/core/domain"
	"model-serving-service/internal/testutil"
)

func writeFixture(t *testing.T) (modelPath, metaPath string) {
	t.Helper()
	dir := t.TempDir()
	modelPath = filepath.Join(dir, "iris_classifier.json")
	metaPath = filepath.Join(dir, "model_metadata.json")

	body := testutil.IrisForestBytes()
	assert.NoError(t, os.WriteFile(modelPath, body, 0o644))

	metaBytes, err := json.Marshal(testutil.IrisMetadata(body))
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(metaPath, metaBytes, 0o644))
	return modelPath, metaPath
}

func TestFetch(t *testing.T) {
	modelPath, metaPath := writeFixture(t)
	repo := NewArtifactRepository(modelPath, metaPath)

	artifact, err := repo.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, testutil.IrisForestBytes(), artifact.Bytes)
	assert.Equal(t, "1.0.0", artifact.Metadata.Version)
	assert.Len(t, artifact.Metadata.Features, 4)
	assert.Len(t, artifact.Metadata.Classes, 3)
}

func TestFetch_MissingModelFile(t *testing.T) {
	_, metaPath := writeFixture(t)
	repo := NewArtifactRepository(filepath.Join(t.TempDir(), "nope.json"), metaPath)

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestFetch_MissingMetadataFile(t *testing.T) {
	modelPath, _ := writeFixture(t)
	repo := NewArtifactRepository(modelPath, filepath.Join(t.TempDir(), "nope.json"))

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrArtifactNotFound)
}

func TestFetch_MalformedMetadata(t *testing.T) {
	modelPath, metaPath := writeFixture(t)
	assert.NoError(t, os.WriteFile(metaPath, []byte("{not json"), 0o644))
	repo := NewArtifactRepository(modelPath, metaPath)

	_, err := repo.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}
