// Package testutil provides mocks and a small hand-built iris
// classifier artifact used across the core test suites.
package testutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"model-serving-service/internal/core/domain"
)

// irisForestJSON is a three-tree random forest over the four iris
// measurements. The splits follow the canonical iris decision
// boundaries: short petals are setosa, narrow petals versicolor, the
// rest virginica.
const irisForestJSON = `{
  "num_features": 4,
  "num_classes": 3,
  "trees": [
    {"nodes": [
      {"feature": 2, "threshold": 2.45, "left": 1, "right": 2},
      {"feature": -1, "dist": [1, 0, 0]},
      {"feature": 3, "threshold": 1.75, "left": 3, "right": 4},
      {"feature": -1, "dist": [0, 0.92, 0.08]},
      {"feature": -1, "dist": [0, 0.04, 0.96]}
    ]},
    {"nodes": [
      {"feature": 2, "threshold": 2.6, "left": 1, "right": 2},
      {"feature": -1, "dist": [0.98, 0.02, 0]},
      {"feature": 2, "threshold": 4.85, "left": 3, "right": 4},
      {"feature": -1, "dist": [0, 0.9, 0.1]},
      {"feature": -1, "dist": [0, 0.12, 0.88]}
    ]},
    {"nodes": [
      {"feature": 3, "threshold": 0.8, "left": 1, "right": 2},
      {"feature": -1, "dist": [1, 0, 0]},
      {"feature": 3, "threshold": 1.65, "left": 3, "right": 4},
      {"feature": -1, "dist": [0, 0.88, 0.12]},
      {"feature": -1, "dist": [0, 0.06, 0.94]}
    ]}
  ]
}`

// IrisForestBytes returns the serialized fixture model.
func IrisForestBytes() []byte {
	return []byte(irisForestJSON)
}

// IrisMetadata builds a metadata record for the given artifact bytes
// with the correct SHA-256 digest.
func IrisMetadata(body []byte) *domain.ArtifactMetadata {
	sum := sha256.Sum256(body)
	return &domain.ArtifactMetadata{
		ModelType:       domain.ModelTypeRandomForest,
		Version:         "1.0.0",
		Accuracy:        0.9667,
		Features:        []string{"sepal_length", "sepal_width", "petal_length", "petal_width"},
		Classes:         []string{"setosa", "versicolor", "virginica"},
		TrainingSamples: 120,
		TestSamples:     30,
		ModelFile:       "iris_classifier.json",
		ModelDigest:     hex.EncodeToString(sum[:]),
		DigestAlgorithm: "SHA-256",
	}
}

// IrisArtifact returns the fixture model with matching metadata.
func IrisArtifact() *domain.ModelArtifact {
	body := IrisForestBytes()
	return &domain.ModelArtifact{Bytes: body, Metadata: IrisMetadata(body)}
}

// Sign returns the hex HMAC-SHA256 of body under key.
func Sign(body, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
