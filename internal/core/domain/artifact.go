package domain

import "time"

type ModelType string

const (
	ModelTypeRandomForest       ModelType = "random_forest"
	ModelTypeLogisticRegression ModelType = "logistic_regression"
)

func (t ModelType) IsValid() bool {
	switch t {
	case ModelTypeRandomForest, ModelTypeLogisticRegression:
		return true
	}
	return false
}

// ArtifactMetadata is the structured record co-located with the
// serialized model. It is produced by the training pipeline and is the
// sole source of truth for the expected digest, feature names and class
// labels; the deserialized model is validated against it at load time.
type ArtifactMetadata struct {
	ModelType       ModelType `json:"model_type"`
	Version         string    `json:"version"`
	Accuracy        float64   `json:"accuracy"`
	Features        []string  `json:"features"`
	Classes         []string  `json:"classes"`
	TrainingSamples int       `json:"training_samples,omitempty"`
	TestSamples     int       `json:"test_samples,omitempty"`
	ModelFile       string    `json:"model_file,omitempty"`
	ModelDigest     string    `json:"model_digest"`
	ModelSignature  string    `json:"model_signature,omitempty"`
	DigestAlgorithm string    `json:"digest_algorithm"`
}

// ModelArtifact pairs the raw serialized model bytes with their
// metadata record, exactly as fetched from durable storage.
type ModelArtifact struct {
	Bytes    []byte
	Metadata *ArtifactMetadata
}

// Predictor is the executable model deserialized from an artifact.
// Implementations are immutable after construction and safe for
// concurrent use.
type Predictor interface {
	// Predict returns the predicted class index and the class
	// probability distribution for a validated feature vector.
	Predict(features []float64) (int, []float64, error)

	// NumFeatures returns the input dimensionality the model expects.
	NumFeatures() int

	// NumClasses returns the output cardinality of the model.
	NumClasses() int
}

// LoadedModel is the in-memory, verified, deserialized model. It is
// constructed once by the model store and never mutated afterwards.
type LoadedModel struct {
	Predictor Predictor
	Metadata  *ArtifactMetadata
	LoadedAt  time.Time
}

func (m *LoadedModel) Version() string { return m.Metadata.Version }
