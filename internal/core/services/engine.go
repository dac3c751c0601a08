package services

import (
	"fmt"
	"math"

	"model-serving-service/internal/core/domain"
)

// InferenceEngine turns a validated feature vector into a typed
// prediction. It holds no state; validation happens entirely before
// the predictor is invoked, and failed calls are never retried here.
type InferenceEngine struct{}

func NewInferenceEngine() *InferenceEngine {
	return &InferenceEngine{}
}

func (e *InferenceEngine) Predict(m *domain.LoadedModel, req *domain.PredictionRequest) (*domain.PredictionResult, error) {
	meta := m.Metadata

	if len(req.Features) != len(meta.Features) {
		return nil, &domain.ValidationError{
			Reason: fmt.Sprintf("expected %d features, got %d", len(meta.Features), len(req.Features)),
		}
	}
	for i, v := range req.Features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &domain.ValidationError{
				Reason: fmt.Sprintf("feature %d (%s) is not a finite number", i, meta.Features[i]),
			}
		}
	}

	classIdx, probs, err := m.Predictor.Predict(req.Features)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInference, err)
	}

	// Metadata and model are validated against each other at load time;
	// a violation here is an internal inconsistency, not bad input.
	if classIdx < 0 || classIdx >= len(meta.Classes) {
		return nil, fmt.Errorf("%w: class index %d outside label range [0,%d)",
			domain.ErrInference, classIdx, len(meta.Classes))
	}
	if len(probs) != len(meta.Classes) {
		return nil, fmt.Errorf("%w: %d probabilities for %d labels",
			domain.ErrInference, len(probs), len(meta.Classes))
	}

	probabilities := make(map[string]float64, len(meta.Classes))
	for i, label := range meta.Classes {
		probabilities[label] = probs[i]
	}

	return &domain.PredictionResult{
		Prediction:    meta.Classes[classIdx],
		Confidence:    probs[classIdx],
		Probabilities: probabilities,
		ModelVersion:  meta.Version,
	}, nil
}
