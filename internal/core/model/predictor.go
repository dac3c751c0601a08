// Package model implements the executable predictors a serialized
// artifact can decode into. The artifact body is a JSON document whose
// shape is selected by the model type declared in the artifact
// metadata; decoding validates the document's internal consistency
// before any predictor is constructed.
package model

import (
	"fmt"

	"model-serving-service/internal/core/domain"
)

// Decode deserializes verified artifact bytes into a predictor of the
// declared type. All failures wrap domain.ErrDeserialization.
func Decode(modelType domain.ModelType, data []byte) (domain.Predictor, error) {
	switch modelType {
	case domain.ModelTypeRandomForest:
		return decodeRandomForest(data)
	case domain.ModelTypeLogisticRegression:
		return decodeLogisticRegression(data)
	default:
		return nil, fmt.Errorf("%w: unknown model type %q", domain.ErrDeserialization, modelType)
	}
}

func argmax(values []float64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
