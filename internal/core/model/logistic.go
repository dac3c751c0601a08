package model

import (
	"encoding/json"
	"fmt"
	"math"

	"model-serving-service/internal/core/domain"
)

type logisticState struct {
	NumFeatures int         `json:"num_features"`
	NumClasses  int         `json:"num_classes"`
	Weights     [][]float64 `json:"weights"` // [class][feature]
	Intercepts  []float64   `json:"intercepts"`
}

// LogisticRegression is a multinomial softmax classifier. Immutable
// after decode.
type LogisticRegression struct {
	numFeatures int
	numClasses  int
	weights     [][]float64
	intercepts  []float64
}

func decodeLogisticRegression(data []byte) (*LogisticRegression, error) {
	var state logisticState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeserialization, err)
	}
	if state.NumFeatures <= 0 || state.NumClasses <= 0 {
		return nil, fmt.Errorf("%w: non-positive feature or class count", domain.ErrDeserialization)
	}
	if len(state.Weights) != state.NumClasses {
		return nil, fmt.Errorf("%w: %d weight rows for %d classes",
			domain.ErrDeserialization, len(state.Weights), state.NumClasses)
	}
	for i, row := range state.Weights {
		if len(row) != state.NumFeatures {
			return nil, fmt.Errorf("%w: weight row %d has %d entries, want %d",
				domain.ErrDeserialization, i, len(row), state.NumFeatures)
		}
	}
	if len(state.Intercepts) != state.NumClasses {
		return nil, fmt.Errorf("%w: %d intercepts for %d classes",
			domain.ErrDeserialization, len(state.Intercepts), state.NumClasses)
	}
	return &LogisticRegression{
		numFeatures: state.NumFeatures,
		numClasses:  state.NumClasses,
		weights:     state.Weights,
		intercepts:  state.Intercepts,
	}, nil
}

func (l *LogisticRegression) NumFeatures() int { return l.numFeatures }
func (l *LogisticRegression) NumClasses() int  { return l.numClasses }

func (l *LogisticRegression) Predict(features []float64) (int, []float64, error) {
	if len(features) != l.numFeatures {
		return 0, nil, fmt.Errorf("predictor expects %d features, got %d", l.numFeatures, len(features))
	}

	logits := make([]float64, l.numClasses)
	for c := range logits {
		z := l.intercepts[c]
		for f, w := range l.weights[c] {
			z += w * features[f]
		}
		logits[c] = z
	}

	// Softmax, shifted by the max logit for numeric stability.
	maxLogit := logits[argmax(logits)]
	var sum float64
	probs := make([]float64, l.numClasses)
	for c, z := range logits {
		probs[c] = math.Exp(z - maxLogit)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}

	return argmax(probs), probs, nil
}
