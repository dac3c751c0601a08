package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"model-serving-service/internal/core/domain"
)

const logisticJSON = `{
	"num_features": 2,
	"num_classes": 3,
	"weights": [[2.0, -1.0], [0.5, 0.5], [-2.0, 1.0]],
	"intercepts": [0.1, 0.0, -0.1]
}`

func TestDecodeLogisticRegression(t *testing.T) {
	p, err := Decode(domain.ModelTypeLogisticRegression, []byte(logisticJSON))
	assert.NoError(t, err)
	assert.Equal(t, 2, p.NumFeatures())
	assert.Equal(t, 3, p.NumClasses())
}

func TestDecodeLogisticRegression_ShapeMismatch(t *testing.T) {
	cases := []string{
		`{"num_features": 2, "num_classes": 3, "weights": [[1, 2], [3, 4]], "intercepts": [0, 0, 0]}`,
		`{"num_features": 2, "num_classes": 2, "weights": [[1], [3, 4]], "intercepts": [0, 0]}`,
		`{"num_features": 2, "num_classes": 2, "weights": [[1, 2], [3, 4]], "intercepts": [0]}`,
	}
	for _, body := range cases {
		_, err := Decode(domain.ModelTypeLogisticRegression, []byte(body))
		assert.ErrorIs(t, err, domain.ErrDeserialization)
	}
}

func TestLogisticRegression_Predict(t *testing.T) {
	p, err := Decode(domain.ModelTypeLogisticRegression, []byte(logisticJSON))
	assert.NoError(t, err)

	// Strongly positive first feature favors class 0.
	idx, probs, err := p.Predict([]float64{3.0, 0.0})
	assert.NoError(t, err)
	assert.Equal(t, 0, idx)

	var sum float64
	for _, v := range probs {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// Mirrored input favors the mirrored class.
	idx, _, err = p.Predict([]float64{-3.0, 0.0})
	assert.NoError(t, err)
	assert.Equal(t, 2, idx)
}
