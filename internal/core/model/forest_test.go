package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"model-serving-service/internal/core/domain"
	"model-serving-service/internal/testutil"
)

func TestDecodeRandomForest(t *testing.T) {
	p, err := Decode(domain.ModelTypeRandomForest, testutil.IrisForestBytes())
	assert.NoError(t, err)
	assert.Equal(t, 4, p.NumFeatures())
	assert.Equal(t, 3, p.NumClasses())
}

func TestDecodeRandomForest_MalformedJSON(t *testing.T) {
	_, err := Decode(domain.ModelTypeRandomForest, []byte(`{"trees": [`))
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestDecodeRandomForest_NoTrees(t *testing.T) {
	_, err := Decode(domain.ModelTypeRandomForest, []byte(`{"num_features": 4, "num_classes": 3, "trees": []}`))
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestDecodeRandomForest_BadChildIndex(t *testing.T) {
	body := `{"num_features": 2, "num_classes": 2, "trees": [
		{"nodes": [{"feature": 0, "threshold": 1, "left": 1, "right": 9}, {"feature": -1, "dist": [1, 0]}]}
	]}`
	_, err := Decode(domain.ModelTypeRandomForest, []byte(body))
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestDecodeRandomForest_LeafDistWrongLength(t *testing.T) {
	body := `{"num_features": 2, "num_classes": 3, "trees": [
		{"nodes": [{"feature": -1, "dist": [0.5, 0.5]}]}
	]}`
	_, err := Decode(domain.ModelTypeRandomForest, []byte(body))
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestDecode_UnknownModelType(t *testing.T) {
	_, err := Decode(domain.ModelType("gradient_boost"), testutil.IrisForestBytes())
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestRandomForest_Predict(t *testing.T) {
	p, err := Decode(domain.ModelTypeRandomForest, testutil.IrisForestBytes())
	assert.NoError(t, err)

	cases := []struct {
		features []float64
		class    int
	}{
		{[]float64{5.1, 3.5, 1.4, 0.2}, 0}, // setosa
		{[]float64{6.0, 2.9, 4.5, 1.5}, 1}, // versicolor
		{[]float64{6.9, 3.1, 5.4, 2.1}, 2}, // virginica
	}
	for _, tc := range cases {
		idx, probs, err := p.Predict(tc.features)
		assert.NoError(t, err)
		assert.Equal(t, tc.class, idx)
		assert.Len(t, probs, 3)

		var sum float64
		for _, v := range probs {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestRandomForest_PredictWrongDimension(t *testing.T) {
	p, err := Decode(domain.ModelTypeRandomForest, testutil.IrisForestBytes())
	assert.NoError(t, err)

	_, _, err = p.Predict([]float64{1, 2})
	assert.Error(t, err)
}
