package domain

// PredictionRequest is an ordered numeric feature vector. Its length
// must equal the loaded model's declared feature count and every value
// must be finite; the inference engine enforces both before the
// predictor is invoked.
type PredictionRequest struct {
	Features []float64
}

// PredictionResult is the typed outcome of a single inference call.
// Probabilities covers every class label and sums to 1 within
// floating-point tolerance; Confidence is the probability of the
// predicted class.
type PredictionResult struct {
	Prediction    string
	Confidence    float64
	Probabilities map[string]float64
	ModelVersion  string
}
