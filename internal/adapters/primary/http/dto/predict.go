package dto

import "model-serving-service/internal/core/domain"

type PredictRequest struct {
	Features []float64 `json:"features" binding:"required"`
}

type PredictResponse struct {
	Prediction    string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
	ModelVersion  string             `json:"model_version"`
}

func ToPredictResponse(result *domain.PredictionResult) PredictResponse {
	return PredictResponse{
		Prediction:    result.Prediction,
		Confidence:    result.Confidence,
		Probabilities: result.Probabilities,
		ModelVersion:  result.ModelVersion,
	}
}
