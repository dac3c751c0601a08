package dto

import (
	"time"

	"model-serving-service/internal/core/domain"
)

type ModelInfoResponse struct {
	ModelType       string   `json:"model_type"`
	Version         string   `json:"version"`
	Accuracy        float64  `json:"accuracy"`
	Features        []string `json:"features"`
	Classes         []string `json:"classes"`
	TrainingSamples int      `json:"training_samples,omitempty"`
	TestSamples     int      `json:"test_samples,omitempty"`
	DigestAlgorithm string   `json:"digest_algorithm,omitempty"`
	LoadedAt        string   `json:"loaded_at"`
}

func ToModelInfoResponse(m *domain.LoadedModel) ModelInfoResponse {
	meta := m.Metadata
	return ModelInfoResponse{
		ModelType:       string(meta.ModelType),
		Version:         meta.Version,
		Accuracy:        meta.Accuracy,
		Features:        meta.Features,
		Classes:         meta.Classes,
		TrainingSamples: meta.TrainingSamples,
		TestSamples:     meta.TestSamples,
		DigestAlgorithm: meta.DigestAlgorithm,
		LoadedAt:        m.LoadedAt.UTC().Format(time.RFC3339),
	}
}

type ReloadResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"model_version"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
}
