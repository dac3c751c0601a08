package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"model-serving-service/internal/adapters/primary/http/dto"
	"model-serving-service/internal/core/domain"
	"model-serving-service/internal/testutil"
)

func TestGetModelInfo(t *testing.T) {
	repo := new(testutil.MockArtifactRepository)
	repo.On("Fetch", mock.Anything).Return(testutil.IrisArtifact(), nil)
	r := setupRouter(repo)

	req, _ := http.NewRequest("GET", "/api/v1/model/info", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModelInfoResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "random_forest", resp.ModelType)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Len(t, resp.Features, 4)
	assert.ElementsMatch(t, []string{"setosa", "versicolor", "virginica"}, resp.Classes)
}

func TestGetModelInfo_ArtifactMissing(t *testing.T) {
	repo := new(testutil.MockArtifactRepository)
	repo.On("Fetch", mock.Anything).Return(nil, domain.ErrArtifactNotFound)
	r := setupRouter(repo)

	req, _ := http.NewRequest("GET", "/api/v1/model/info", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReloadModel(t *testing.T) {
	v2 := testutil.IrisArtifact()
	v2.Metadata.Version = "2.0.0"

	repo := new(testutil.MockArtifactRepository)
	repo.On("Fetch", mock.Anything).Return(testutil.IrisArtifact(), nil).Once()
	repo.On("Fetch", mock.Anything).Return(v2, nil)
	r := setupRouter(repo)

	// Warm the store.
	w := postPredict(r, dto.PredictRequest{Features: []float64{5.1, 3.5, 1.4, 0.2}})
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest("POST", "/api/v1/model/reload", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReloadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "reloaded", resp.Status)
	assert.Equal(t, "2.0.0", resp.ModelVersion)
}

func TestReloadModel_CorruptedReplacementKeepsServing(t *testing.T) {
	corrupt := testutil.IrisArtifact()
	corrupt.Bytes[5] ^= 0x01

	repo := new(testutil.MockArtifactRepository)
	repo.On("Fetch", mock.Anything).Return(testutil.IrisArtifact(), nil).Once()
	repo.On("Fetch", mock.Anything).Return(corrupt, nil)
	r := setupRouter(repo)

	w := postPredict(r, dto.PredictRequest{Features: []float64{5.1, 3.5, 1.4, 0.2}})
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ := http.NewRequest("POST", "/api/v1/model/reload", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// The previous model keeps answering.
	w = postPredict(r, dto.PredictRequest{Features: []float64{5.1, 3.5, 1.4, 0.2}})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PredictResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "setosa", resp.Prediction)
	assert.Equal(t, "1.0.0", resp.ModelVersion)
}
