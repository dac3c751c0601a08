package handlers

import (
	"model-serving-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// ServiceVersion is the API version reported by health and root
// endpoints, distinct from the model version in prediction responses.
const ServiceVersion = "1.0.0"

type Handler struct {
	store  *services.ModelStore
	engine *services.InferenceEngine
}

func New(store *services.ModelStore, engine *services.InferenceEngine) *Handler {
	return &Handler{store: store, engine: engine}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/model/info", h.GetModelInfo)
	r.POST("/model/reload", h.ReloadModel)
}
