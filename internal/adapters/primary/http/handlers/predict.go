package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/adapters/primary/http/dto"
	"model-serving-service/internal/core/domain"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "features field is required"})
		return
	}

	m, err := h.store.GetModel(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("model unavailable for prediction")
		mapDomainError(c, err)
		return
	}

	result, err := h.engine.Predict(m, &domain.PredictionRequest{Features: req.Features})
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(result))
}
