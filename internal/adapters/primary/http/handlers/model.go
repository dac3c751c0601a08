package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetModelInfo(c *gin.Context) {
	m, err := h.store.GetModel(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModelInfoResponse(m))
}

func (h *Handler) ReloadModel(c *gin.Context) {
	if err := h.store.Reload(c.Request.Context()); err != nil {
		log.WithError(err).Error("reload request failed")
		mapDomainError(c, err)
		return
	}

	m, err := h.store.GetModel(c.Request.Context())
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReloadResponse{
		Status:       "reloaded",
		ModelVersion: m.Metadata.Version,
	})
}
