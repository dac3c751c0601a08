package handlers

import (
	"errors"
	"net/http"

	"model-serving-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Service unavailable: no trustworthy model to serve with
	case errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrIntegrityViolation),
		errors.Is(err, domain.ErrDeserialization),
		errors.Is(err, domain.ErrModelNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Model/metadata inconsistency is a server bug
	case errors.Is(err, domain.ErrInference):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
