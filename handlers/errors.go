package handlers

import (
	"errors"
	"net/http"

	"emporia-backend/payment"
	"emporia-backend/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError translates the service error taxonomy to HTTP statuses:
// NotFound 404, Conflict 409, InvalidState 400, gateway failures 502.
func writeServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var conflict *services.ConflictError
	var invalid *services.InvalidStateError
	var gateway *payment.GatewayError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	case errors.As(err, &gateway):
		c.JSON(http.StatusBadGateway, gin.H{"error": gateway.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
