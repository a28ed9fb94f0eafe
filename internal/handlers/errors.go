package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
)

// respondError translates service errors into HTTP responses. Validation errors carry
// their per-field details so clients can render all violations at once.
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not permitted for this user"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyConverted):
		c.JSON(http.StatusConflict, gin.H{"error": "Entry already converted"})
	case errors.Is(err, apperrors.ErrStorageFull):
		c.JSON(http.StatusInsufficientStorage, gin.H{"error": "Storage capacity exceeded, free up space and retry"})
	default:
		if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
			logger.Error("Unhandled service error", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// requireActor fetches the acting user's ID or ends the request with 401.
func requireActor(c *gin.Context) (string, bool) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No acting user: select a persona or set the " + middleware.ActorHeader + " header"})
	}
	return actorID, ok
}

// bindJSON binds the request body or ends the request with 400.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}
