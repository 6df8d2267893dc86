package handlers

import (
	"errors"
	"net/http"

	"bistro-api/service"
	"bistro-api/statemachine"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP responses. notFound is the
// message used for store.ErrNotFound.
func (h *Handler) respondError(c *gin.Context, err error, notFound string) {
	var verr *service.ValidationError
	var terr *statemachine.TransitionError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": verr.Fields})
	case errors.As(err, &terr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    terr.From,
			"requested":         terr.To,
			"reason":            terr.Error(),
			"valid_next_states": terr.Valid,
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, store.ErrStatusConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Status was changed by someone else, reload and try again"})
	case errors.Is(err, statemachine.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownMenuItem):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReservationRejected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Log.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
	}
}
