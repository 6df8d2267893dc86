package handlers

import (
	"net/http"

	"bistro-api/middleware"
	"bistro-api/service"

	"github.com/gin-gonic/gin"
)

// CreateReservation validates and records a table request
func (h *Handler) CreateReservation(c *gin.Context) {
	var form service.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Booking.Submit(c.Request.Context(), middleware.GetSessionID(c), form)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Reservation requested. We will confirm it shortly.",
		"reservation": res,
	})
}

// GetSlots lists the dates and times the booking form offers
func (h *Handler) GetSlots(c *gin.Context) {
	cal := h.Booking.Calendar()
	c.JSON(http.StatusOK, gin.H{
		"dates":          cal.BookableDates(),
		"times":          cal.TimeSlots(),
		"max_party_size": 12,
	})
}

func (h *Handler) GetReservation(c *gin.Context) {
	res, ok := h.Reservations.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	res, err := h.Reservations.CancelForSession(c.Request.Context(), c.Param("id"), middleware.GetSessionID(c))
	if err != nil {
		h.respondError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully", "reservation_id": res.ID})
}
