package handlers

import (
	"net/http"

	"bistro-api/models"
	"bistro-api/service"
	"bistro-api/statemachine"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type ForceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// AdminDashboard returns the operator overview
func (h *Handler) AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": service.BuildDashboard(h.Orders.Summary(), h.Reservations.Summary()),
	})
}

// AdminListOrders returns all orders, optionally filtered by status
func (h *Handler) AdminListOrders(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if status != "" && !statemachine.Orders.IsValid(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + string(status)})
		return
	}
	orders := h.Orders.List(status)
	summary := h.Orders.Summary()
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary.ByStatus,
		"total_revenue": summary.Revenue.StringFixed(2),
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminUpdateOrderStatus advances an order along its lifecycle
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, prev, err := h.Orders.Transition(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status), statemachine.ActorOperator, req.Note)
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prev,
		"current_status":  order.Status,
	})
}

// AdminForceOrderStatus lets the operator override any order state
func (h *Handler) AdminForceOrderStatus(c *gin.Context) {
	var req ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, prev, err := h.Orders.Force(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status), req.Reason)
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status force-updated by operator",
		"order_id":        order.ID,
		"previous_status": prev,
		"new_status":      order.Status,
	})
}

// AdminListReservations supports ?status= and ?date=YYYY-MM-DD
func (h *Handler) AdminListReservations(c *gin.Context) {
	status := models.ReservationStatus(c.Query("status"))
	if status != "" && !statemachine.Reservations.IsValid(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reservation status: " + string(status)})
		return
	}
	list := h.Reservations.List(status, c.Query("date"))
	summary := h.Reservations.Summary()
	c.JSON(http.StatusOK, gin.H{
		"reservation_summary": summary.ByStatus,
		"expected_guests":     summary.Guests,
		"count":               len(list),
		"reservations":        list,
	})
}

func (h *Handler) AdminUpdateReservationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, prev, err := h.Reservations.Transition(c.Request.Context(), c.Param("id"), models.ReservationStatus(req.Status), statemachine.ActorOperator, req.Note)
	if err != nil {
		h.respondError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Reservation status updated",
		"reservation_id":  res.ID,
		"previous_status": prev,
		"current_status":  res.Status,
	})
}

func (h *Handler) AdminForceReservationStatus(c *gin.Context) {
	var req ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, prev, err := h.Reservations.Force(c.Request.Context(), c.Param("id"), models.ReservationStatus(req.Status), req.Reason)
	if err != nil {
		h.respondError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Reservation status force-updated by operator",
		"reservation_id":  res.ID,
		"previous_status": prev,
		"new_status":      res.Status,
	})
}
