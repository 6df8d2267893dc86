package handlers

import (
	"net/http"
	"strings"
	"time"

	"bistro-api/middleware"
	"bistro-api/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// CheckoutCart charges the session's cart and places the order
func (h *Handler) CheckoutCart(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Checkout.Submit(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Order placed successfully",
		"order":          order,
		"estimated_time": order.EstimatedTime,
		"tracking_url":   h.trackingURL(order.ID),
	})
}

// GetOrderDetail returns a single order with its status history. The order
// id doubles as the tracking code, so no session is required.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, ok := h.Orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	history, err := h.Orders.History(c.Request.Context(), order.ID)
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"status_history":  history,
		"minutes_elapsed": int(time.Since(order.CreatedAt).Minutes()),
	})
}

// GetOrderQR renders the tracking URL as a PNG QR code
func (h *Handler) GetOrderQR(c *gin.Context) {
	order, ok := h.Orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	png, err := qrcode.Encode(h.trackingURL(order.ID), qrcode.Medium, 256)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// CancelOrder lets the customer withdraw an order the kitchen has not started
func (h *Handler) CancelOrder(c *gin.Context) {
	order, err := h.Orders.CancelForSession(c.Request.Context(), c.Param("id"), middleware.GetSessionID(c))
	if err != nil {
		h.respondError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}

func (h *Handler) trackingURL(id string) string {
	return strings.TrimRight(h.PublicURL, "/") + "/api/orders/" + id
}
