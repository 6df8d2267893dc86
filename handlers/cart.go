package handlers

import (
	"net/http"

	"bistro-api/middleware"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	MenuItemID          string `json:"menu_item_id" binding:"required"`
	Quantity            *int   `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func cartBody(cart *store.Cart) gin.H {
	return gin.H{
		"items":       cart.Lines(),
		"total_items": cart.TotalItems(),
		"total_price": cart.TotalPrice().StringFixed(2),
	}
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.Carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, cartBody(cart))
}

// AddCartItem adds a dish, merging with an existing line for the same dish
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	cart, err := h.Carts.AddItem(c.Request.Context(), middleware.GetSessionID(c), req.MenuItemID, quantity, req.SpecialInstructions)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, cartBody(cart))
}

// UpdateCartItem sets an absolute quantity; zero removes the line
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := h.Carts.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, cartBody(cart))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	cart, err := h.Carts.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, cartBody(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.Carts.Clear(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.respondError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
