package handlers

import (
	"net/http"

	"bistro-api/catalog"
	"bistro-api/statemachine"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Bistro Ordering & Reservations API",
		"version": "1.0.0",
	})
}

func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + h.Catalog.Restaurant().Name,
		"docs":    "/api/state-machine",
		"health":  "/health",
		"menu":    "/api/menu",
	})
}

// GetRestaurant returns address, contact details and opening hours
func (h *Handler) GetRestaurant(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"restaurant": h.Catalog.Restaurant()})
}

// GetMenu lists menu items, optionally filtered by category and diet flags
func (h *Handler) GetMenu(c *gin.Context) {
	items := h.Catalog.Items(catalog.Filter{
		Category:       c.Query("category"),
		VegetarianOnly: c.Query("vegetarian") == "true",
		GlutenFreeOnly: c.Query("gluten_free") == "true",
		SpicyOnly:      c.Query("spicy") == "true",
	})
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories := h.Catalog.Categories()
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.Catalog.Item(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetStateMachineInfo returns both lifecycles for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"orders": gin.H{
			"state_machine":   statemachine.Orders.Transitions(),
			"terminal_states": statemachine.Orders.TerminalStates(),
			"description":     "Kitchen order lifecycle",
		},
		"reservations": gin.H{
			"state_machine":   statemachine.Reservations.Transitions(),
			"terminal_states": statemachine.Reservations.TerminalStates(),
			"description":     "Table reservation lifecycle",
		},
	})
}
