package routes

import (
	"bistro-api/handlers"
	"bistro-api/metrics"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint on r. session resolves the cart
// session for routes that act on behalf of a visitor.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, session gin.HandlerFunc) {
	r.Use(metrics.Middleware())

	r.GET("/health", h.Health)
	r.GET("/", h.Welcome)
	r.GET("/metrics", metrics.Handler())

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/restaurant", h.GetRestaurant)
		public.GET("/menu", h.GetMenu)
		public.GET("/menu/categories", h.GetCategories)
		public.GET("/menu/:id", h.GetMenuItem)

		// Order ids double as tracking codes
		public.GET("/orders/:id", h.GetOrderDetail)
		public.GET("/orders/:id/qr", h.GetOrderQR)

		public.GET("/reservations/slots", h.GetSlots)
		public.GET("/reservations/:id", h.GetReservation)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Session routes ─────────────────────────────────────────────
	visitor := r.Group("/api")
	visitor.Use(session)
	{
		visitor.GET("/cart", h.GetCart)
		visitor.POST("/cart/items", h.AddCartItem)
		visitor.PUT("/cart/items/:id", h.UpdateCartItem)
		visitor.DELETE("/cart/items/:id", h.RemoveCartItem)
		visitor.DELETE("/cart", h.ClearCart)
		visitor.POST("/cart/checkout", h.CheckoutCart)

		visitor.PUT("/orders/:id/cancel", h.CancelOrder)

		visitor.POST("/reservations", h.CreateReservation)
		visitor.PUT("/reservations/:id/cancel", h.CancelReservation)
	}

	// ── Operator routes ────────────────────────────────────────────
	admin := r.Group("/api/admin")
	{
		admin.GET("/dashboard", h.AdminDashboard)

		admin.GET("/orders", h.AdminListOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.PUT("/orders/:id/force-status", h.AdminForceOrderStatus)

		admin.GET("/reservations", h.AdminListReservations)
		admin.PUT("/reservations/:id/status", h.AdminUpdateReservationStatus)
		admin.PUT("/reservations/:id/force-status", h.AdminForceReservationStatus)
	}
}
