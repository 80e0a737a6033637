package http

import (
	"github.com/gin-gonic/gin"
)

// TerminalRoutes registers the point-of-sale routes: session lifecycle,
// cart, checkout, inventory view and restock.
type TerminalRoutes struct {
	handler *Handler
}

// NewTerminalRoutes creates the POS route group.
func NewTerminalRoutes(handler *Handler) *TerminalRoutes {
	return &TerminalRoutes{handler: handler}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (r *TerminalRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/session", r.handler.OpenSession)
}

// RegisterProtectedRoutes registers the session-scoped routes.
func (r *TerminalRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.DELETE("/session", r.handler.CloseSession)

	cart := rg.Group("/cart")
	{
		cart.GET("", r.handler.GetCart)
		cart.POST("/items", r.handler.AddCartItem)
		cart.POST("/items/remove", r.handler.RemoveCartItem)
		cart.POST("/checkout", r.handler.Checkout)
	}

	inv := rg.Group("/inventory")
	{
		inv.GET("", r.handler.GetInventory)
		inv.POST("/reload", r.handler.ReloadInventory)
		inv.POST("/filter", r.handler.SetInventoryFilter)
		inv.POST("/page", r.handler.GoToInventoryPage)
		inv.GET("/alerts", r.handler.GetLowStockAlerts)

		inv.POST("/restock/open", r.handler.OpenRestock)
		inv.POST("/restock/close", r.handler.CloseRestock)
		inv.POST("/restock", r.handler.SubmitRestock)
	}
}
