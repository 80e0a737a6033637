package http

import (
	"github.com/gin-gonic/gin"
)

// AdminRoutes registers the back-office routes: menu management, café
// management and the analytics dashboard. The router mounts these
// behind the admin gate.
type AdminRoutes struct {
	handler *Handler
}

// NewAdminRoutes creates the back-office route group.
func NewAdminRoutes(handler *Handler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

// RegisterProtectedRoutes registers the admin routes.
func (r *AdminRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	menu := rg.Group("/menu")
	{
		menu.GET("", r.handler.ListMenu)
		menu.POST("", r.handler.AddMenuItem)
		menu.PUT("/:id", r.handler.UpdateMenuItem)
		menu.DELETE("/:id", r.handler.DeleteMenuItem)
	}

	cafes := rg.Group("/cafes")
	{
		cafes.GET("", r.handler.ListCafes)
		cafes.POST("", r.handler.CreateCafe)
		cafes.PUT("/:id", r.handler.UpdateCafe)
		cafes.DELETE("/:id", r.handler.DeleteCafe)
	}

	rg.GET("/analytics", r.handler.GetAnalytics)
}
