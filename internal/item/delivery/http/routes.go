package http

import (
	"github.com/gin-gonic/gin"

	"samaritans-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Everything except the category table requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("/categories", h.Categories)

		items.POST("", mw.Auth(), h.Donate)
		items.POST("/:id/reserve", mw.Auth(), h.Reserve)
		items.POST("/:id/unreserve", mw.Auth(), h.Unreserve)
		items.POST("/:id/pickup", mw.Auth(), h.Pickup)
	}

	rg.GET("/organization/browse", mw.Auth(), h.Browse)
	rg.GET("/organization/history", mw.Auth(), h.OrganizationHistory)
	rg.GET("/samaritan/history", mw.Auth(), h.SamaritanHistory)
}
