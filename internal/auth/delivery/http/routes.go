package http

import (
	"github.com/gin-gonic/gin"

	"samaritans-api/internal/middleware"
)

// credential endpoints get a small per-IP budget to slow down guessing
const (
	authRPS   = 2
	authBurst = 5
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		limited := mw.RateLimit(authRPS, authBurst)

		authGroup.POST("/signup/organization", limited, h.SignupOrganization)
		authGroup.POST("/signup/samaritan", limited, h.SignupSamaritan)
		authGroup.POST("/login", limited, h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
