package http

import (
	"github.com/gin-gonic/gin"

	"samaritans-api/internal/auth"
	"samaritans-api/pkg/log"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Domain string
	Secure bool
}

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	SignupOrganization(c *gin.Context)
	SignupSamaritan(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie CookieConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie CookieConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
