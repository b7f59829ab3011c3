package http

import (
	"github.com/gin-gonic/gin"

	"samaritans-api/internal/item"
	"samaritans-api/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Donate(c *gin.Context)
	Browse(c *gin.Context)
	Categories(c *gin.Context)
	Reserve(c *gin.Context)
	Unreserve(c *gin.Context)
	Pickup(c *gin.Context)
	OrganizationHistory(c *gin.Context)
	SamaritanHistory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
