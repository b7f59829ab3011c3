package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"samaritans-api/internal/item"
	"samaritans-api/internal/middleware"
	"samaritans-api/internal/model"
	pkgErrors "samaritans-api/pkg/errors"
	"samaritans-api/pkg/response"
)

// transition is the shared handler body for the three lifecycle endpoints.
func (h *handler) transition(c *gin.Context, op string, fn func(context.Context, model.Scope, string) (item.LifecycleOutput, error)) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "item id is required"))
		return
	}

	output, err := fn(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.%s: %v", op, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLifecycleResp(output))
}
