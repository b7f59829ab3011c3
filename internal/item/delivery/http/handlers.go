package http

import (
	"github.com/gin-gonic/gin"

	"samaritans-api/internal/middleware"
	"samaritans-api/pkg/response"
)

// Donate godoc
// @Summary     Donate an item
// @Description Creates a new donation listing in the Offered state. Samaritan accounts only.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body donateReq true "Listing data"
// @Success     201 {object} donateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - organizations cannot donate"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [POST]
func (h *handler) Donate(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processDonateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Donate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Donate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newDonateResp(output))
}

// Browse godoc
// @Summary     Browse offered items
// @Description Returns a page of offered listings near the organization, closest first. Search and best-before narrow the current page only.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       page           query int     false "Page number (default: 1)"
// @Param       items_per_page query int     false "Page size (default: 25)"
// @Param       radius         query number  false "Radius in km (default: 5)"
// @Param       category       query int     false "Category id, 0 for all"
// @Param       search         query string  false "Description substring, case-insensitive"
// @Param       best_before    query string  false "Exact best-before date (YYYY-MM-DD)"
// @Success     200 {object} browseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - samaritans cannot browse"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/organization/browse [GET]
func (h *handler) Browse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processBrowseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Browse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Browse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBrowseResp(output))
}

// Categories godoc
// @Summary     List donation categories
// @Description Returns the category reference table.
// @Tags        Items
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/items/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}

// Reserve godoc
// @Summary     Reserve an item
// @Description Transitions an offered listing to Reserved for the acting organization.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} lifecycleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - not in the required state"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/reserve [POST]
func (h *handler) Reserve(c *gin.Context) {
	h.transition(c, "Reserve", h.uc.Reserve)
}

// Unreserve godoc
// @Summary     Release a reservation
// @Description Transitions a reserved listing back to Offered. Holder only.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} lifecycleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - held by another organization"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - not in the required state"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/unreserve [POST]
func (h *handler) Unreserve(c *gin.Context) {
	h.transition(c, "Unreserve", h.uc.Unreserve)
}

// Pickup godoc
// @Summary     Confirm a pickup
// @Description Transitions a reserved listing to PickedUp. Holder only; the state is terminal.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} lifecycleResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden - held by another organization"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - not in the required state"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items/{id}/pickup [POST]
func (h *handler) Pickup(c *gin.Context) {
	h.transition(c, "Pickup", h.uc.Pickup)
}

// OrganizationHistory godoc
// @Summary     Organization claim history
// @Description Returns the organization's held reservations and completed pickups, each independently paginated.
// @Tags        Items
// @Produce     json
// @Param       page           query int false "Page number (default: 1)"
// @Param       items_per_page query int false "Page size (default: 25)"
// @Param       category       query int false "Category id, 0 for all"
// @Success     200 {object} organizationHistoryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/organization/history [GET]
func (h *handler) OrganizationHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OrganizationHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.OrganizationHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOrganizationHistoryResp(output))
}

// SamaritanHistory godoc
// @Summary     Samaritan donation history
// @Description Returns the donor's listings split into picked up and pending, each independently paginated.
// @Tags        Items
// @Produce     json
// @Param       page           query int false "Page number (default: 1)"
// @Param       items_per_page query int false "Page size (default: 25)"
// @Param       category       query int false "Category id, 0 for all"
// @Success     200 {object} samaritanHistoryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/samaritan/history [GET]
func (h *handler) SamaritanHistory(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SamaritanHistory(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SamaritanHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSamaritanHistoryResp(output))
}
