package http

import (
	"github.com/gin-gonic/gin"
)

// processDonateReq binds and validates the donate request body.
func (h *handler) processDonateReq(c *gin.Context) (donateReq, error) {
	var req donateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processBrowseReq binds and validates the browse query parameters.
func (h *handler) processBrowseReq(c *gin.Context) (browseReq, error) {
	var req browseReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
