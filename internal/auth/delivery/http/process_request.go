package http

import (
	"github.com/gin-gonic/gin"
)

// processSignupOrganizationReq binds and validates the organization signup body.
func (h *handler) processSignupOrganizationReq(c *gin.Context) (signupOrganizationReq, error) {
	var req signupOrganizationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSignupSamaritanReq binds and validates the samaritan signup body.
func (h *handler) processSignupSamaritanReq(c *gin.Context) (signupSamaritanReq, error) {
	var req signupSamaritanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLoginReq binds and validates the login body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
