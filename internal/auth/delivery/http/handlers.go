package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"samaritans-api/internal/middleware"
	"samaritans-api/pkg/response"
	"samaritans-api/pkg/scope"
)

// SignupOrganization godoc
// @Summary     Register an organization
// @Description Creates a recipient organization account anchored at a location.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupOrganizationReq true "Account data"
// @Success     201 {object} signupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username or email taken"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup/organization [POST]
func (h *handler) SignupOrganization(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupOrganizationReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SignupOrganization(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignupOrganization: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newSignupResp(output))
}

// SignupSamaritan godoc
// @Summary     Register a samaritan
// @Description Creates a donor account.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupSamaritanReq true "Account data"
// @Success     201 {object} signupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username or email taken"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup/samaritan [POST]
func (h *handler) SignupSamaritan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupSamaritanReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SignupSamaritan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignupSamaritan: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newSignupResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and sets the session cookie. Username may be an email.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized - invalid credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setSessionCookie(c, output.Token, int(scope.TokenExpiry.Seconds()))
	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current session
// @Description Returns the identity bound to the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newMeResp(sc))
}

func (h *handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}
