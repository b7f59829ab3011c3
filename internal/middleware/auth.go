package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"samaritans-api/internal/model"
	"samaritans-api/pkg/response"
)

// SessionCookie is the cookie holding the session token.
const SessionCookie = "session"

const scopeKey = "scope"

// Auth verifies the session token from the cookie (or an Authorization
// bearer header) and stores the request scope in the gin context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, ok := m.tokenCache.Get(token)
		if !ok {
			var err error
			sc, err = m.jwtManager.Verify(token)
			if err != nil {
				m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			m.tokenCache.Add(token, sc)
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// ScopeFromContext returns the request scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
