// Package auth gates the portal's data routes on the presence of the
// session cookie. The token is opaque to us - validity is the remote auth
// backend's call, made on the first proxied request.
package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/errors"
)

const contextTokenKey = "session_token"

// rejects requests without a session cookie and stashes the token in the
// gin context for handlers
func RequireSession(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(contextTokenKey, token)
		c.Next()
	}
}

// extracts the session token after RequireSession
func SessionToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(contextTokenKey)
	if !exists {
		return "", false
	}

	return token.(string), true
}
