package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// applies the navigation decision to page routes. cookieName is the
// session cookie to check for presence (AUTH_COOKIE_NAME).
func Middleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		hasToken := err == nil && token != ""

		decision := Decide(c.Request.URL.Path, hasToken, c.Query("redirect"))

		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
			return
		}

		c.Next()
	}
}
