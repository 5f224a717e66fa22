package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/auth"
)

// RegisterRoutes mounts the auth endpoints. loginLimiter is applied to
// the login route only so credential stuffing cannot starve the rest of
// the portal.
func RegisterRoutes(rg *gin.RouterGroup, factory ClientFactory, cookieName string, loginLimiter gin.HandlerFunc) {
	group := rg.Group("/auth")

	if loginLimiter != nil {
		group.POST("/login", loginLimiter, LoginHandler(factory))
	} else {
		group.POST("/login", LoginHandler(factory))
	}
	group.POST("/logout", LogoutHandler(factory))
	group.GET("/session", SessionHandler(cookieName))

	authorized := group.Group("", auth.RequireSession(cookieName))
	authorized.GET("/me", MeHandler(factory))
	authorized.PUT("/avatar", AvatarHandler(factory))
}
