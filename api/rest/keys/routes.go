package keys

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/auth"
)

// RegisterRoutes mounts key management. Every route is session-gated.
func RegisterRoutes(rg *gin.RouterGroup, factory ClientFactory, cookieName string) {
	group := rg.Group("/keys", auth.RequireSession(cookieName))

	group.GET("", ListHandler(factory))
	group.POST("", CreateHandler(factory))
	group.GET("/:id", GetHandler(factory))
	group.POST("/:id/regenerate", RegenerateHandler(factory))
	group.DELETE("/:id", DeleteHandler(factory))
	group.POST("/:id/enable", EnableHandler(factory))
	group.PUT("/:id/disable", DisableHandler(factory))
	group.PUT("/:id/permissions", PermissionsHandler(factory))
}
