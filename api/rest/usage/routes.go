package usage

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/auth"
)

func RegisterRoutes(rg *gin.RouterGroup, factory ClientFactory, cookieName string) {
	rg.GET("/usage", auth.RequireSession(cookieName), Handler(factory))
}
