package billing

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/auth"
)

func RegisterRoutes(rg *gin.RouterGroup, factory ClientFactory, cookieName string) {
	group := rg.Group("/billing", auth.RequireSession(cookieName))

	group.GET("", OverviewHandler(factory))
	group.POST("/setup", SetupHandler(factory))
}
