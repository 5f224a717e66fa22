package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler reports liveness. It does not touch the upstream API so the
// portal stays green even when the backend is down.
//
//	@Summary		Health check
//	@Description	Returns ok when the portal process is accepting requests
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PingHandler is a minimal probe for load balancers.
func PingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
