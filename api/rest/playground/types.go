package playground

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/serika"
)

type ClientFactory func(c *gin.Context) *serika.Client

type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey" binding:"required,min=8"`
}

type CharactersResponse struct {
	Characters []serika.Character `json:"characters"`
}
