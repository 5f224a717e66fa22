package keys

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/serika"
)

type ClientFactory func(c *gin.Context) *serika.Client

type CreateKeyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
}

type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

type ListKeysResponse struct {
	Keys []serika.APIKey `json:"keys"`
}
