package keys

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/errors"
	"codeberg.org/serika/portal/internal/logger"
	"codeberg.org/serika/portal/internal/serika"
)

// ListHandler returns every API key on the account. Plaintext key
// material is never present in list responses.
//
//	@Summary	List API keys
//	@Tags		keys
//	@Produce	json
//	@Success	200	{object}	ListKeysResponse
//	@Failure	401	{object}	errors.ErrorResponse
//	@Router		/keys [get]
func ListHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := factory(c).ListKeys(c.Request.Context())
		if err != nil {
			errors.Upstream(c, "failed to list keys", err)
			return
		}
		if list == nil {
			list = []serika.APIKey{}
		}
		c.JSON(http.StatusOK, ListKeysResponse{Keys: list})
	}
}

// CreateHandler mints a new key. The response is the only place the
// plaintext key ever appears.
//
//	@Summary	Create an API key
//	@Tags		keys
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateKeyRequest	true	"Key name"
//	@Success	200		{object}	serika.APIKey
//	@Failure	400		{object}	errors.ErrorResponse
//	@Router		/keys [post]
func CreateHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		key, err := factory(c).CreateKey(c.Request.Context(), req.Name)
		if err != nil {
			errors.Upstream(c, "failed to create key", err)
			return
		}

		logger.Info("api key created", "key_id", key.ID, "name", key.Name)
		c.JSON(http.StatusOK, key)
	}
}

// GetHandler returns one key's metadata.
func GetHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := factory(c).GetKey(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.Upstream(c, "failed to fetch key", err)
			return
		}
		c.JSON(http.StatusOK, key)
	}
}

// RegenerateHandler replaces the key material while keeping the key's
// identity and usage history. Like create, the plaintext appears once.
//
//	@Summary	Regenerate an API key
//	@Tags		keys
//	@Produce	json
//	@Param		id	path		string	true	"Key id"
//	@Success	200	{object}	serika.APIKey
//	@Router		/keys/{id}/regenerate [post]
func RegenerateHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := factory(c).RegenerateKey(c.Request.Context(), c.Param("id"))
		if err != nil {
			errors.Upstream(c, "failed to regenerate key", err)
			return
		}

		logger.Info("api key regenerated", "key_id", key.ID)
		c.JSON(http.StatusOK, key)
	}
}

// DeleteHandler permanently removes a key.
func DeleteHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := factory(c).DeleteKey(c.Request.Context(), id); err != nil {
			errors.Upstream(c, "failed to delete key", err)
			return
		}

		logger.Info("api key deleted", "key_id", id)
		c.JSON(http.StatusOK, gin.H{"message": "key deleted"})
	}
}

// EnableHandler reactivates a disabled key.
func EnableHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := factory(c).EnableKey(c.Request.Context(), c.Param("id")); err != nil {
			errors.Upstream(c, "failed to enable key", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "key enabled"})
	}
}

// DisableHandler deactivates a key without touching its usage history.
func DisableHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := factory(c).DisableKey(c.Request.Context(), c.Param("id")); err != nil {
			errors.Upstream(c, "failed to disable key", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "key disabled"})
	}
}

// PermissionsHandler replaces a key's permission set.
func PermissionsHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdatePermissionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if err := factory(c).UpdateKeyPermissions(c.Request.Context(), c.Param("id"), req.Permissions); err != nil {
			errors.Upstream(c, "failed to update permissions", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "permissions updated"})
	}
}
