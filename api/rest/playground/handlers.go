package playground

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"codeberg.org/serika/portal/internal/errors"
	"codeberg.org/serika/portal/internal/serika"
)

// generationLimiter caps how fast this portal instance fires generation
// requests at the backend. Burst covers a user clicking through a few
// prompts, sustained hammering gets a local 429 without burning quota.
var generationLimiter = rate.NewLimiter(rate.Limit(5), 10)

func allowGeneration(c *gin.Context) bool {
	if generationLimiter.Allow() {
		return true
	}
	c.JSON(http.StatusTooManyRequests, errors.ErrorResponse{
		Error:   errors.CodeRateLimited,
		Message: "too many generation requests, slow down",
	})
	return false
}

// ModelsHandler lists the models available to the configured API key.
//
//	@Summary	List models
//	@Tags		playground
//	@Produce	json
//	@Success	200	{object}	serika.ModelsResponse
//	@Failure	401	{object}	errors.ErrorResponse
//	@Router		/playground/models [get]
func ModelsHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		models, err := factory(c).Models(c.Request.Context())
		if err != nil {
			if errors.Is(err, serika.ErrNoAPIKey) {
				errors.Unauthorized(c, "no api key configured")
				return
			}
			errors.Upstream(c, "failed to list models", err)
			return
		}
		c.JSON(http.StatusOK, models)
	}
}

// CharactersHandler lists characters usable in chat completions.
func CharactersHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		chars, err := factory(c).Characters(c.Request.Context())
		if err != nil {
			if errors.Is(err, serika.ErrNoAPIKey) {
				errors.Unauthorized(c, "no api key configured")
				return
			}
			errors.Upstream(c, "failed to list characters", err)
			return
		}
		if chars == nil {
			chars = []serika.Character{}
		}
		c.JSON(http.StatusOK, CharactersResponse{Characters: chars})
	}
}

// ChatHandler forwards a chat completion. Requests are validated
// locally so obviously broken payloads never cost an upstream call.
//
//	@Summary	Chat completion
//	@Tags		playground
//	@Accept		json
//	@Produce	json
//	@Param		request	body		serika.ChatRequest	true	"Chat request"
//	@Success	200		{object}	serika.ChatResponse
//	@Failure	400		{object}	errors.ErrorResponse
//	@Failure	401		{object}	errors.ErrorResponse
//	@Router		/playground/chat [post]
func ChatHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serika.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if len(req.Messages) == 0 {
			errors.BadRequest(c, "messages must not be empty", nil)
			return
		}
		for _, m := range req.Messages {
			if strings.TrimSpace(m.Content) == "" {
				errors.BadRequest(c, "message content must not be empty", nil)
				return
			}
		}

		if !allowGeneration(c) {
			return
		}

		resp, err := factory(c).ChatCompletion(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, serika.ErrNoAPIKey) {
				errors.Unauthorized(c, "no api key configured")
				return
			}
			errors.Upstream(c, "chat completion failed", err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ImagesHandler forwards an image generation request.
func ImagesHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req serika.ImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Prompt) == "" {
			errors.BadRequest(c, "prompt is required", nil)
			return
		}

		if !allowGeneration(c) {
			return
		}

		resp, err := factory(c).GenerateImage(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, serika.ErrNoAPIKey) {
				errors.Unauthorized(c, "no api key configured")
				return
			}
			errors.Upstream(c, "image generation failed", err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SetAPIKeyHandler stores the playground's API key cookie. The key is
// held client-side only, the portal keeps no copy.
func SetAPIKeyHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetAPIKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		factory(c).Credentials().SetAPIKey(req.APIKey)
		c.JSON(http.StatusOK, gin.H{"message": "api key saved"})
	}
}

// ClearAPIKeyHandler drops the playground's API key cookie.
func ClearAPIKeyHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		factory(c).Credentials().ClearAPIKey()
		c.JSON(http.StatusOK, gin.H{"message": "api key cleared"})
	}
}
