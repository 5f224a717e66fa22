package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/auth"
	"codeberg.org/serika/portal/internal/errors"
	"codeberg.org/serika/portal/internal/logger"
	"codeberg.org/serika/portal/internal/serika"
)

// LoginHandler exchanges email/password for a session token. The
// dispatcher persists the token into the auth cookie, so the response
// body is informational.
//
//	@Summary		Log in
//	@Description	Authenticates against the upstream API and sets the session cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	serika.LoginResponse
//	@Failure		400		{object}	errors.ErrorResponse
//	@Failure		401		{object}	errors.ErrorResponse
//	@Router			/auth/login [post]
func LoginHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		client := factory(c)
		resp, err := client.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			errors.Upstream(c, "login failed", err)
			return
		}

		userID := ""
		if resp.User != nil {
			userID = resp.User.ID
		}
		logger.Info("user logged in", "user_id", userID)
		c.JSON(http.StatusOK, resp)
	}
}

// LogoutHandler clears both credential cookies. It never calls the
// upstream API.
func LogoutHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		factory(c).Logout()
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// MeHandler returns the authenticated user's profile.
//
//	@Summary	Current user
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	serika.User
//	@Failure	401	{object}	errors.ErrorResponse
//	@Router		/auth/me [get]
func MeHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := factory(c).CurrentUser(c.Request.Context())
		if err != nil {
			if errors.Is(err, serika.ErrNoSessionToken) {
				errors.Unauthorized(c, "not logged in")
				return
			}
			errors.Upstream(c, "failed to fetch user", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// SessionHandler describes the session cookie itself. The token is
// decoded without signature verification, for display only.
func SessionHandler(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
			return
		}

		info, err := auth.ParseSessionInfo(token)
		if err != nil {
			c.JSON(http.StatusOK, SessionResponse{Authenticated: true, Opaque: true})
			return
		}

		resp := SessionResponse{
			Authenticated: true,
			Subject:       info.Subject,
			Expired:       info.Expired,
		}
		// iat and exp are optional claims, absent ones stay empty
		if info.IssuedAt != nil {
			resp.IssuedAt = info.IssuedAt.Format(time.RFC3339)
		}
		if info.ExpiresAt != nil {
			resp.ExpiresAt = info.ExpiresAt.Format(time.RFC3339)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AvatarHandler uploads a new avatar for the current user. The user id
// is resolved server-side so callers cannot write to other profiles.
func AvatarHandler(factory ClientFactory) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("avatar")
		if err != nil {
			errors.BadRequest(c, "avatar file is required", err)
			return
		}

		file, err := header.Open()
		if err != nil {
			errors.InternalError(c, "failed to read upload", err)
			return
		}
		defer file.Close()

		client := factory(c)
		user, err := client.CurrentUser(c.Request.Context())
		if err != nil {
			errors.Upstream(c, "failed to resolve user", err)
			return
		}

		resp, err := client.UploadAvatar(c.Request.Context(), user.ID, header.Filename, file)
		if err != nil {
			errors.Upstream(c, "avatar upload failed", err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
