package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/serika"
)

// ClientFactory builds a request-scoped dispatcher whose credentials
// live in the caller's cookies.
type ClientFactory func(c *gin.Context) *serika.Client

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the current session cookie without
// verifying its signature. Display only.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
	IssuedAt      string `json:"issuedAt,omitempty"`
	ExpiresAt     string `json:"expiresAt,omitempty"`
	Expired       bool   `json:"expired"`
	Opaque        bool   `json:"opaque,omitempty"`
}
