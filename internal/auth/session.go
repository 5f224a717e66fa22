package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// display-only view of the session token's claims
type SessionInfo struct {
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Expired   bool       `json:"expired"`
}

// ParseSessionInfo decodes the session token's registered claims without
// verifying the signature - the signing key lives on the remote backend.
// The result feeds the profile page only; authorization never consults it.
func ParseSessionInfo(token string) (*SessionInfo, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwt.RegisteredClaims{})
	if err != nil {
		return nil, fmt.Errorf("session token is not a JWT: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}

	info := &SessionInfo{Subject: claims.Subject}

	if claims.IssuedAt != nil {
		issued := claims.IssuedAt.Time
		info.IssuedAt = &issued
	}

	if claims.ExpiresAt != nil {
		expires := claims.ExpiresAt.Time
		info.ExpiresAt = &expires
		info.Expired = time.Now().After(expires)
	}

	return info, nil
}
