// Package credentials holds the two client-side credentials the portal
// carries on behalf of the browser: the session token that proves a
// logged-in identity, and the API key that authorizes generation calls.
// The two are never interchangeable; each dispatcher operation declares
// which one it needs.
package credentials

import "time"

const (
	// cookie names matching what the serika dashboard has always used
	DefaultSessionCookie = "auth_token"
	DefaultAPIKeyCookie  = "api_key"

	// both credentials persist for a fixed 7-day window
	TTL = 7 * 24 * time.Hour
)

// Store persists and retrieves the two named credentials. Reads return
// ("", false) when the credential is absent; clears are idempotent. Values
// are opaque strings - no validation, no rotation.
type Store interface {
	SessionToken() (string, bool)
	SetSessionToken(token string)
	ClearSessionToken()

	APIKey() (string, bool)
	SetAPIKey(key string)
	ClearAPIKey()
}

// removes both credential kinds (logout semantics)
func ClearAll(s Store) {
	s.ClearSessionToken()
	s.ClearAPIKey()
}
