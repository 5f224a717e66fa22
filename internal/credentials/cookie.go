package credentials

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
)

// CookieStore reads credentials from the incoming request's cookies and
// writes them as plaintext Set-Cookie headers on the response, scoped to a
// single request/response pair.
type CookieStore struct {
	c             *gin.Context
	sessionCookie string
	secure        bool
}

// binds a cookie store to a request. sessionCookie overrides the session
// cookie name (AUTH_COOKIE_NAME); pass "" for the default.
func NewCookieStore(c *gin.Context, sessionCookie string, secure bool) *CookieStore {
	if sessionCookie == "" {
		sessionCookie = DefaultSessionCookie
	}

	return &CookieStore{c: c, sessionCookie: sessionCookie, secure: secure}
}

func (s *CookieStore) SessionToken() (string, bool) {
	return s.read(s.sessionCookie)
}

func (s *CookieStore) SetSessionToken(token string) {
	s.write(s.sessionCookie, token, int(TTL.Seconds()))
}

func (s *CookieStore) ClearSessionToken() {
	s.write(s.sessionCookie, "", -1)
}

func (s *CookieStore) APIKey() (string, bool) {
	return s.read(DefaultAPIKeyCookie)
}

func (s *CookieStore) SetAPIKey(key string) {
	s.write(DefaultAPIKeyCookie, key, int(TTL.Seconds()))
}

func (s *CookieStore) ClearAPIKey() {
	s.write(DefaultAPIKeyCookie, "", -1)
}

func (s *CookieStore) read(name string) (string, bool) {
	value, err := s.c.Cookie(name)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}

func (s *CookieStore) write(name, value string, maxAge int) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(name, value, maxAge, "/", "", s.secure, true)
}

// SealedCookieStore is a CookieStore whose values are encrypted and
// authenticated with securecookie, so the credential never appears in
// plaintext on the wire or on disk.
type SealedCookieStore struct {
	inner *CookieStore
	codec *securecookie.SecureCookie
}

// wraps a cookie store with a securecookie codec derived from the portal
// session secret. hashKey and blockKey must be 32 bytes each.
func NewSealedCookieStore(inner *CookieStore, hashKey, blockKey []byte) *SealedCookieStore {
	return &SealedCookieStore{
		inner: inner,
		codec: securecookie.New(hashKey, blockKey),
	}
}

func (s *SealedCookieStore) SessionToken() (string, bool) {
	return s.unseal(s.inner.sessionCookie)
}

func (s *SealedCookieStore) SetSessionToken(token string) {
	s.seal(s.inner.sessionCookie, token)
}

func (s *SealedCookieStore) ClearSessionToken() {
	s.inner.ClearSessionToken()
}

func (s *SealedCookieStore) APIKey() (string, bool) {
	return s.unseal(DefaultAPIKeyCookie)
}

func (s *SealedCookieStore) SetAPIKey(key string) {
	s.seal(DefaultAPIKeyCookie, key)
}

func (s *SealedCookieStore) ClearAPIKey() {
	s.inner.ClearAPIKey()
}

func (s *SealedCookieStore) seal(name, value string) {
	sealed, err := s.codec.Encode(name, value)
	if err != nil {
		// encoding only fails on misconfigured keys; treat as absent
		return
	}

	s.inner.write(name, sealed, int(TTL.Seconds()))
}

func (s *SealedCookieStore) unseal(name string) (string, bool) {
	sealed, ok := s.inner.read(name)
	if !ok {
		return "", false
	}

	var value string
	if err := s.codec.Decode(name, sealed, &value); err != nil {
		return "", false
	}

	return value, value != ""
}
