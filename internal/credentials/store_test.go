package credentials

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGetClear(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.SessionToken()
	assert.False(t, ok, "empty store should report no session token")

	store.SetSessionToken("tok-123")
	token, ok := store.SessionToken()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	store.ClearSessionToken()
	_, ok = store.SessionToken()
	assert.False(t, ok)

	// clearing again must be a no-op
	store.ClearSessionToken()
	_, ok = store.SessionToken()
	assert.False(t, ok)
}

func TestMemoryStore_CredentialsAreIndependent(t *testing.T) {
	store := NewMemoryStore()

	store.SetSessionToken("session-abc")
	store.SetAPIKey("sk-xyz")

	store.ClearSessionToken()

	_, ok := store.SessionToken()
	assert.False(t, ok)

	key, ok := store.APIKey()
	require.True(t, ok, "clearing the session token must not touch the API key")
	assert.Equal(t, "sk-xyz", key)
}

func TestClearAll_RemovesBothKinds(t *testing.T) {
	store := NewMemoryStore()
	store.SetSessionToken("session-abc")
	store.SetAPIKey("sk-xyz")

	ClearAll(store)

	_, ok := store.SessionToken()
	assert.False(t, ok)
	_, ok = store.APIKey()
	assert.False(t, ok)
}

func newTestContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}

	return c, rec
}

func TestCookieStore_ReadsRequestCookies(t *testing.T) {
	c, _ := newTestContext(t,
		&http.Cookie{Name: DefaultSessionCookie, Value: "session-abc"},
		&http.Cookie{Name: DefaultAPIKeyCookie, Value: "sk-xyz"},
	)

	store := NewCookieStore(c, "", false)

	token, ok := store.SessionToken()
	require.True(t, ok)
	assert.Equal(t, "session-abc", token)

	key, ok := store.APIKey()
	require.True(t, ok)
	assert.Equal(t, "sk-xyz", key)
}

func TestCookieStore_MissingCookieReturnsFalse(t *testing.T) {
	c, _ := newTestContext(t)
	store := NewCookieStore(c, "", false)

	token, ok := store.SessionToken()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestCookieStore_WritePersistsSevenDays(t *testing.T) {
	c, rec := newTestContext(t)
	store := NewCookieStore(c, "", false)

	store.SetSessionToken("session-abc")

	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, DefaultSessionCookie+"=session-abc")
	assert.Contains(t, header, "Max-Age=604800", "credential cookies persist for 7 days")
	assert.Contains(t, header, "HttpOnly")
}

func TestCookieStore_ClearExpiresCookie(t *testing.T) {
	c, rec := newTestContext(t, &http.Cookie{Name: DefaultAPIKeyCookie, Value: "sk-xyz"})
	store := NewCookieStore(c, "", false)

	store.ClearAPIKey()

	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, DefaultAPIKeyCookie+"=")
	assert.Contains(t, header, "Max-Age=0", "cleared cookies expire immediately")
}

func TestCookieStore_CustomSessionCookieName(t *testing.T) {
	c, _ := newTestContext(t, &http.Cookie{Name: "serika_jwt", Value: "session-abc"})
	store := NewCookieStore(c, "serika_jwt", false)

	token, ok := store.SessionToken()
	require.True(t, ok)
	assert.Equal(t, "session-abc", token)
}

func TestSealedCookieStore_RoundTrip(t *testing.T) {
	hashKey := []byte(strings.Repeat("h", 32))
	blockKey := []byte(strings.Repeat("b", 32))

	// write through a sealed store
	writeCtx, rec := newTestContext(t)
	writer := NewSealedCookieStore(NewCookieStore(writeCtx, "", false), hashKey, blockKey)
	writer.SetAPIKey("sk-xyz")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotContains(t, cookies[0].Value, "sk-xyz", "sealed value must not leak the plaintext key")

	// read it back through a second request carrying the sealed cookie
	readCtx, _ := newTestContext(t, &http.Cookie{Name: DefaultAPIKeyCookie, Value: cookies[0].Value})
	reader := NewSealedCookieStore(NewCookieStore(readCtx, "", false), hashKey, blockKey)

	key, ok := reader.APIKey()
	require.True(t, ok)
	assert.Equal(t, "sk-xyz", key)
}

func TestSealedCookieStore_TamperedValueReadsAsAbsent(t *testing.T) {
	hashKey := []byte(strings.Repeat("h", 32))
	blockKey := []byte(strings.Repeat("b", 32))

	c, _ := newTestContext(t, &http.Cookie{Name: DefaultAPIKeyCookie, Value: "not-a-sealed-value"})
	store := NewSealedCookieStore(NewCookieStore(c, "", false), hashKey, blockKey)

	_, ok := store.APIKey()
	assert.False(t, ok)
}
