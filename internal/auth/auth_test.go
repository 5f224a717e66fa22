package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireSession_MissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireSession("auth_token"))
	router.GET("/keys", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/keys", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthorized")
}

func TestRequireSession_StashesToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string

	router := gin.New()
	router.Use(RequireSession("auth_token"))
	router.GET("/keys", func(c *gin.Context) {
		got, _ = SessionToken(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/keys", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "session-abc"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-abc", got)
}

func TestParseSessionInfo(t *testing.T) {
	issued := time.Now().Add(-time.Hour).Truncate(time.Second)
	expires := issued.Add(7 * 24 * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString([]byte("a-secret-we-do-not-know"))
	require.NoError(t, err)

	info, err := ParseSessionInfo(signed)

	require.NoError(t, err, "parsing must not require the signing key")
	assert.Equal(t, "u1", info.Subject)
	assert.False(t, info.Expired)
	require.NotNil(t, info.ExpiresAt)
	assert.WithinDuration(t, expires, *info.ExpiresAt, time.Second)
}

func TestParseSessionInfo_ExpiredTokenStillParses(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	info, err := ParseSessionInfo(signed)

	require.NoError(t, err)
	assert.True(t, info.Expired)
}

func TestParseSessionInfo_OpaqueToken(t *testing.T) {
	_, err := ParseSessionInfo("not-a-jwt-at-all")

	assert.Error(t, err)
}
