package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		hasToken      bool
		redirectParam string
		wantAllow     bool
		wantLocation  string
	}{
		{
			name:         "root without token goes to login",
			path:         "/",
			wantLocation: "/login",
		},
		{
			name:         "root with token goes to dashboard",
			path:         "/",
			hasToken:     true,
			wantLocation: "/dashboard",
		},
		{
			name:         "dashboard without token redirects with original target and error flag",
			path:         "/dashboard/api-keys",
			wantLocation: "/login?error=unauthorized&redirect=%2Fdashboard%2Fapi-keys",
		},
		{
			name:         "dashboard root without token",
			path:         "/dashboard",
			wantLocation: "/login?error=unauthorized&redirect=%2Fdashboard",
		},
		{
			name:      "dashboard with token is allowed",
			path:      "/dashboard/usage",
			hasToken:  true,
			wantAllow: true,
		},
		{
			name:         "login with token goes to dashboard",
			path:         "/login",
			hasToken:     true,
			wantLocation: "/dashboard",
		},
		{
			name:          "login with token honors redirect param",
			path:          "/login",
			hasToken:      true,
			redirectParam: "/dashboard/billing",
			wantLocation:  "/dashboard/billing",
		},
		{
			name:          "login redirect param outside dashboard is ignored",
			path:          "/login",
			hasToken:      true,
			redirectParam: "https://evil.example/phish",
			wantLocation:  "/dashboard",
		},
		{
			name:      "login without token is allowed",
			path:      "/login",
			wantAllow: true,
		},
		{
			name:      "unrelated paths pass through",
			path:      "/health",
			wantAllow: true,
		},
		{
			name:      "dashboard prefix without separator is not guarded",
			path:      "/dashboards",
			wantAllow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.path, tt.hasToken, tt.redirectParam)

			assert.Equal(t, tt.wantAllow, decision.Allow)

			if !tt.wantAllow {
				assert.Equal(t, tt.wantLocation, decision.Location)
			}
		})
	}
}

func TestMiddleware_RedirectsWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("auth_token"))
	router.GET("/dashboard/usage", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/usage", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?error=unauthorized&redirect=%2Fdashboard%2Fusage", rec.Header().Get("Location"))
}

func TestMiddleware_PassesWithToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("auth_token"))
	router.GET("/dashboard/usage", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/usage", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "anything"})
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_CustomCookieName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("serika_jwt"))
	router.GET("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "serika_jwt", Value: "anything"})
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}
