package main

import (
	"crypto/sha256"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"codeberg.org/serika/portal/internal/config"
	"codeberg.org/serika/portal/internal/credentials"
	"codeberg.org/serika/portal/internal/logger"
	"codeberg.org/serika/portal/internal/serika"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	prefs := sessions.NewCookieStore(deriveKey(cfg.SessionSecret, "prefs-auth"))
	prefs.Options.HttpOnly = true
	prefs.Options.Secure = cfg.Environment == "production"
	prefs.Options.Path = "/"

	server := &Server{
		config: cfg,
		router: router,
		prefs:  prefs,
	}

	RegisterRoutes(router, server)

	logger.Info("server configured",
		"api_base_url", cfg.APIBaseURL,
		"sealed_cookies", cfg.SealCredentialCookies,
	)

	return server, nil
}

// apiClient builds a request-scoped dispatcher whose credentials live in
// the caller's cookies. With sealed cookies on, credential values are
// encrypted at rest in the browser.
func (s *Server) apiClient(c *gin.Context) *serika.Client {
	cookieStore := credentials.NewCookieStore(c, s.config.AuthCookieName, s.config.Environment == "production")

	var store credentials.Store = cookieStore
	if s.config.SealCredentialCookies {
		store = credentials.NewSealedCookieStore(cookieStore,
			deriveKey(s.config.SessionSecret, "cred-hash"),
			deriveKey(s.config.SessionSecret, "cred-block"),
		)
	}

	return serika.NewClient(s.config.APIBaseURL, store)
}

// deriveKey stretches the session secret into independent 32-byte keys,
// one per purpose, so rotating the secret rotates everything at once.
func deriveKey(secret, purpose string) []byte {
	sum := sha256.Sum256([]byte(secret + ":" + purpose))
	return sum[:]
}
