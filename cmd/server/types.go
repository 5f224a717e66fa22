package main

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"codeberg.org/serika/portal/internal/config"
)

// holds all dependencies and state for the portal server
type Server struct {
	config *config.Config
	router *gin.Engine

	// prefs holds UI preferences (theme, flashes) signed with the
	// session secret. Credentials never go in here.
	prefs *sessions.CookieStore
}
