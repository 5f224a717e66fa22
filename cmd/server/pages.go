package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/guard"
)

const prefsSessionName = "serika_portal_prefs"

var validThemes = map[string]bool{"light": true, "dark": true}

// RegisterPages mounts the server-rendered pages behind the route guard.
// The guard only checks cookie presence. Token validity is settled by the
// first API call each page makes.
func RegisterPages(router *gin.Engine, server *Server) {
	pages := router.Group("", guard.Middleware(server.config.AuthCookieName))

	pages.GET("/", func(c *gin.Context) {
		// the guard redirects before we get here, this covers the
		// allow case only
		c.Redirect(http.StatusFound, "/dashboard")
	})

	pages.GET("/login", server.renderPage("login.html", "Sign in"))

	pages.GET("/dashboard", server.renderPage("dashboard.html", "Dashboard"))
	pages.GET("/dashboard/api-keys", server.renderPage("keys.html", "API Keys"))
	pages.GET("/dashboard/usage", server.renderPage("usage.html", "Usage"))
	pages.GET("/dashboard/billing", server.renderPage("billing.html", "Billing"))
	pages.GET("/dashboard/playground", server.renderPage("playground.html", "Playground"))
	pages.GET("/dashboard/docs", server.renderPage("docs.html", "Documentation"))
	pages.GET("/dashboard/examples", server.renderPage("examples.html", "Examples"))
	pages.GET("/dashboard/profile", server.renderPage("profile.html", "Profile"))

	router.POST("/prefs/theme", server.setThemeHandler)
	router.Static("/static", "web/static")
}

// renderPage serves a template with the user's saved theme and any
// pending flash message.
func (s *Server) renderPage(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := s.prefs.Get(c.Request, prefsSessionName)

		theme := "dark"
		if saved, ok := session.Values["theme"].(string); ok && validThemes[saved] {
			theme = saved
		}

		var flash string
		if flashes := session.Flashes(); len(flashes) > 0 {
			if msg, ok := flashes[0].(string); ok {
				flash = msg
			}
			// flashes are consumed on read, persist the removal
			_ = session.Save(c.Request, c.Writer)
		}

		c.HTML(http.StatusOK, template, gin.H{
			"Title": title,
			"Theme": theme,
			"Flash": flash,
			"Path":  c.Request.URL.Path,
			"Error": c.Query("error"),
		})
	}
}

// setThemeHandler persists the theme toggle.
func (s *Server) setThemeHandler(c *gin.Context) {
	theme := c.PostForm("theme")
	if !validThemes[theme] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}

	session, _ := s.prefs.Get(c.Request, prefsSessionName)
	session.Values["theme"] = theme
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save preference"})
		return
	}

	// plain form posts go back to the page they came from
	if referer := c.GetHeader("Referer"); referer != "" {
		c.Redirect(http.StatusSeeOther, referer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
