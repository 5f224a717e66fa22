package docs

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the documentation endpoints. Docs are public.
func RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/docs", ListHandler)
	rg.GET("/docs/:slug", SectionHandler)
	rg.GET("/examples", ExamplesHandler)
}
