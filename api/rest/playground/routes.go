package playground

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the playground. Generation routes authenticate
// with the API key cookie rather than the session, matching how keys
// are used outside the portal, so none of these are session-gated.
func RegisterRoutes(rg *gin.RouterGroup, factory ClientFactory) {
	group := rg.Group("/playground")

	group.GET("/models", ModelsHandler(factory))
	group.GET("/characters", CharactersHandler(factory))
	group.POST("/chat", ChatHandler(factory))
	group.POST("/images", ImagesHandler(factory))
	group.PUT("/api-key", SetAPIKeyHandler(factory))
	group.DELETE("/api-key", ClearAPIKeyHandler(factory))
}
