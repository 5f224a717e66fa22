package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/serika/portal/internal/docs"
	"codeberg.org/serika/portal/internal/errors"
)

// ListHandler returns every documentation section. Docs are compiled in,
// so this never fails.
//
//	@Summary	List documentation sections
//	@Tags		docs
//	@Produce	json
//	@Success	200	{object}	map[string][]docs.Section
//	@Router		/docs [get]
func ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": docs.Sections()})
}

// SectionHandler returns one section by slug.
func SectionHandler(c *gin.Context) {
	section, ok := docs.BySlug(c.Param("slug"))
	if !ok {
		errors.NotFound(c, "documentation section")
		return
	}
	c.JSON(http.StatusOK, section)
}

// ExamplesHandler returns ready-to-paste client snippets.
func ExamplesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": docs.Examples()})
}
