package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lennart/cinemood/internal/domain"
	"github.com/lennart/cinemood/internal/service"
)

// CatalogHandler exposes catalog metadata for building preference
// queries.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Languages handles GET /api/v1/languages.
func (h *CatalogHandler) Languages(c *gin.Context) {
	languages, err := h.catalogService.Languages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load languages: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"languages": languages,
		"total":     len(languages),
	})
}

// Genres handles GET /api/v1/genres.
func (h *CatalogHandler) Genres(c *gin.Context) {
	genres, err := h.catalogService.Genres(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load genres: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"genres": genres,
		"total":  len(genres),
	})
}

// Eras handles GET /api/v1/eras.
func (h *CatalogHandler) Eras(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"eras": domain.Eras(),
	})
}
