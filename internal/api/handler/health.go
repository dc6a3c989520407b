package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness together with the catalog and
// cache configuration the instance is serving with, so a deploy check
// can spot an empty catalog or a misconfigured cache backend at a
// glance.
type HealthHandler struct {
	catalogSize  int
	cacheBackend string
}

// NewHealthHandler creates a health handler for an instance serving
// catalogSize movies with the given cache backend.
func NewHealthHandler(catalogSize int, cacheBackend string) *HealthHandler {
	return &HealthHandler{
		catalogSize:  catalogSize,
		cacheBackend: cacheBackend,
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"catalog_size":  h.catalogSize,
		"cache_backend": h.cacheBackend,
	})
}
