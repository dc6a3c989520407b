package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lennart/cinemood/internal/domain"
	"github.com/lennart/cinemood/internal/service"
)

// RecommendHandler handles recommendation endpoints.
type RecommendHandler struct {
	engine *service.Engine
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(engine *service.Engine) *RecommendHandler {
	return &RecommendHandler{engine: engine}
}

// Recommend handles POST /api/v1/recommendations.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var prefs domain.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	movies, err := h.engine.GetMovies(c.Request.Context(), prefs)
	if err != nil {
		status, message := mapRecommendError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

// mapRecommendError translates the engine error taxonomy into HTTP
// responses.
func mapRecommendError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEra):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNoCandidates), errors.Is(err, domain.ErrEmptyCorpus):
		return http.StatusNotFound, "No movies match the given criteria; try relaxing your preferences"
	case domain.IsExternalModelError(err):
		return http.StatusBadGateway, "Upstream model unavailable: " + err.Error()
	default:
		return http.StatusInternalServerError, "Recommendation failed: " + err.Error()
	}
}
