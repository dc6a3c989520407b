package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lennart/cinemood/internal/api/handler"
	"github.com/lennart/cinemood/internal/api/middleware"
	"github.com/lennart/cinemood/internal/config"
	"github.com/lennart/cinemood/internal/logger"
	"github.com/lennart/cinemood/internal/service"
)

// SetupRouter configures the Gin router with all routes.
func SetupRouter(
	engine *service.Engine,
	catalogService *service.CatalogService,
	cfg *config.Config,
	log *logger.Logger,
) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler(engine.CatalogSize(), cfg.Cache.Backend)
	recommendHandler := handler.NewRecommendHandler(engine)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/recommendations", recommendHandler.Recommend)

		v1.GET("/languages", catalogHandler.Languages)
		v1.GET("/genres", catalogHandler.Genres)
		v1.GET("/eras", catalogHandler.Eras)
	}

	return r
}
