package router

import (
	"github.com/gin-gonic/gin"

	"vocalis/internal/handler"
	"vocalis/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	extractionH *handler.ExtractionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	extractions := v1.Group("/extractions")
	extractions.POST("", extractionH.Extract)
	extractions.POST("/normalize", extractionH.Normalize)
	extractions.GET("/sections", extractionH.Sections)

	return r
}
