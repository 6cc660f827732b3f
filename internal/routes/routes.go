package routes

import (
	"net/http"

	"skinfeed_backend/internal/handlers"
	"skinfeed_backend/internal/logger"
	"skinfeed_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route of the application.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	// Liveness probe used by the mobile client on startup.
	ginRouter.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.PostHandler.RegisterRoutes(api)
		appHandlers.MediaHandler.RegisterRoutes(api)
		appHandlers.ProductHandler.RegisterRoutes(api)
		appHandlers.AnalysisHandler.RegisterRoutes(api)
	}

	authAPI := ginRouter.Group("/api")
	authAPI.Use(middleware.AuthMiddleware())
	{
		appHandlers.MediaHandler.RegisterAuthRoutes(authAPI)
	}

	logger.Info("HTTP routes registered under /api")
}
