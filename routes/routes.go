package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tutorly/handlers"
	"tutorly/middleware"
	"tutorly/utils"
)

// RegisterSessionRoutes registers the session access endpoints.
func RegisterSessionRoutes(r *gin.Engine, sh *handlers.SessionHandler) {
	api := r.Group("/api/sessions")
	{
		// All session endpoints require a resolved identity.
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/dashboard", sh.DashboardHandler)
		api.POST("/:id/join", sh.JoinSessionHandler)
		api.GET("/reminders", sh.ListRemindersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Tutorly",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, sh *handlers.SessionHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, sh)
}
