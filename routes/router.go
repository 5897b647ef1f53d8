package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/pitchside/scorebox/config"
	"github.com/pitchside/scorebox/internal/auth"
	"github.com/pitchside/scorebox/internal/match"
	"github.com/pitchside/scorebox/internal/player"
)

// SetupRouter configures the gin engine: middleware, swagger, and every API
// route group.
func SetupRouter(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	if appConfig.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Scoreboard clients are browsers on other origins.
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		auth.RegisterAuthRoutes(authGroup, appConfig)

		player.PlayerRoutes(api, db, appConfig, appConfig.JWT.Secret)
		match.MatchRoutes(api, db, appConfig.JWT.Secret)
	}

	return router
}
