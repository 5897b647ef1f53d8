package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pitchside/scorebox/config"
	mw "github.com/pitchside/scorebox/internal/middleware"
)

// PlayerRoutes sets up all player-related routes.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	publicPlayers := router.Group("/players")
	{
		publicPlayers.GET("", playerController.GetAllPlayers)
		publicPlayers.GET("/:id", playerController.GetPlayerByID)
	}

	authPlayers := router.Group("/players")
	authPlayers.Use(mw.AuthMiddleware(jwtSecret))
	{
		authPlayers.POST("", playerController.CreatePlayer)
	}
}
