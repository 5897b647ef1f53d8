// match/routes.go
package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mw "github.com/pitchside/scorebox/internal/middleware"
	"github.com/pitchside/scorebox/internal/player"
	"github.com/pitchside/scorebox/internal/team"
)

// MatchRoutes registers the match endpoints. Scoreboard reads are public;
// everything that mutates match state requires the scorer token.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	matchRepo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo, playerRepo)

	matches := router.Group("/matches")
	{
		// Public scoreboard reads
		matches.GET("/active", matchController.GetActiveMatch)
		matches.GET("/:id", matchController.GetMatchByID)

		// Scoring operations
		protected := matches.Group("")
		protected.Use(mw.AuthMiddleware(jwtSecret))
		{
			protected.POST("", matchController.CreateMatch)
			protected.POST("/:id/start", matchController.StartMatch)
			protected.POST("/:id/ball", matchController.RecordBall)
			protected.POST("/:id/end-innings", matchController.EndInnings)
			protected.POST("/:id/end-match", matchController.EndMatch)
		}
	}
}
