package main

import (
	"log"

	"github.com/pitchside/scorebox/config"
	_ "github.com/pitchside/scorebox/docs"
	"github.com/pitchside/scorebox/internal/match"
	"github.com/pitchside/scorebox/internal/player"
	"github.com/pitchside/scorebox/internal/team"
	"github.com/pitchside/scorebox/routes"
)

// @title ScoreBox API
// @version 1.0
// @description Ball-by-ball cricket scoring service: players, teams, and two-innings match scoring with live scoreboard reads.

// @contact.name ScoreBox
// @contact.url https://github.com/pitchside/scorebox

// @license.name MIT

// @host localhost:8088
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	appConfig := config.GetConfig()
	db := config.DB

	if err := db.AutoMigrate(
		&player.Player{},
		&team.Team{},
		&match.Match{},
	); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Println("Database migrations completed.")

	router := routes.SetupRouter(db, appConfig)

	log.Printf("Starting ScoreBox server on port %s (env: %s)", appConfig.App.Port, appConfig.App.Env)
	if err := router.Run(":" + appConfig.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
