package auth

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/scorebox/config"
)

// RegisterAuthRoutes sets up the login endpoint.
func RegisterAuthRoutes(router *gin.RouterGroup, appConfig *config.Config) {
	authController, err := NewAuthController(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize auth controller: %v", err)
	}

	router.POST("/login", authController.Login)
}
