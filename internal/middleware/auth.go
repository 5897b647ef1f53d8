package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/scorebox/pkg/token"
)

const (
	AuthUsernameKey = "auth_username"
	AuthRoleKey     = "auth_role"
)

// AuthMiddleware validates the bearer token and requires the scorer role.
// There is no user table behind this gate: identity is the configured
// scorer credential baked into the token at login.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set(AuthUsernameKey, claims.Username)
		c.Set(AuthRoleKey, claims.Role)
		c.Next()
	}
}

// GetUsernameFromContext extracts the authenticated username from the context.
func GetUsernameFromContext(c *gin.Context) (string, error) {
	username, exists := c.Get(AuthUsernameKey)
	if !exists {
		return "", errors.New("username not found in context")
	}

	name, ok := username.(string)
	if !ok {
		return "", fmt.Errorf("username has unexpected type: %T", username)
	}

	return name, nil
}
