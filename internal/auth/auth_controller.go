package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/scorebox/config"
	"github.com/pitchside/scorebox/pkg/responses"
	"github.com/pitchside/scorebox/pkg/token"
	"github.com/pitchside/scorebox/pkg/validator"
	"github.com/pitchside/scorebox/utils"
)

// AuthController handles the fixed-credential login. The service has a
// single scorer identity configured through the environment; there is no
// user registration.
type AuthController struct {
	config       *config.Config
	passwordHash string
}

// NewAuthController hashes the configured scorer password once so that the
// plaintext never sticks around after startup.
func NewAuthController(cfg *config.Config) (*AuthController, error) {
	hash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		return nil, err
	}
	return &AuthController{config: cfg, passwordHash: hash}, nil
}

// LoginRequest defines the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login godoc
// @Summary Log in as the scorer
// @Description Checks the configured scorer credentials and issues a JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} responses.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 401 {object} responses.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Username != ac.config.Admin.Username || !utils.CheckPassword(ac.passwordHash, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	jwt, err := token.GenerateJWT(req.Username, "admin", ac.config.JWT.Secret, ac.config.JWT.ExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue token")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", LoginResponse{
		Token:    jwt,
		Username: req.Username,
		Role:     "admin",
	})
}
