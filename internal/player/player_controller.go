package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/scorebox/config"
	"github.com/pitchside/scorebox/pkg/responses"
	"github.com/pitchside/scorebox/pkg/validator"
)

// PlayerController handles API requests related to players.
type PlayerController struct {
	repo   PlayerRepository
	config *config.Config
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(repo PlayerRepository, cfg *config.Config) *PlayerController {
	return &PlayerController{
		repo:   repo,
		config: cfg,
	}
}

// CreatePlayerRequest defines the request payload for creating a player.
type CreatePlayerRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	BattingPosition string `json:"batting_position" binding:"required,oneof=opening middle-order lower-order"`
	BattingType     string `json:"batting_type" binding:"required,oneof=left-hand right-hand"`
	BowlingType     string `json:"bowling_type" binding:"omitempty,oneof=fast medium leg-spin off-spin none"`
}

// CreatePlayer godoc
// @Summary Create a new player
// @Description Registers a player with batting position, batting hand and bowling style
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player creation request"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [post]
// @Security BearerAuth
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	bowling := BowlingType(req.BowlingType)
	if bowling == "" {
		bowling = BowlingNone
	}

	player := Player{
		Name:            req.Name,
		BattingPosition: BattingPosition(req.BattingPosition),
		BattingType:     BattingType(req.BattingType),
		BowlingType:     bowling,
	}

	if err := pc.repo.CreatePlayer(&player); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", player)
}

// GetAllPlayers godoc
// @Summary List players
// @Description Returns all registered players, paginated
// @Tags Players
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} responses.PaginatedResponse{data=[]Player}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /players [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	players, total, err := pc.repo.GetAllPlayers(page, pageSize)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch players")
		return
	}

	responses.SendPaginated(c, http.StatusOK, "", players, total, page, pageSize)
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse "Player not found"
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	player, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if player == nil {
		responses.NotFound(c, "Player")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", player)
}
