// match/controller.go
package match

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pitchside/scorebox/internal/player"
	"github.com/pitchside/scorebox/internal/scoring"
	"github.com/pitchside/scorebox/internal/team"
	"github.com/pitchside/scorebox/pkg/responses"
	"github.com/pitchside/scorebox/pkg/scoreview"
	"github.com/pitchside/scorebox/pkg/validator"
)

// MatchController wires HTTP onto the scoring engine. Every mutating handler
// follows the same shape: lock the match, load the row, rebuild the
// aggregate, apply the operation, save inside a transaction.
type MatchController struct {
	matchRepo  MatchRepository
	teamRepo   team.TeamRepository
	playerRepo player.PlayerRepository
	locker     *MatchLocker
}

// NewMatchController creates a new MatchController.
func NewMatchController(matchRepo MatchRepository, teamRepo team.TeamRepository, playerRepo player.PlayerRepository) *MatchController {
	return &MatchController{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		locker:     NewMatchLocker(),
	}
}

// TeamInput names one side and its roster for match creation. Roster order
// is batting order.
type TeamInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Players []uint `json:"players" binding:"required,min=2,unique,dive,gt=0"`
}

// CreateMatchRequest defines the payload for creating a match.
type CreateMatchRequest struct {
	TeamA        TeamInput `json:"team_a" binding:"required"`
	TeamB        TeamInput `json:"team_b" binding:"required"`
	TotalOvers   int       `json:"total_overs" binding:"required,gt=0,lte=50"`
	BattingFirst string    `json:"batting_first" binding:"required,oneof=teamA teamB"`
}

// BallRequest is one delivery as reported by the scorer.
type BallRequest struct {
	Runs      int    `json:"runs"`
	Category  string `json:"category" binding:"required"`
	IsFreeHit bool   `json:"is_free_hit"`
	IsWicket  bool   `json:"is_wicket"`
	Dismissal string `json:"dismissal"`
	BowlerID  uint   `json:"bowler_id" binding:"required,gt=0"`
	FielderID uint   `json:"fielder_id"`
}

// EndMatchRequest carries the manually declared result.
type EndMatchRequest struct {
	Result string `json:"result" binding:"required"`
}

// CreateMatch godoc
// @Summary Create a match
// @Description Creates both teams and a pending match with the first innings seeded
// @Tags Matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param match body CreateMatchRequest true "Match setup"
// @Success 201 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 400 {object} responses.ErrorResponse "Validation error or unknown player"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	// Every referenced player must exist before anything is written.
	for _, side := range []TeamInput{req.TeamA, req.TeamB} {
		found, err := mc.playerRepo.GetPlayersByIDs(side.Players)
		if err != nil {
			log.Printf("Error looking up players for team %s: %v", side.Name, err)
			responses.InternalServerError(c, "Failed to verify players")
			return
		}
		if len(found) != len(side.Players) {
			responses.BadRequest(c, "Team "+side.Name+" references unknown players")
			return
		}
	}

	teamA := &team.Team{Name: req.TeamA.Name, Roster: req.TeamA.Players}
	teamB := &team.Team{Name: req.TeamB.Name, Roster: req.TeamB.Players}
	if err := mc.teamRepo.CreateTeam(teamA); err != nil {
		log.Printf("Error creating team %s: %v", teamA.Name, err)
		responses.InternalServerError(c, "Failed to create team")
		return
	}
	if err := mc.teamRepo.CreateTeam(teamB); err != nil {
		log.Printf("Error creating team %s: %v", teamB.Name, err)
		responses.InternalServerError(c, "Failed to create team")
		return
	}

	sm, err := scoring.NewMatch(
		teamA.ID, teamB.ID,
		toPlayerIDs(req.TeamA.Players), toPlayerIDs(req.TeamB.Players),
		req.TotalOvers, scoring.BatSide(req.BattingFirst),
	)
	if err != nil {
		mc.respondScoringError(c, err)
		return
	}

	row := &Match{}
	row.ApplyScoring(sm)
	if err := mc.matchRepo.CreateMatch(row); err != nil {
		log.Printf("Error creating match: %v", err)
		responses.InternalServerError(c, "Failed to create match")
		return
	}

	view, err := mc.buildView(row)
	if err != nil {
		log.Printf("Error building match view: %v", err)
		responses.InternalServerError(c, "Failed to load match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", view)
}

// StartMatch godoc
// @Summary Start a match
// @Description Transitions a pending match to live so deliveries are accepted
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match already started"
// @Router /matches/{id}/start [post]
func (mc *MatchController) StartMatch(c *gin.Context) {
	mc.mutateMatch(c, "Match started", func(sm *scoring.Match) error {
		return sm.Start()
	})
}

// RecordBall godoc
// @Summary Record a delivery
// @Description Applies one ball event to the active innings of a live match
// @Tags Matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param ball body BallRequest true "Delivery event"
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 400 {object} responses.ErrorResponse "Invalid delivery"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match or innings not accepting deliveries"
// @Failure 500 {object} responses.ErrorResponse "Scoring invariant violated"
// @Router /matches/{id}/ball [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	var req BallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ev := scoring.BallEvent{
		Runs:      req.Runs,
		Category:  scoring.Category(req.Category),
		IsFreeHit: req.IsFreeHit,
		IsWicket:  req.IsWicket,
		Dismissal: scoring.Dismissal(req.Dismissal),
		BowlerID:  scoring.PlayerID(req.BowlerID),
		FielderID: scoring.PlayerID(req.FielderID),
	}

	mc.mutateMatch(c, "Delivery recorded", func(sm *scoring.Match) error {
		_, err := sm.ApplyDelivery(ev)
		return err
	})
}

// EndInnings godoc
// @Summary End the current innings
// @Description Forces the active innings to completion and advances the match
// @Tags Matches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Failure 409 {object} responses.ErrorResponse "Match is not live"
// @Router /matches/{id}/end-innings [post]
func (mc *MatchController) EndInnings(c *gin.Context) {
	mc.mutateMatch(c, "Innings ended", func(sm *scoring.Match) error {
		return sm.EndInnings()
	})
}

// EndMatch godoc
// @Summary End the match
// @Description Completes the match with the declared result, regardless of state
// @Tags Matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Param result body EndMatchRequest true "Declared result"
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 400 {object} responses.ErrorResponse "Unknown result code"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id}/end-match [post]
func (mc *MatchController) EndMatch(c *gin.Context) {
	var req EndMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendErrorDetails(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	mc.mutateMatch(c, "Match ended", func(sm *scoring.Match) error {
		return sm.EndMatch(scoring.Result(req.Result))
	})
}

// GetActiveMatch godoc
// @Summary Get the live match
// @Description Returns the scoreboard of the match currently in progress
// @Tags Matches
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 404 {object} responses.ErrorResponse "No live match"
// @Router /matches/active [get]
func (mc *MatchController) GetActiveMatch(c *gin.Context) {
	row, err := mc.matchRepo.GetActiveMatch()
	if err != nil {
		log.Printf("Error fetching active match: %v", err)
		responses.InternalServerError(c, "Failed to retrieve match")
		return
	}
	if row == nil {
		responses.NotFound(c, "Live match")
		return
	}

	view, err := mc.buildView(row)
	if err != nil {
		log.Printf("Error building match view for match %d: %v", row.ID, err)
		responses.InternalServerError(c, "Failed to load match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", view)
}

// GetMatchByID godoc
// @Summary Get a match by ID
// @Description Returns the full scoreboard of one match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=scoreview.MatchView}
// @Failure 400 {object} responses.ErrorResponse "Invalid match ID"
// @Failure 404 {object} responses.ErrorResponse "Match not found"
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := mc.matchIDParam(c)
	if !ok {
		return
	}

	row, err := mc.matchRepo.GetMatchByID(id)
	if err != nil {
		log.Printf("Error fetching match %d: %v", id, err)
		responses.InternalServerError(c, "Failed to retrieve match")
		return
	}
	if row == nil {
		responses.NotFound(c, "Match")
		return
	}

	view, err := mc.buildView(row)
	if err != nil {
		log.Printf("Error building match view for match %d: %v", id, err)
		responses.InternalServerError(c, "Failed to load match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", view)
}

// mutateMatch is the shared load-apply-save pipeline behind every scoring
// mutation. The per-match lock is held across the whole read-modify-write so
// concurrent deliveries for one match apply strictly one at a time.
func (mc *MatchController) mutateMatch(c *gin.Context, successMsg string, op func(sm *scoring.Match) error) {
	id, ok := mc.matchIDParam(c)
	if !ok {
		return
	}

	unlock := mc.locker.Lock(id)
	defer unlock()

	var row *Match
	var opErr error
	err := mc.matchRepo.WithTransaction(func(repo MatchRepository) error {
		var err error
		row, err = repo.GetMatchByID(id)
		if err != nil {
			return err
		}
		if row == nil {
			return nil
		}

		rosterA, rosterB, err := mc.loadRosters(row)
		if err != nil {
			return err
		}

		sm := row.ToScoring(rosterA, rosterB)
		if opErr = op(sm); opErr != nil {
			// A tainted innings must be persisted so the refusal survives a
			// restart, so the save commits despite the failed operation. For
			// every other rejection the row is left alone.
			var iv *scoring.InvariantViolation
			if errors.As(opErr, &iv) {
				row.ApplyScoring(sm)
				return repo.UpdateMatch(row)
			}
			return nil
		}

		row.ApplyScoring(sm)
		return repo.UpdateMatch(row)
	})
	if err != nil {
		log.Printf("Error applying operation to match %d: %v", id, err)
		responses.InternalServerError(c, "Failed to update match")
		return
	}
	if opErr != nil {
		mc.respondScoringError(c, opErr)
		return
	}
	if row == nil {
		responses.NotFound(c, "Match")
		return
	}

	view, err := mc.buildView(row)
	if err != nil {
		log.Printf("Error building match view for match %d: %v", id, err)
		responses.InternalServerError(c, "Failed to load match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, successMsg, view)
}

func (mc *MatchController) matchIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID format")
		return 0, false
	}
	return uint(id), true
}

// loadRosters fetches both team rows and hands back their batting orders.
func (mc *MatchController) loadRosters(row *Match) ([]scoring.PlayerID, []scoring.PlayerID, error) {
	teamA, err := mc.teamRepo.GetTeamByID(row.TeamAID)
	if err != nil {
		return nil, nil, err
	}
	teamB, err := mc.teamRepo.GetTeamByID(row.TeamBID)
	if err != nil {
		return nil, nil, err
	}
	if teamA == nil || teamB == nil {
		return nil, nil, errors.New("match references a missing team")
	}
	return toPlayerIDs(teamA.Roster), toPlayerIDs(teamB.Roster), nil
}

// buildView assembles the scoreboard projection: team names, player names,
// and the computed figures.
func (mc *MatchController) buildView(row *Match) (*scoreview.MatchView, error) {
	teamA, err := mc.teamRepo.GetTeamByID(row.TeamAID)
	if err != nil {
		return nil, err
	}
	teamB, err := mc.teamRepo.GetTeamByID(row.TeamBID)
	if err != nil {
		return nil, err
	}
	if teamA == nil || teamB == nil {
		return nil, errors.New("match references a missing team")
	}

	ids := append(append([]uint{}, teamA.Roster...), teamB.Roster...)
	players, err := mc.playerRepo.GetPlayersByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := scoreview.NameResolver{}
	for i := range players {
		names[players[i].ID] = players[i].Name
	}

	sm := row.ToScoring(toPlayerIDs(teamA.Roster), toPlayerIDs(teamB.Roster))
	return scoreview.BuildMatch(
		row.ID, sm,
		scoreview.TeamView{ID: teamA.ID, Name: teamA.Name},
		scoreview.TeamView{ID: teamB.ID, Name: teamB.Name},
		names,
	), nil
}

// respondScoringError maps engine errors onto HTTP: validation problems are
// the client's fault, state rejections are conflicts, invariant violations
// are ours.
func (mc *MatchController) respondScoringError(c *gin.Context, err error) {
	var ve *scoring.ValidationError
	if errors.As(err, &ve) {
		responses.BadRequest(c, ve.Error())
		return
	}
	var se *scoring.StateError
	if errors.As(err, &se) {
		if se == scoring.ErrInvalidDeliveryCategory {
			responses.BadRequest(c, se.Message)
			return
		}
		responses.Conflict(c, se.Message)
		return
	}
	var iv *scoring.InvariantViolation
	if errors.As(err, &iv) {
		log.Printf("Scoring invariant violated: %v", iv)
		responses.InternalServerError(c, iv.Error())
		return
	}
	log.Printf("Unexpected error during match operation: %v", err)
	responses.InternalServerError(c, "An unexpected error occurred")
}

func toPlayerIDs(ids []uint) []scoring.PlayerID {
	out := make([]scoring.PlayerID, 0, len(ids))
	for _, id := range ids {
		out = append(out, scoring.PlayerID(id))
	}
	return out
}

