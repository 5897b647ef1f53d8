// Package scoreview shapes scoring aggregates into the JSON the scoreboard
// clients render: player names resolved, overs formatted, rates and target
// computed. It is a read-side projection; nothing in here mutates state.
package scoreview

import (
	"fmt"

	"github.com/pitchside/scorebox/internal/scoring"
)

// PlayerRef is a resolved player reference: ID plus display name.
type PlayerRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name,omitempty"`
}

// TeamView names one side of the match.
type TeamView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// BattingEntryView is one batter's line on the scorecard.
type BattingEntryView struct {
	Player     PlayerRef  `json:"player"`
	Runs       int        `json:"runs"`
	Balls      int        `json:"balls"`
	Fours      int        `json:"fours"`
	Sixes      int        `json:"sixes"`
	StrikeRate float64    `json:"strike_rate"`
	IsOut      bool       `json:"is_out"`
	Dismissal  string     `json:"dismissal,omitempty"`
	Bowler     *PlayerRef `json:"bowler,omitempty"`
	Fielder    *PlayerRef `json:"fielder,omitempty"`
}

// BowlingEntryView is one bowler's line on the scorecard.
type BowlingEntryView struct {
	Player  PlayerRef `json:"player"`
	Overs   string    `json:"overs"`
	Maidens int       `json:"maidens"`
	Runs    int       `json:"runs"`
	Wickets int       `json:"wickets"`
	Economy float64   `json:"economy"`
	NoBalls int       `json:"no_balls"`
	Wides   int       `json:"wides"`
}

// InningsView is the full projection of one innings.
type InningsView struct {
	BattingTeam TeamView           `json:"batting_team"`
	TotalRuns   int                `json:"total_runs"`
	Wickets     int                `json:"wickets"`
	Overs       string             `json:"overs"`
	OversLimit  int                `json:"overs_limit"`
	RunRate     float64            `json:"run_rate"`
	Extras      int                `json:"extras"`
	Striker     *PlayerRef         `json:"striker,omitempty"`
	NonStriker  *PlayerRef         `json:"non_striker,omitempty"`
	Bowler      *PlayerRef         `json:"current_bowler,omitempty"`
	BattingCard []BattingEntryView `json:"batting_card"`
	BowlingCard []BowlingEntryView `json:"bowling_card"`
	Completed   bool               `json:"completed"`
	Deliveries  []scoring.Delivery `json:"deliveries"`
}

// MatchView is the top-level scoreboard document.
type MatchView struct {
	ID              uint         `json:"id"`
	TeamA           TeamView     `json:"team_a"`
	TeamB           TeamView     `json:"team_b"`
	TotalOvers      int          `json:"total_overs"`
	BattingFirst    string       `json:"batting_first"`
	Status          string       `json:"status"`
	Result          string       `json:"result,omitempty"`
	CurrentInnings  int          `json:"current_innings"`
	Target          *int         `json:"target,omitempty"`
	RequiredRunRate *float64     `json:"required_run_rate,omitempty"`
	First           *InningsView `json:"first_innings,omitempty"`
	Second          *InningsView `json:"second_innings,omitempty"`
}

// NameResolver maps player IDs to display names. Unknown IDs resolve to an
// empty name rather than an error; the scoreboard degrades, it never breaks.
type NameResolver map[uint]string

func (r NameResolver) ref(id scoring.PlayerID) PlayerRef {
	return PlayerRef{ID: uint(id), Name: r[uint(id)]}
}

func (r NameResolver) refPtr(id scoring.PlayerID) *PlayerRef {
	if id == 0 {
		return nil
	}
	ref := r.ref(id)
	return &ref
}

// FormatOvers renders a ball count as the conventional "O.B" notation.
func FormatOvers(legalBalls int) string {
	return fmt.Sprintf("%d.%d", legalBalls/6, legalBalls%6)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// BuildInnings projects one innings with names resolved.
func BuildInnings(inn *scoring.Innings, battingTeam TeamView, names NameResolver) *InningsView {
	if inn == nil {
		return nil
	}
	view := &InningsView{
		BattingTeam: battingTeam,
		TotalRuns:   inn.TotalRuns,
		Wickets:     inn.Wickets,
		Overs:       FormatOvers(inn.LegalBalls),
		OversLimit:  inn.OversLimit,
		RunRate:     round2(inn.RunRate()),
		Extras:      inn.Extras,
		Completed:   inn.Completed,
		Deliveries:  inn.Deliveries,
		BattingCard: make([]BattingEntryView, 0, len(inn.BattingCard)),
		BowlingCard: make([]BowlingEntryView, 0, len(inn.BowlingCard)),
	}
	if !inn.Completed {
		view.Striker = names.refPtr(inn.StrikerID)
		view.NonStriker = names.refPtr(inn.NonStrikerID)
		view.Bowler = names.refPtr(inn.CurrentBowlerID)
	}

	for _, entry := range inn.BattingCard {
		line := BattingEntryView{
			Player:    names.ref(entry.PlayerID),
			Runs:      entry.Runs,
			Balls:     entry.Balls,
			Fours:     entry.Fours,
			Sixes:     entry.Sixes,
			IsOut:     entry.IsOut,
			Dismissal: string(entry.Dismissal),
		}
		if entry.Balls > 0 {
			line.StrikeRate = round2(float64(entry.Runs) / float64(entry.Balls) * 100)
		}
		if entry.IsOut {
			line.Bowler = names.refPtr(entry.BowlerID)
			line.Fielder = names.refPtr(entry.FielderID)
		}
		view.BattingCard = append(view.BattingCard, line)
	}

	for _, entry := range inn.BowlingCard {
		balls := entry.BallsBowled()
		// Only bowlers who have sent something down make the card.
		if balls == 0 && entry.Wides == 0 && entry.NoBalls == 0 {
			continue
		}
		line := BowlingEntryView{
			Player:  names.ref(entry.PlayerID),
			Overs:   FormatOvers(balls),
			Maidens: entry.Maidens,
			Runs:    entry.Runs,
			Wickets: entry.Wickets,
			NoBalls: entry.NoBalls,
			Wides:   entry.Wides,
		}
		if balls > 0 {
			line.Economy = round2(float64(entry.Runs) / float64(balls) * 6)
		}
		view.BowlingCard = append(view.BowlingCard, line)
	}
	return view
}

// BuildMatch projects the whole match into the scoreboard document.
func BuildMatch(id uint, m *scoring.Match, teamA, teamB TeamView, names NameResolver) *MatchView {
	view := &MatchView{
		ID:             id,
		TeamA:          teamA,
		TeamB:          teamB,
		TotalOvers:     m.TotalOvers,
		BattingFirst:   string(m.BattingFirst),
		Status:         string(m.Status),
		Result:         string(m.Result),
		CurrentInnings: m.Current,
	}

	firstBats, secondBats := teamA, teamB
	if m.BattingFirst == scoring.BatTeamB {
		firstBats, secondBats = teamB, teamA
	}
	view.First = BuildInnings(m.First, firstBats, names)
	view.Second = BuildInnings(m.Second, secondBats, names)

	if target, ok := m.Target(); ok {
		view.Target = &target
	}
	if rrr, ok := m.RequiredRunRate(); ok {
		rounded := round2(rrr)
		view.RequiredRunRate = &rounded
	}
	return view
}
