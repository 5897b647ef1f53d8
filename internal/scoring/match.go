package scoring

// Status is the match lifecycle: pending until started, live while deliveries
// are accepted, completed when the second innings ends or a result is forced.
type Status string

const (
	StatusPending   Status = "pending"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
)

// BatSide says which of the two teams bats first.
type BatSide string

const (
	BatTeamA BatSide = "teamA"
	BatTeamB BatSide = "teamB"
)

// Result is the final outcome code attached when a match completes.
type Result string

const (
	ResultTeamAWins Result = "teamA-wins"
	ResultTeamBWins Result = "teamB-wins"
	ResultTied      Result = "tied"
	ResultDraw      Result = "draw"
	ResultNoResult  Result = "no-result"
)

func (r Result) Valid() bool {
	switch r {
	case ResultTeamAWins, ResultTeamBWins, ResultTied, ResultDraw, ResultNoResult:
		return true
	}
	return false
}

// Match is the aggregate root of a two-innings game. The second innings does
// not exist until the first completes. Rosters are supplied by the caller
// (they live on the team records) and are needed to seed each innings.
type Match struct {
	TeamAID      uint       `json:"team_a_id"`
	TeamBID      uint       `json:"team_b_id"`
	RosterA      []PlayerID `json:"-"`
	RosterB      []PlayerID `json:"-"`
	TotalOvers   int        `json:"total_overs"`
	BattingFirst BatSide    `json:"batting_first"`
	First        *Innings   `json:"first_innings"`
	Second       *Innings   `json:"second_innings,omitempty"`
	Current      int        `json:"current_innings"` // 1 or 2
	Status       Status     `json:"status"`
	Result       Result     `json:"result,omitempty"`
}

// NewMatch seeds the first innings from the batting-first team's roster and
// leaves the match pending.
func NewMatch(teamAID, teamBID uint, rosterA, rosterB []PlayerID, totalOvers int, battingFirst BatSide) (*Match, error) {
	if battingFirst != BatTeamA && battingFirst != BatTeamB {
		return nil, &ValidationError{Field: "batting_first", Reason: "must be teamA or teamB"}
	}
	// Both rosters are checked up front; a duplicate in the side batting
	// second would otherwise only surface at the innings changeover.
	if hasDuplicate(rosterA) {
		return nil, &ValidationError{Field: "roster_a", Reason: "duplicate player in roster"}
	}
	if hasDuplicate(rosterB) {
		return nil, &ValidationError{Field: "roster_b", Reason: "duplicate player in roster"}
	}
	m := &Match{
		TeamAID:      teamAID,
		TeamBID:      teamBID,
		RosterA:      rosterA,
		RosterB:      rosterB,
		TotalOvers:   totalOvers,
		BattingFirst: battingFirst,
		Current:      1,
		Status:       StatusPending,
	}
	battingTeam, batters, bowlers := m.sideFor(1)
	first, err := NewInnings(battingTeam, batters, bowlers, totalOvers)
	if err != nil {
		return nil, err
	}
	m.First = first
	return m, nil
}

// sideFor resolves batting team ID and both rosters for an innings number.
func (m *Match) sideFor(innings int) (battingTeamID uint, batters, bowlers []PlayerID) {
	aBats := m.BattingFirst == BatTeamA
	if innings == 2 {
		aBats = !aBats
	}
	if aBats {
		return m.TeamAID, m.RosterA, m.RosterB
	}
	return m.TeamBID, m.RosterB, m.RosterA
}

// ActiveInnings is the innings currently accepting deliveries.
func (m *Match) ActiveInnings() *Innings {
	if m.Current == 2 {
		return m.Second
	}
	return m.First
}

// Start transitions pending to live. It has no other side effects.
func (m *Match) Start() error {
	if m.Status != StatusPending {
		return ErrMatchAlreadyStarted
	}
	m.Status = StatusLive
	return nil
}

// ApplyDelivery routes one event to the active innings. Deliveries are only
// accepted while the match is live. When the innings completes during the
// call the match advances: innings 2 is synthesized after innings 1, and the
// match completes after innings 2.
func (m *Match) ApplyDelivery(ev BallEvent) (EndReason, error) {
	if m.Status != StatusLive {
		return EndReasonNone, ErrMatchNotLive
	}
	inn := m.ActiveInnings()
	next, reason, err := inn.Apply(ev)
	if err != nil {
		// An invariant violation taints the innings so later calls are
		// refused; every other rejection leaves no trace.
		if next != nil {
			m.setActiveInnings(next)
		}
		return EndReasonNone, err
	}
	m.setActiveInnings(next)
	if next.Completed {
		if err := m.advance(); err != nil {
			return reason, err
		}
	}
	return reason, nil
}

// EndInnings forces the active innings to completion and advances the match.
func (m *Match) EndInnings() error {
	if m.Status != StatusLive {
		return ErrMatchNotLive
	}
	m.ActiveInnings().Completed = true
	return m.advance()
}

// EndMatch is the manual terminal override: it completes the match with the
// given result code at any time, independent of innings consistency.
func (m *Match) EndMatch(result Result) error {
	if !result.Valid() {
		return &ValidationError{Field: "result", Reason: "unknown result code"}
	}
	m.Status = StatusCompleted
	m.Result = result
	return nil
}

// advance performs the innings transition: after innings 1 the other team
// bats with freshly seeded ledgers; after innings 2 the match is complete.
func (m *Match) advance() error {
	if m.Current == 1 {
		battingTeam, batters, bowlers := m.sideFor(2)
		second, err := NewInnings(battingTeam, batters, bowlers, m.TotalOvers)
		if err != nil {
			return err
		}
		m.Second = second
		m.Current = 2
		return nil
	}
	m.Status = StatusCompleted
	return nil
}

func (m *Match) setActiveInnings(inn *Innings) {
	if m.Current == 2 {
		m.Second = inn
	} else {
		m.First = inn
	}
}

// Target is the score the chasing side needs; it exists only once the
// second innings does.
func (m *Match) Target() (int, bool) {
	if m.Second == nil || m.First == nil {
		return 0, false
	}
	return m.First.TotalRuns + 1, true
}

// RequiredRunRate is the chasing side's needed runs per over across the
// deliveries remaining in the second innings.
func (m *Match) RequiredRunRate() (float64, bool) {
	target, ok := m.Target()
	if !ok {
		return 0, false
	}
	remaining := m.Second.OversLimit*6 - m.Second.LegalBalls
	if remaining <= 0 {
		return 0, false
	}
	need := target - m.Second.TotalRuns
	if need <= 0 {
		return 0, true
	}
	return float64(need) / float64(remaining) * 6, true
}
