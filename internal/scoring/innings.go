package scoring

// EndReason says why an innings (and possibly the match) ended during a
// delivery. Empty means the innings is still going.
type EndReason string

const (
	EndReasonNone   EndReason = ""
	EndReasonAllOut EndReason = "all_out"
)

// Innings is one team's batting effort. It is a self-contained document:
// ledgers and batter references are player IDs, never live objects.
type Innings struct {
	BattingTeamID   uint        `json:"batting_team_id"`
	TotalRuns       int         `json:"total_runs"`
	Wickets         int         `json:"wickets"`
	OversLimit      int         `json:"overs_limit"`
	LegalBalls      int         `json:"legal_balls"`
	Deliveries      []Delivery  `json:"deliveries"`
	BattingCard     BattingCard `json:"batting_card"`
	BowlingCard     BowlingCard `json:"bowling_card"`
	StrikerID       PlayerID    `json:"striker_id"`
	NonStrikerID    PlayerID    `json:"non_striker_id"`
	CurrentBowlerID PlayerID    `json:"current_bowler_id,omitempty"` // cleared between overs
	Extras          int         `json:"extras"`
	Completed       bool        `json:"completed"`
	// Tainted carries the reason of a detected invariant violation; a
	// tainted innings refuses every further delivery.
	Tainted string `json:"tainted,omitempty"`
}

// NewInnings pre-seeds both ledgers from the rosters and puts the first two
// batters of the batting roster at the crease. A duplicate batter is rejected
// here: seeding it would put the same player at both ends.
func NewInnings(battingTeamID uint, batters, bowlers []PlayerID, oversLimit int) (*Innings, error) {
	if len(batters) < 2 {
		return nil, &ValidationError{Field: "batters", Reason: "at least two batters are required"}
	}
	if hasDuplicate(batters) {
		return nil, &ValidationError{Field: "batters", Reason: "duplicate player in batting roster"}
	}
	if oversLimit <= 0 {
		return nil, &ValidationError{Field: "overs_limit", Reason: "must be positive"}
	}
	return &Innings{
		BattingTeamID: battingTeamID,
		OversLimit:    oversLimit,
		Deliveries:    []Delivery{},
		BattingCard:   NewBattingCard(batters),
		BowlingCard:   NewBowlingCard(bowlers),
		StrikerID:     batters[0],
		NonStrikerID:  batters[1],
	}, nil
}

// Apply processes one delivery event and returns the resulting innings.
// The receiver is never mutated: a rejected event leaves it untouched, and a
// successful one is observable only through the returned copy, so the whole
// pass is one logical transaction.
//
// The mutation order is fixed: classify, extras and bowling ledger, wicket
// resolution, batting credit, the immutable log append (with the striker as
// of event arrival as batter of record), strike rotation, end-of-over
// handling, then termination checks.
func (inn *Innings) Apply(ev BallEvent) (*Innings, EndReason, error) {
	if inn.Tainted != "" {
		return nil, EndReasonNone, &InvariantViolation{Reason: inn.Tainted}
	}
	if inn.Completed {
		return nil, EndReasonNone, ErrInningsAlreadyCompleted
	}
	if inn.LegalBalls >= inn.OversLimit*6 {
		return nil, EndReasonNone, ErrOversExhausted
	}

	outcome, err := Classify(ev)
	if err != nil {
		return nil, EndReasonNone, err
	}

	next := inn.clone()
	batterOfRecord := next.StrikerID

	// A dead ball is recorded and nothing else happens.
	if outcome.Kind == OutcomeDead {
		next.appendDelivery(ev, outcome, batterOfRecord)
		return next, EndReasonNone, nil
	}

	next.TotalRuns += outcome.TeamRuns()
	next.Extras += outcome.ExtraRuns()

	switch outcome.Kind {
	case OutcomeWide:
		next.BowlingCard.RecordExtra(ev.BowlerID, CategoryWide, outcome.BowlerRuns())
	case OutcomeNoBall:
		next.BowlingCard.RecordExtra(ev.BowlerID, CategoryNoBall, outcome.BowlerRuns())
	}

	// A free hit suppresses every dismissal kind, run-outs included.
	wicketTaken := ev.IsWicket && !ev.IsFreeHit
	if wicketTaken {
		next.resolveDismissal(ev)
	}

	// Bat runs are credited for legal deliveries only, and never on the
	// ball a wicket fell. Runs off a wide or no-ball reach the team total
	// but no batter's ledger.
	if !wicketTaken && outcome.Legal() {
		next.BattingCard.CreditRuns(batterOfRecord, outcome.Runs)
	}

	if outcome.Legal() {
		next.LegalBalls++
		next.BowlingCard.RecordLegalBall(ev.BowlerID, outcome.BowlerRuns())
		next.CurrentBowlerID = ev.BowlerID
	}

	next.appendDelivery(ev, outcome, batterOfRecord)

	if outcome.Legal() {
		if outcome.Runs%2 == 1 {
			next.swapStrike()
		}
		// The end-of-over swap composes with the odd-run swap; on the
		// final ball of an over they can cancel out.
		if next.LegalBalls%6 == 0 {
			next.swapStrike()
			next.CurrentBowlerID = 0
		}
	}

	if next.Wickets >= 10 {
		next.Completed = true
	}

	if err := next.checkInvariants(); err != nil {
		next.Tainted = err.Reason
		return next, EndReasonNone, err
	}

	reason := EndReasonNone
	if next.Completed {
		reason = EndReasonAllOut
	}
	return next, reason, nil
}

// resolveDismissal applies a wicket: the striker's entry transitions to out,
// the innings and bowler tallies increase, and the next batter comes in on
// strike. With nobody left to come in the innings is over regardless of the
// overs remaining.
func (inn *Innings) resolveDismissal(ev BallEvent) {
	if inn.BattingCard.MarkOut(inn.StrikerID, ev.Dismissal, ev.BowlerID, ev.FielderID) {
		inn.Wickets++
		inn.BowlingCard.RecordWicket(ev.BowlerID)
	}
	if next, ok := inn.BattingCard.NextBatter(inn.NonStrikerID); ok {
		inn.StrikerID = next
	} else {
		inn.Completed = true
	}
}

func (inn *Innings) appendDelivery(ev BallEvent, outcome Outcome, batter PlayerID) {
	inn.Deliveries = append(inn.Deliveries, Delivery{
		Number:    len(inn.Deliveries) + 1,
		Runs:      outcome.Runs,
		Category:  ev.Category,
		IsFreeHit: ev.IsFreeHit,
		IsWicket:  ev.IsWicket,
		Dismissal: ev.Dismissal,
		BatterID:  batter,
		BowlerID:  ev.BowlerID,
		FielderID: ev.FielderID,
	})
}

func hasDuplicate(ids []PlayerID) bool {
	seen := make(map[PlayerID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func (inn *Innings) swapStrike() {
	inn.StrikerID, inn.NonStrikerID = inn.NonStrikerID, inn.StrikerID
}

func (inn *Innings) checkInvariants() *InvariantViolation {
	if inn.StrikerID == inn.NonStrikerID {
		return &InvariantViolation{Reason: "striker equals non-striker"}
	}
	if inn.Wickets > 10 {
		return &InvariantViolation{Reason: "more than 10 wickets"}
	}
	for i := range inn.BowlingCard {
		if inn.BowlingCard[i].Balls < 0 || inn.BowlingCard[i].Balls > 5 {
			return &InvariantViolation{Reason: "in-over ball counter out of range"}
		}
	}
	return nil
}

func (inn *Innings) clone() *Innings {
	next := *inn
	next.Deliveries = make([]Delivery, len(inn.Deliveries), len(inn.Deliveries)+1)
	copy(next.Deliveries, inn.Deliveries)
	next.BattingCard = inn.BattingCard.clone()
	next.BowlingCard = inn.BowlingCard.clone()
	return &next
}

// OversBowled reports the completed overs and the legal balls of the over
// in progress, innings-wide.
func (inn *Innings) OversBowled() (overs, balls int) {
	return inn.LegalBalls / 6, inn.LegalBalls % 6
}

// RunRate is the runs scored per 6 legal deliveries so far.
func (inn *Innings) RunRate() float64 {
	if inn.LegalBalls == 0 {
		return 0
	}
	return float64(inn.TotalRuns) / float64(inn.LegalBalls) * 6
}
