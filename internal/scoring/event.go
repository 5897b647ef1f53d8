package scoring

// PlayerID identifies a player record. The scoring core never holds live
// player objects, only identifiers; rosters and ledgers are addressed by ID.
type PlayerID uint

// Category classifies a delivery as bowled.
type Category string

const (
	CategoryNormal   Category = "normal"
	CategoryWide     Category = "wide"
	CategoryNoBall   Category = "no-ball"
	CategoryDeadBall Category = "dead-ball"
)

// Dismissal is how a batter got out.
type Dismissal string

const (
	DismissalBowled    Dismissal = "bowled"
	DismissalCatch     Dismissal = "catch"
	DismissalStumpOut  Dismissal = "stump-out"
	DismissalRunOut    Dismissal = "run-out"
	DismissalHitWicket Dismissal = "hit-wicket"
	DismissalLBW       Dismissal = "LBW"
	DismissalOther     Dismissal = "other"
)

func (d Dismissal) valid() bool {
	switch d {
	case DismissalBowled, DismissalCatch, DismissalStumpOut, DismissalRunOut,
		DismissalHitWicket, DismissalLBW, DismissalOther:
		return true
	}
	return false
}

// involvesFielder reports whether a fielder is recorded against the
// dismissal (catches, stumpings and run-outs only).
func (d Dismissal) involvesFielder() bool {
	return d == DismissalCatch || d == DismissalStumpOut || d == DismissalRunOut
}

// BallEvent is one raw delivery as reported by the scorer.
type BallEvent struct {
	Runs      int       `json:"runs"`
	Category  Category  `json:"category"`
	IsFreeHit bool      `json:"is_free_hit"`
	IsWicket  bool      `json:"is_wicket"`
	Dismissal Dismissal `json:"dismissal,omitempty"`
	BowlerID  PlayerID  `json:"bowler_id"`
	FielderID PlayerID  `json:"fielder_id,omitempty"`
}

// Delivery is the immutable record of one processed event. Once appended to
// an innings log it is never mutated or removed.
type Delivery struct {
	Number    int       `json:"number"`
	Runs      int       `json:"runs"`
	Category  Category  `json:"category"`
	IsFreeHit bool      `json:"is_free_hit"`
	IsWicket  bool      `json:"is_wicket"`
	Dismissal Dismissal `json:"dismissal,omitempty"`
	BatterID  PlayerID  `json:"batter_id"`
	BowlerID  PlayerID  `json:"bowler_id"`
	FielderID PlayerID  `json:"fielder_id,omitempty"`
}
