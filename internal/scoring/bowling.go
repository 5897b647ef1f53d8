package scoring

// BowlingEntry is one bowler's figures for an innings. Balls counts legal
// deliveries in the over in progress and always stays in [0,5]; on the 6th
// it wraps into Overs. OverRuns accumulates the runs conceded off the legal
// deliveries of the over in progress so maidens are judged on exactly that
// over, never on a trailing slice of the raw log.
type BowlingEntry struct {
	PlayerID PlayerID `json:"player_id"`
	Overs    int      `json:"overs"`
	Balls    int      `json:"balls"`
	OverRuns int      `json:"over_runs"`
	Maidens  int      `json:"maidens"`
	Runs     int      `json:"runs"`
	Wickets  int      `json:"wickets"`
	NoBalls  int      `json:"no_balls"`
	Wides    int      `json:"wides"`
}

// BallsBowled is the total count of legal deliveries by this bowler.
func (e *BowlingEntry) BallsBowled() int {
	return e.Overs*6 + e.Balls
}

// BowlingCard holds one entry per player on the bowling side, pre-seeded
// from the roster; anyone may be asked to bowl.
type BowlingCard []BowlingEntry

// NewBowlingCard pre-seeds zeroed entries for every player on the roster.
func NewBowlingCard(roster []PlayerID) BowlingCard {
	card := make(BowlingCard, 0, len(roster))
	for _, id := range roster {
		card = append(card, BowlingEntry{PlayerID: id})
	}
	return card
}

// Entry returns the card entry for a bowler, or nil if they are not on it.
func (c BowlingCard) Entry(id PlayerID) *BowlingEntry {
	for i := range c {
		if c[i].PlayerID == id {
			return &c[i]
		}
	}
	return nil
}

// RecordLegalBall counts a legal delivery and the runs conceded off it.
// It reports whether this ball completed an over.
func (c BowlingCard) RecordLegalBall(id PlayerID, runsConceded int) bool {
	entry := c.Entry(id)
	if entry == nil {
		return false
	}
	entry.Balls++
	entry.Runs += runsConceded
	entry.OverRuns += runsConceded
	if entry.Balls < 6 {
		return false
	}
	if entry.OverRuns == 0 {
		entry.Maidens++
	}
	entry.Overs++
	entry.Balls = 0
	entry.OverRuns = 0
	return true
}

// RecordExtra counts a wide or no-ball and the runs it conceded. Extras
// never advance the in-over ball counter and never spoil a maiden.
func (c BowlingCard) RecordExtra(id PlayerID, kind Category, runsConceded int) {
	entry := c.Entry(id)
	if entry == nil {
		return
	}
	switch kind {
	case CategoryWide:
		entry.Wides++
	case CategoryNoBall:
		entry.NoBalls++
	}
	entry.Runs += runsConceded
}

// RecordWicket credits the bowler with a wicket. Attribution policy is the
// caller's: every processed dismissal kind counts against the bowler.
func (c BowlingCard) RecordWicket(id PlayerID) {
	if entry := c.Entry(id); entry != nil {
		entry.Wickets++
	}
}

func (c BowlingCard) clone() BowlingCard {
	out := make(BowlingCard, len(c))
	copy(out, c)
	return out
}
