package scoring

// BattingEntry is one batter's figures for an innings.
type BattingEntry struct {
	PlayerID  PlayerID  `json:"player_id"`
	Runs      int       `json:"runs"`
	Balls     int       `json:"balls"`
	Fours     int       `json:"fours"`
	Sixes     int       `json:"sixes"`
	IsOut     bool      `json:"is_out"`
	Dismissal Dismissal `json:"dismissal,omitempty"`
	BowlerID  PlayerID  `json:"bowler_id,omitempty"`
	FielderID PlayerID  `json:"fielder_id,omitempty"`
}

// BattingCard holds one entry per batter, in roster order. Roster order is
// batting order: the openers are the first two entries.
type BattingCard []BattingEntry

// NewBattingCard pre-seeds zeroed entries for every player on the roster.
func NewBattingCard(roster []PlayerID) BattingCard {
	card := make(BattingCard, 0, len(roster))
	for _, id := range roster {
		card = append(card, BattingEntry{PlayerID: id})
	}
	return card
}

// Entry returns the card entry for a player, or nil if they are not on it.
func (c BattingCard) Entry(id PlayerID) *BattingEntry {
	for i := range c {
		if c[i].PlayerID == id {
			return &c[i]
		}
	}
	return nil
}

// CreditRuns records a legal delivery faced by the batter: runs, a ball
// faced, and the boundary counters. A batter already out is never credited.
func (c BattingCard) CreditRuns(id PlayerID, runs int) {
	entry := c.Entry(id)
	if entry == nil || entry.IsOut {
		return
	}
	entry.Runs += runs
	entry.Balls++
	if runs == 4 {
		entry.Fours++
	} else if runs == 6 {
		entry.Sixes++
	}
}

// MarkOut sets the dismissal on a batter's entry. It reports whether the
// transition happened; a batter already out cannot be re-marked.
func (c BattingCard) MarkOut(id PlayerID, kind Dismissal, bowler, fielder PlayerID) bool {
	entry := c.Entry(id)
	if entry == nil || entry.IsOut {
		return false
	}
	entry.IsOut = true
	entry.Dismissal = kind
	entry.BowlerID = bowler
	if kind.involvesFielder() {
		entry.FielderID = fielder
	}
	return true
}

// NextBatter picks the incoming batter after a wicket: the first entry in
// card order that is still at the crease and is not the current non-striker.
func (c BattingCard) NextBatter(nonStriker PlayerID) (PlayerID, bool) {
	for i := range c {
		if !c[i].IsOut && c[i].PlayerID != nonStriker {
			return c[i].PlayerID, true
		}
	}
	return 0, false
}

// TotalRuns sums the runs credited to every batter on the card.
func (c BattingCard) TotalRuns() int {
	total := 0
	for i := range c {
		total += c[i].Runs
	}
	return total
}

func (c BattingCard) clone() BattingCard {
	out := make(BattingCard, len(c))
	copy(out, c)
	return out
}
