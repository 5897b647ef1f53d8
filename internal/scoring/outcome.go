package scoring

// OutcomeKind is the normalized shape of a classified delivery. Runs mean
// different things per kind, so the pair is kept as a tagged variant instead
// of a bare integer next to a string.
type OutcomeKind int

const (
	// OutcomeLegal counts toward the over; Runs are scored off the bat.
	OutcomeLegal OutcomeKind = iota
	// OutcomeWide does not count toward the over; Runs are byes completed
	// while the ball was wide, on top of the one-run penalty.
	OutcomeWide
	// OutcomeNoBall does not count toward the over; Runs are off the bat,
	// on top of the one-run penalty.
	OutcomeNoBall
	// OutcomeDead contributes nothing and stops all further processing;
	// the delivery is still recorded in the innings log.
	OutcomeDead
)

// Outcome is the result of classifying a raw ball event.
type Outcome struct {
	Kind OutcomeKind
	Runs int
}

// Legal reports whether the delivery counts toward the 6-ball over.
func (o Outcome) Legal() bool { return o.Kind == OutcomeLegal }

// TeamRuns is the contribution of this delivery to the innings total.
func (o Outcome) TeamRuns() int {
	switch o.Kind {
	case OutcomeLegal:
		return o.Runs
	case OutcomeWide:
		return o.Runs + 1
	case OutcomeNoBall:
		return o.Runs + 1
	}
	return 0
}

// ExtraRuns is the portion of TeamRuns not attributed to any batter.
// Runs hit off a no-ball go to the team total but are not extras.
func (o Outcome) ExtraRuns() int {
	switch o.Kind {
	case OutcomeWide:
		return o.Runs + 1
	case OutcomeNoBall:
		return 1
	}
	return 0
}

// BowlerRuns is what the delivery adds to the bowler's conceded column.
func (o Outcome) BowlerRuns() int {
	switch o.Kind {
	case OutcomeLegal:
		return o.Runs
	case OutcomeWide:
		return o.Runs + 1
	case OutcomeNoBall:
		return 1
	}
	return 0
}

// Classify validates a raw event and interprets it into an Outcome.
// It performs every field check so that callers mutate nothing on a
// rejected event.
func Classify(ev BallEvent) (Outcome, error) {
	if ev.Runs < 0 {
		return Outcome{}, &ValidationError{Field: "runs", Reason: "must be non-negative"}
	}
	if ev.BowlerID == 0 {
		return Outcome{}, &ValidationError{Field: "bowler_id", Reason: "is required"}
	}
	if ev.IsWicket && !ev.Dismissal.valid() {
		return Outcome{}, &ValidationError{Field: "dismissal", Reason: "is required when is_wicket is set"}
	}
	if !ev.IsWicket && ev.Dismissal != "" && !ev.Dismissal.valid() {
		return Outcome{}, &ValidationError{Field: "dismissal", Reason: "unknown dismissal kind"}
	}

	switch ev.Category {
	case CategoryNormal:
		return Outcome{Kind: OutcomeLegal, Runs: ev.Runs}, nil
	case CategoryWide:
		return Outcome{Kind: OutcomeWide, Runs: ev.Runs}, nil
	case CategoryNoBall:
		return Outcome{Kind: OutcomeNoBall, Runs: ev.Runs}, nil
	case CategoryDeadBall:
		return Outcome{Kind: OutcomeDead}, nil
	}
	return Outcome{}, ErrInvalidDeliveryCategory
}
