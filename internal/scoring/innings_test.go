package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRosters(batters, bowlers int) ([]PlayerID, []PlayerID) {
	bat := make([]PlayerID, batters)
	for i := range bat {
		bat[i] = PlayerID(i + 1)
	}
	bowl := make([]PlayerID, bowlers)
	for i := range bowl {
		bowl[i] = PlayerID(i + 21)
	}
	return bat, bowl
}

func testInnings(t *testing.T, batters, oversLimit int) *Innings {
	t.Helper()
	bat, bowl := testRosters(batters, 11)
	inn, err := NewInnings(7, bat, bowl, oversLimit)
	require.NoError(t, err)
	return inn
}

func mustApply(t *testing.T, inn *Innings, ev BallEvent) *Innings {
	t.Helper()
	next, _, err := inn.Apply(ev)
	require.NoError(t, err)
	return next
}

func normal(runs int) BallEvent {
	return BallEvent{Runs: runs, Category: CategoryNormal, BowlerID: 21}
}

func TestNewInnings_Seeding(t *testing.T) {
	inn := testInnings(t, 11, 20)

	assert.Len(t, inn.BattingCard, 11)
	assert.Len(t, inn.BowlingCard, 11)
	assert.Equal(t, PlayerID(1), inn.StrikerID)
	assert.Equal(t, PlayerID(2), inn.NonStrikerID)
	assert.Zero(t, inn.CurrentBowlerID)
	assert.False(t, inn.Completed)

	_, err := NewInnings(7, []PlayerID{1}, []PlayerID{21}, 20)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

// A roster listing the same player twice would seed both crease ends with
// one batter and violate striker != non-striker on the first delivery, so
// it is rejected before any innings exists.
func TestNewInnings_RejectsDuplicateBatter(t *testing.T) {
	_, err := NewInnings(7, []PlayerID{5, 5, 6}, []PlayerID{21, 22}, 20)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "batters", vErr.Field)

	// A duplicate further down the order is just as fatal once wickets fall.
	_, err = NewInnings(7, []PlayerID{1, 2, 3, 2}, []PlayerID{21, 22}, 20)
	assert.ErrorAs(t, err, &vErr)
}

// Six normal deliveries scoring 1,2,0,4,1,6: the odd-run balls swap strike
// twice and the end-of-over swap fires on top of that.
func TestInnings_StrikeRotationOverScenario(t *testing.T) {
	inn := testInnings(t, 11, 20)

	for _, runs := range []int{1, 2, 0, 4, 1, 6} {
		inn = mustApply(t, inn, normal(runs))
	}

	assert.Equal(t, 14, inn.TotalRuns)
	assert.Equal(t, 0, inn.Extras)
	assert.Equal(t, 6, inn.LegalBalls)
	assert.Equal(t, PlayerID(2), inn.StrikerID)
	assert.Equal(t, PlayerID(1), inn.NonStrikerID)
	assert.Zero(t, inn.CurrentBowlerID, "bowler slot clears at the end of the over")

	opener := inn.BattingCard.Entry(1)
	assert.Equal(t, 7, opener.Runs)
	assert.Equal(t, 2, opener.Balls)
	assert.Equal(t, 1, opener.Sixes)

	partner := inn.BattingCard.Entry(2)
	assert.Equal(t, 7, partner.Runs)
	assert.Equal(t, 4, partner.Balls)
	assert.Equal(t, 1, partner.Fours)

	bowler := inn.BowlingCard.Entry(21)
	assert.Equal(t, 1, bowler.Overs)
	assert.Equal(t, 0, bowler.Balls)
	assert.Equal(t, 14, bowler.Runs)
	assert.Equal(t, 0, bowler.Maidens)
}

func TestInnings_WideScoring(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{Runs: 1, Category: CategoryWide, BowlerID: 21})

	assert.Equal(t, 2, inn.TotalRuns)
	assert.Equal(t, 2, inn.Extras)
	assert.Equal(t, 0, inn.LegalBalls)
	assert.Equal(t, PlayerID(1), inn.StrikerID, "no rotation on a wide, odd byes or not")

	bowler := inn.BowlingCard.Entry(21)
	assert.Equal(t, 2, bowler.Runs)
	assert.Equal(t, 1, bowler.Wides)
	assert.Equal(t, 0, bowler.BallsBowled())
	assert.Zero(t, inn.BattingCard.Entry(1).Balls)
}

// Bat runs off a no-ball reach the team total but never any batter's ledger,
// and the bowler concedes only the one-run penalty.
func TestInnings_NoBallScoring(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{Runs: 2, Category: CategoryNoBall, BowlerID: 21})

	assert.Equal(t, 3, inn.TotalRuns)
	assert.Equal(t, 1, inn.Extras)
	assert.Equal(t, 0, inn.LegalBalls)

	bowler := inn.BowlingCard.Entry(21)
	assert.Equal(t, 1, bowler.Runs)
	assert.Equal(t, 1, bowler.NoBalls)

	striker := inn.BattingCard.Entry(1)
	assert.Zero(t, striker.Runs)
	assert.Zero(t, striker.Balls)
}

// A dead ball is appended to the log and nothing else moves.
func TestInnings_DeadBall(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{Runs: 3, Category: CategoryDeadBall, BowlerID: 21})

	require.Len(t, inn.Deliveries, 1)
	assert.Equal(t, 0, inn.Deliveries[0].Runs)
	assert.Equal(t, CategoryDeadBall, inn.Deliveries[0].Category)
	assert.Equal(t, 0, inn.TotalRuns)
	assert.Equal(t, 0, inn.LegalBalls)
	assert.Equal(t, PlayerID(1), inn.StrikerID)
	assert.Zero(t, inn.BowlingCard.Entry(21).BallsBowled())
}

func TestInnings_Wicket(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{
		Category:  CategoryNormal,
		BowlerID:  21,
		IsWicket:  true,
		Dismissal: DismissalCatch,
		FielderID: 25,
	})

	assert.Equal(t, 1, inn.Wickets)
	assert.Equal(t, 1, inn.BowlingCard.Entry(21).Wickets)

	out := inn.BattingCard.Entry(1)
	assert.True(t, out.IsOut)
	assert.Equal(t, DismissalCatch, out.Dismissal)
	assert.Equal(t, PlayerID(21), out.BowlerID)
	assert.Equal(t, PlayerID(25), out.FielderID)
	assert.Zero(t, out.Balls, "no batting credit on the wicket ball")

	// Exactly one entry went out; the next batter is on strike.
	outs := 0
	for _, e := range inn.BattingCard {
		if e.IsOut {
			outs++
		}
	}
	assert.Equal(t, 1, outs)
	assert.Equal(t, PlayerID(3), inn.StrikerID)
	assert.Equal(t, PlayerID(2), inn.NonStrikerID)

	// The log records the dismissed batter, not the replacement.
	require.Len(t, inn.Deliveries, 1)
	assert.Equal(t, PlayerID(1), inn.Deliveries[0].BatterID)
}

// A run-out after completing a single: the team keeps the run, no batter is
// credited, and the odd-run swap applies after the replacement comes in.
func TestInnings_RunOutWithRuns(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{
		Runs:      1,
		Category:  CategoryNormal,
		BowlerID:  21,
		IsWicket:  true,
		Dismissal: DismissalRunOut,
		FielderID: 26,
	})

	assert.Equal(t, 1, inn.TotalRuns)
	assert.Zero(t, inn.BattingCard.TotalRuns())
	assert.Equal(t, PlayerID(2), inn.StrikerID)
	assert.Equal(t, PlayerID(3), inn.NonStrikerID)
	assert.Equal(t, 1, inn.BowlingCard.Entry(21).Wickets)
}

// A free hit suppresses every dismissal kind, run-outs included; the batter
// is credited as if nothing happened.
func TestInnings_FreeHitSuppressesWicket(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, BallEvent{
		Runs:      4,
		Category:  CategoryNormal,
		BowlerID:  21,
		IsFreeHit: true,
		IsWicket:  true,
		Dismissal: DismissalRunOut,
	})

	assert.Equal(t, 0, inn.Wickets)
	assert.False(t, inn.BattingCard.Entry(1).IsOut)
	assert.Equal(t, 4, inn.BattingCard.Entry(1).Runs)
	assert.Equal(t, 1, inn.BattingCard.Entry(1).Fours)
	assert.Zero(t, inn.BowlingCard.Entry(21).Wickets)
	assert.True(t, inn.Deliveries[0].IsWicket, "the raw event is still recorded")
}

func TestInnings_AllOutWhenNoBatterRemains(t *testing.T) {
	inn := testInnings(t, 2, 20)

	next, reason, err := inn.Apply(BallEvent{
		Category: CategoryNormal, BowlerID: 21,
		IsWicket: true, Dismissal: DismissalBowled,
	})
	require.NoError(t, err)

	assert.True(t, next.Completed)
	assert.Equal(t, EndReasonAllOut, reason)
	assert.Equal(t, 1, next.Wickets)
}

// The 10th wicket ends the innings immediately even with batters to spare
// and overs remaining.
func TestInnings_TenWicketsForceCompletion(t *testing.T) {
	inn := testInnings(t, 12, 20)

	var reason EndReason
	for i := 0; i < 10; i++ {
		var err error
		inn, reason, err = inn.Apply(BallEvent{
			Category: CategoryNormal, BowlerID: 21,
			IsWicket: true, Dismissal: DismissalBowled,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 10, inn.Wickets)
	assert.True(t, inn.Completed)
	assert.Equal(t, EndReasonAllOut, reason)

	_, _, err := inn.Apply(normal(0))
	assert.ErrorIs(t, err, ErrInningsAlreadyCompleted)
}

func TestInnings_OversExhausted(t *testing.T) {
	inn := testInnings(t, 11, 1)
	for i := 0; i < 6; i++ {
		inn = mustApply(t, inn, normal(0))
	}

	assert.Equal(t, 6, inn.LegalBalls)
	assert.False(t, inn.Completed)

	_, _, err := inn.Apply(normal(1))
	assert.ErrorIs(t, err, ErrOversExhausted)

	_, _, err = inn.Apply(BallEvent{Category: CategoryWide, BowlerID: 21})
	assert.ErrorIs(t, err, ErrOversExhausted)
}

// A rejected event leaves the input innings untouched, and a successful one
// is visible only through the returned copy.
func TestInnings_ApplyIsTransactional(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn = mustApply(t, inn, normal(2))

	before := *inn.clone()
	_, _, err := inn.Apply(BallEvent{Category: "bouncer", BowlerID: 21})
	require.Error(t, err)
	assert.Equal(t, &before, inn)

	next := mustApply(t, inn, normal(4))
	assert.Equal(t, &before, inn, "receiver must not change")
	assert.Equal(t, 6, next.TotalRuns)
	assert.Len(t, inn.Deliveries, 1)
	assert.Len(t, next.Deliveries, 2)
}

func TestInnings_TaintedRefusesProcessing(t *testing.T) {
	inn := testInnings(t, 11, 20)
	inn.Tainted = "striker equals non-striker"

	_, _, err := inn.Apply(normal(0))
	var iv *InvariantViolation
	require.ErrorAs(t, err, &iv)
	assert.Equal(t, "striker equals non-striker", iv.Reason)
}

// Over legal deliveries and wides, batter runs plus extras always equal the
// innings total.
func TestInnings_RunsBalanceProperty(t *testing.T) {
	inn := testInnings(t, 11, 20)

	events := []BallEvent{
		normal(1), normal(4), normal(0),
		{Runs: 2, Category: CategoryWide, BowlerID: 21},
		normal(6), normal(3),
		{Category: CategoryWide, BowlerID: 21},
		normal(2), normal(1),
	}
	for _, ev := range events {
		inn = mustApply(t, inn, ev)
	}

	assert.Equal(t, inn.TotalRuns, inn.BattingCard.TotalRuns()+inn.Extras)
	overs, balls := inn.OversBowled()
	assert.Equal(t, 1, overs)
	assert.Equal(t, 1, balls)
}

// Replaying the recorded delivery log of a finished innings from scratch
// reproduces identical ledgers and totals.
func TestInnings_ReplayIsDeterministic(t *testing.T) {
	inn := testInnings(t, 11, 2)

	events := []BallEvent{
		normal(1),
		{Runs: 1, Category: CategoryWide, BowlerID: 21},
		normal(4),
		{Runs: 2, Category: CategoryNoBall, BowlerID: 21},
		{Category: CategoryNormal, BowlerID: 21, IsWicket: true, Dismissal: DismissalCatch, FielderID: 25},
		{Runs: 2, Category: CategoryNormal, BowlerID: 21, IsFreeHit: true, IsWicket: true, Dismissal: DismissalRunOut},
		{Category: CategoryDeadBall, BowlerID: 21},
		normal(0), normal(6),
		normal(2), normal(0), normal(1),
	}
	for _, ev := range events {
		inn = mustApply(t, inn, ev)
	}

	replayed := testInnings(t, 11, 2)
	for _, d := range inn.Deliveries {
		replayed = mustApply(t, replayed, BallEvent{
			Runs:      d.Runs,
			Category:  d.Category,
			IsFreeHit: d.IsFreeHit,
			IsWicket:  d.IsWicket,
			Dismissal: d.Dismissal,
			BowlerID:  d.BowlerID,
			FielderID: d.FielderID,
		})
	}

	assert.Equal(t, inn, replayed)
}

func TestInnings_StrikerNeverEqualsNonStriker(t *testing.T) {
	inn := testInnings(t, 11, 20)

	events := []BallEvent{
		normal(1), normal(3), normal(2),
		{Category: CategoryNormal, BowlerID: 21, IsWicket: true, Dismissal: DismissalBowled},
		normal(1), normal(5),
		{Runs: 1, Category: CategoryWide, BowlerID: 21},
		normal(0),
		{Category: CategoryNormal, BowlerID: 22, IsWicket: true, Dismissal: DismissalLBW},
	}
	for _, ev := range events {
		inn = mustApply(t, inn, ev)
		assert.NotEqual(t, inn.StrikerID, inn.NonStrikerID)
	}
}
