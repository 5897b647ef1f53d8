package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBowlingCard_OverWrap(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21, 22})

	for i := 0; i < 5; i++ {
		assert.False(t, card.RecordLegalBall(21, 1))
	}
	entry := card.Entry(21)
	assert.Equal(t, 5, entry.Balls)
	assert.Equal(t, 0, entry.Overs)

	// The stored ball counter never reaches 6: it wraps into overs.
	assert.True(t, card.RecordLegalBall(21, 0))
	assert.Equal(t, 0, entry.Balls)
	assert.Equal(t, 1, entry.Overs)
	assert.Equal(t, 5, entry.Runs)
	assert.Equal(t, 6, entry.BallsBowled())
}

func TestBowlingCard_MaidenOver(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21})

	for i := 0; i < 6; i++ {
		card.RecordLegalBall(21, 0)
	}
	assert.Equal(t, 1, card.Entry(21).Maidens)
}

// The maiden decision is scoped to the legal deliveries of the over itself:
// a wide bowled mid-over is tallied separately and must not spoil it, and
// runs conceded in an earlier over must not leak into the next.
func TestBowlingCard_MaidenWindowing(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21})

	// First over concedes 4 off the first ball, then dots.
	card.RecordLegalBall(21, 4)
	for i := 0; i < 5; i++ {
		card.RecordLegalBall(21, 0)
	}
	assert.Equal(t, 0, card.Entry(21).Maidens)

	// Second over: all dots with a wide in the middle.
	for i := 0; i < 3; i++ {
		card.RecordLegalBall(21, 0)
	}
	card.RecordExtra(21, CategoryWide, 1)
	for i := 0; i < 3; i++ {
		card.RecordLegalBall(21, 0)
	}

	entry := card.Entry(21)
	assert.Equal(t, 1, entry.Maidens)
	assert.Equal(t, 2, entry.Overs)
	assert.Equal(t, 0, entry.Balls)
	assert.Equal(t, 1, entry.Wides)
	assert.Equal(t, 5, entry.Runs)
}

func TestBowlingCard_ExtrasDoNotAdvanceOver(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21})

	card.RecordExtra(21, CategoryWide, 2)
	card.RecordExtra(21, CategoryNoBall, 1)

	entry := card.Entry(21)
	assert.Equal(t, 0, entry.Balls)
	assert.Equal(t, 0, entry.BallsBowled())
	assert.Equal(t, 1, entry.Wides)
	assert.Equal(t, 1, entry.NoBalls)
	assert.Equal(t, 3, entry.Runs)
}

func TestBowlingCard_RecordWicket(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21})
	card.RecordWicket(21)
	card.RecordWicket(21)
	assert.Equal(t, 2, card.Entry(21).Wickets)
}

func TestBowlingCard_UnknownBowlerIsIgnored(t *testing.T) {
	card := NewBowlingCard([]PlayerID{21})
	require.Nil(t, card.Entry(99))

	card.RecordLegalBall(99, 4)
	card.RecordExtra(99, CategoryWide, 1)
	card.RecordWicket(99)

	assert.Zero(t, card.Entry(21).Runs)
}
