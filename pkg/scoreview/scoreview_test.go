package scoreview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/scorebox/internal/scoring"
)

func testNames() NameResolver {
	return NameResolver{
		1: "Opener One", 2: "Opener Two", 3: "Number Three",
		21: "Quick Bowler",
	}
}

func scoredMatch(t *testing.T) *scoring.Match {
	t.Helper()
	rosterA := []scoring.PlayerID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	rosterB := []scoring.PlayerID{21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31}
	sm, err := scoring.NewMatch(100, 200, rosterA, rosterB, 20, scoring.BatTeamA)
	require.NoError(t, err)
	require.NoError(t, sm.Start())
	return sm
}

func TestFormatOvers(t *testing.T) {
	assert.Equal(t, "0.0", FormatOvers(0))
	assert.Equal(t, "0.5", FormatOvers(5))
	assert.Equal(t, "1.0", FormatOvers(6))
	assert.Equal(t, "12.4", FormatOvers(76))
}

// TestBuildInningsResolvesNames checks the projection carries resolved
// player names and computed figures.
func TestBuildInningsResolvesNames(t *testing.T) {
	sm := scoredMatch(t)
	for _, runs := range []int{4, 2, 0} {
		_, err := sm.ApplyDelivery(scoring.BallEvent{Runs: runs, Category: scoring.CategoryNormal, BowlerID: 21})
		require.NoError(t, err)
	}

	view := BuildInnings(sm.First, TeamView{ID: 100, Name: "Harbour CC"}, testNames())
	require.NotNil(t, view)

	assert.Equal(t, "Harbour CC", view.BattingTeam.Name)
	assert.Equal(t, 6, view.TotalRuns)
	assert.Equal(t, "0.3", view.Overs)
	assert.InDelta(t, 12.0, view.RunRate, 0.001)

	require.NotNil(t, view.Striker)
	assert.Equal(t, "Opener One", view.Striker.Name)

	opener := view.BattingCard[0]
	assert.Equal(t, "Opener One", opener.Player.Name)
	assert.Equal(t, 6, opener.Runs)
	assert.Equal(t, 3, opener.Balls)
	assert.InDelta(t, 200.0, opener.StrikeRate, 0.001)

	// Only bowlers with deliveries make the bowling card.
	require.Len(t, view.BowlingCard, 1)
	bowler := view.BowlingCard[0]
	assert.Equal(t, "Quick Bowler", bowler.Player.Name)
	assert.Equal(t, "0.3", bowler.Overs)
	assert.InDelta(t, 12.0, bowler.Economy, 0.001)
}

// TestBuildInningsHidesCreaseAfterCompletion drops striker, non-striker and
// bowler from a completed innings.
func TestBuildInningsHidesCreaseAfterCompletion(t *testing.T) {
	sm := scoredMatch(t)
	require.NoError(t, sm.EndInnings())

	view := BuildInnings(sm.First, TeamView{ID: 100, Name: "Harbour CC"}, testNames())
	require.NotNil(t, view)
	assert.True(t, view.Completed)
	assert.Nil(t, view.Striker)
	assert.Nil(t, view.NonStriker)
	assert.Nil(t, view.Bowler)
}

// TestBuildMatchTargetAndRate surfaces target and required run rate only
// once the chase exists.
func TestBuildMatchTargetAndRate(t *testing.T) {
	sm := scoredMatch(t)
	teamA := TeamView{ID: 100, Name: "Harbour CC"}
	teamB := TeamView{ID: 200, Name: "Valley XI"}

	view := BuildMatch(7, sm, teamA, teamB, testNames())
	assert.Nil(t, view.Target)
	assert.Nil(t, view.RequiredRunRate)
	assert.Equal(t, "Harbour CC", view.First.BattingTeam.Name)
	assert.Nil(t, view.Second)

	_, err := sm.ApplyDelivery(scoring.BallEvent{Runs: 4, Category: scoring.CategoryNormal, BowlerID: 21})
	require.NoError(t, err)
	require.NoError(t, sm.EndInnings())

	view = BuildMatch(7, sm, teamA, teamB, testNames())
	require.NotNil(t, view.Target)
	assert.Equal(t, 5, *view.Target)
	require.NotNil(t, view.RequiredRunRate)
	assert.InDelta(t, 0.25, *view.RequiredRunRate, 0.001)
	assert.Equal(t, "Valley XI", view.Second.BattingTeam.Name)
	assert.Equal(t, 2, view.CurrentInnings)
}

// TestBuildMatchSecondInningsBattingTeam follows the batting-first flag when
// assigning team views to innings.
func TestBuildMatchSecondInningsBattingTeam(t *testing.T) {
	rosterA := []scoring.PlayerID{1, 2, 3}
	rosterB := []scoring.PlayerID{21, 22, 23}
	sm, err := scoring.NewMatch(100, 200, rosterA, rosterB, 5, scoring.BatTeamB)
	require.NoError(t, err)

	view := BuildMatch(1, sm, TeamView{ID: 100, Name: "Harbour CC"}, TeamView{ID: 200, Name: "Valley XI"}, testNames())
	assert.Equal(t, "Valley XI", view.First.BattingTeam.Name)
}
