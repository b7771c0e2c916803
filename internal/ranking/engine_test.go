package ranking_test

import (
	"testing"

	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func active(name string, wins, losses int) roster.Player {
	return roster.Player{Name: name, Status: roster.StatusActive, Wins: wins, Losses: losses}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, ranking.Rank(nil))
	assert.Empty(t, ranking.Rank([]roster.Player{}))
}

func TestWeightedScoreOrdering(t *testing.T) {
	// A: 10-0 -> 10*0.75 + 100*0.25 = 32.5
	// B: 5-5  -> 5*0.75 + 50*0.25 = 16.25
	ranked := ranking.Rank([]roster.Player{
		active("B", 5, 5),
		active("A", 10, 0),
	})
	require.Len(t, ranked, 2)

	assert.Equal(t, "A", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Standing)
	assert.InDelta(t, 32.5, ranked[0].WeightedScore, 1e-9)
	assert.Equal(t, "100.0", ranked[0].WinPct)

	assert.Equal(t, "B", ranked[1].Name)
	assert.Equal(t, 2, ranked[1].Standing)
	assert.InDelta(t, 16.25, ranked[1].WeightedScore, 1e-9)
	assert.Equal(t, "50.0", ranked[1].WinPct)
}

func TestRankIsDeterministic(t *testing.T) {
	players := []roster.Player{
		active("Amani Jean-Louis", 8, 2),
		active("Bobby Floyd", 8, 2),
		active("KC Crowder", 3, 7),
		active("Scott Ely", 10, 0),
	}

	first := ranking.Rank(players)
	second := ranking.Rank(players)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Standing, second[i].Standing)
	}
}

func TestTiesKeepInputOrder(t *testing.T) {
	// Identical records tie on weighted score; the stable sort keeps the
	// snapshot's name-ascending order as the tie-break.
	ranked := ranking.Rank([]roster.Player{
		active("Adrian Thomas", 6, 4),
		active("Brandon Wright", 6, 4),
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "Adrian Thomas", ranked[0].Name)
	assert.Equal(t, "Brandon Wright", ranked[1].Name)
}

func TestZeroGamesWinPct(t *testing.T) {
	ranked := ranking.Rank([]roster.Player{active("Blake Schultz", 0, 0)})
	require.Len(t, ranked, 1)
	assert.Equal(t, "0.0", ranked[0].WinPct)
	assert.Equal(t, 0.0, ranked[0].WeightedScore)
}

func TestLeaderGamesBehindSentinel(t *testing.T) {
	ranked := ranking.Rank([]roster.Player{
		active("Leader", 12, 2),
		active("Chaser", 9, 5),
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, ranking.GBSentinel, ranked[0].GamesBehind)
	assert.NotEqual(t, ranking.GBSentinel, ranked[1].GamesBehind)
}

func TestGamesBehindArithmetic(t *testing.T) {
	// ((15-13)+(7-5))/2 = 2.0
	ranked := ranking.Rank([]roster.Player{
		active("Leader", 15, 5),
		active("Chaser", 13, 7),
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "2.0", ranked[1].GamesBehind)
}

func TestGamesBehindHalfGame(t *testing.T) {
	// ((10-9)+(2-2))/2 = 0.5
	ranked := ranking.Rank([]roster.Player{
		active("Leader", 10, 2),
		active("Chaser", 9, 2),
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "0.5", ranked[1].GamesBehind)
}

func TestZeroGamePlayerGetsSentinel(t *testing.T) {
	ranked := ranking.Rank([]roster.Player{
		active("Leader", 10, 0),
		active("Chaser", 5, 5),
		active("Newcomer", 0, 0),
	})
	require.Len(t, ranked, 3)
	assert.Equal(t, "Newcomer", ranked[2].Name)
	assert.Equal(t, ranking.GBSentinel, ranked[2].GamesBehind)
}

func TestGamesBehindNeverNegative(t *testing.T) {
	// The weighted score can rank a player first even when another player
	// has a better raw win-loss swing; GB is clamped at zero.
	ranked := ranking.Rank([]roster.Player{
		active("Grinder", 20, 15),
		active("Efficient", 19, 10),
	})
	require.Len(t, ranked, 2)
	for _, p := range ranked[1:] {
		assert.NotEqual(t, "-", p.GamesBehind[:1])
	}
}

func TestInactiveExcluded(t *testing.T) {
	players := []roster.Player{
		active("Joey Grasso", 11, 1),
		{Name: "Dane Dill", Status: roster.StatusInactive, Wins: 20, Losses: 0},
		{Name: "Shaun Morton", Status: roster.StatusInjured, Wins: 4, Losses: 6},
	}
	ranked := ranking.Rank(players)
	require.Len(t, ranked, 2)
	for _, p := range ranked {
		assert.NotEqual(t, "Dane Dill", p.Name)
	}
	// Injured players still appear; only Inactive is excluded.
	assert.Equal(t, "Shaun Morton", ranked[1].Name)
}
