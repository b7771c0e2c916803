package ranking

import (
	"sort"
	"strconv"

	"github.com/amanijl/courtside/internal/roster"
)

// The standings sort key blends raw win count with win percentage,
// favoring players who have banked more wins over players with a shiny
// percentage on few games.
const (
	winCountWeight = 0.75
	winPctWeight   = 0.25
)

// GBSentinel is reported instead of a games-behind number for the leader
// and for players with no games played.
const GBSentinel = "--"

// RankedPlayer is a Player plus the competitive metrics computed at read
// time. None of these fields are persisted.
type RankedPlayer struct {
	roster.Player
	Standing      int     `json:"standing"`
	WinPct        string  `json:"winPct"`
	WeightedScore float64 `json:"weightedScore"`
	GamesBehind   string  `json:"gamesBehind"`
}

// Rank computes the display standings for a roster snapshot. Inactive
// players are excluded. The sort is stable, so players with equal weighted
// scores keep the snapshot's name ordering; Rank is pure and must be
// re-run on every data change.
func Rank(players []roster.Player) []RankedPlayer {
	ranked := make([]RankedPlayer, 0, len(players))
	for _, p := range players {
		if p.Status == roster.StatusInactive {
			continue
		}
		totalGames := p.Wins + p.Losses
		winPct := 0.0
		if totalGames > 0 {
			winPct = float64(p.Wins) / float64(totalGames)
		}
		ranked = append(ranked, RankedPlayer{
			Player:        p,
			WinPct:        strconv.FormatFloat(winPct*100, 'f', 1, 64),
			WeightedScore: float64(p.Wins)*winCountWeight + winPct*100*winPctWeight,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeightedScore > ranked[j].WeightedScore
	})

	if len(ranked) == 0 {
		return ranked
	}

	leader := ranked[0]
	for i := range ranked {
		ranked[i].Standing = i + 1
		ranked[i].GamesBehind = gamesBehind(leader.Player, ranked[i].Player, i == 0)
	}
	return ranked
}

// gamesBehind is the standard standings metric relative to the leader.
// It is undefined without a game count baseline, so zero-game players get
// the sentinel no matter where they rank.
func gamesBehind(leader, p roster.Player, isLeader bool) string {
	if isLeader {
		return GBSentinel
	}
	if p.Wins+p.Losses == 0 {
		return GBSentinel
	}
	gb := (float64(leader.Wins-p.Wins) + float64(p.Losses-leader.Losses)) / 2
	if gb < 0 {
		gb = 0
	}
	return strconv.FormatFloat(gb, 'f', 1, 64)
}
