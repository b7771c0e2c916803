package notifier

import (
	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
)

// Notifier defines a high-level interface for sending notifications about league events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For a freshly recorded game outcome
	SendResultRecorded(player roster.Player, dryRun bool) error
	// For the current standings
	SendStandings(standings []ranking.RankedPlayer, dryRun bool) error
}
