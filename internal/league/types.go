package league

import (
	"errors"

	"github.com/amanijl/courtside/internal/access"
	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/notifier"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/roster"
)

// ErrUnauthorized means the access gate blocked the action before any
// store call was made. It is always recoverable by showing the user an
// explanation; it never escalates to a store error.
var ErrUnauthorized = errors.New("unauthorized")

// Service coordinates the player store, the access gate, the ranking
// engine and the outbound notifications.
type Service struct {
	store      roster.PlayerStore
	gate       *access.Gate
	notifier   notifier.Notifier
	metrics    metrics.Metrics
	pubsub     pubsub.PubSubClient
	instanceID string
}
