package league

import (
	"sync"
	"time"

	"github.com/amanijl/courtside/internal/access"
	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/notifier"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/ranking"
	"github.com/amanijl/courtside/internal/roster"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// SlowSnapshotThreshold is how long the first snapshot may take before
// the connection is surfaced as slow. The feed is not aborted.
const SlowSnapshotThreshold = 10 * time.Second

// New creates a new Service.
func New(store roster.PlayerStore, gate *access.Gate, n notifier.Notifier, m metrics.Metrics, ps pubsub.PubSubClient) *Service {
	return &Service{
		store:      store,
		gate:       gate,
		notifier:   n,
		metrics:    m,
		pubsub:     ps,
		instanceID: uuid.NewString(),
	}
}

// Roster returns the raw name-ordered player list.
func (s *Service) Roster() ([]roster.Player, error) {
	return s.store.List()
}

// Player returns a single record by id.
func (s *Service) Player(id string) (*roster.Player, error) {
	return s.store.Get(id)
}

// Standings returns the roster ranked by weighted score.
func (s *Service) Standings() ([]ranking.RankedPlayer, error) {
	players, err := s.store.List()
	if err != nil {
		return nil, err
	}
	return ranking.Rank(players), nil
}

// RecordResult commits a game outcome for a player. The identity must be
// on the data-entry allow-list; denial happens before any store call.
func (s *Service) RecordResult(identity access.Identity, playerID string, wins, losses int, dryRun bool) (*roster.Player, error) {
	if !s.gate.CanEnterResults(identity) {
		log.Warn("Denied result entry", "email", identity.Email, "playerID", playerID)
		return nil, ErrUnauthorized
	}

	if err := s.store.UpdateStats(playerID, wins, losses); err != nil {
		s.metrics.IncWriteFailures()
		return nil, err
	}
	s.metrics.IncRosterWrites()

	player, err := s.store.Get(playerID)
	if err != nil {
		// The write landed; the read-back only feeds the notification.
		log.Error("Failed to read back player after stats write", "error", err, "playerID", playerID)
		return nil, nil
	}

	s.publishRosterChanged()
	if err := s.pubsub.SendMessage(pubsub.EventStatsRecorded, pubsub.StatsRecordedEvent{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Wins:       player.Wins,
		Losses:     player.Losses,
		RecordedBy: identity.Email,
	}); err != nil {
		log.Error("Failed to publish stats-recorded event", "error", err)
	}

	if err := s.notifier.SendResultRecorded(*player, dryRun); err != nil {
		log.Error("Failed to send result notification", "error", err, "playerID", playerID)
	}
	return player, nil
}

// AddPlayer creates a new roster record. Gated by the profile-edit list.
func (s *Service) AddPlayer(identity access.Identity, p roster.Player) (*roster.Player, error) {
	if !s.gate.CanEditProfiles(identity) {
		log.Warn("Denied player creation", "email", identity.Email)
		return nil, ErrUnauthorized
	}
	if p.Status == "" {
		p.Status = roster.StatusActive
	}

	created, err := s.store.Create(p)
	if err != nil {
		s.metrics.IncWriteFailures()
		return nil, err
	}
	s.metrics.IncRosterWrites()
	s.publishRosterChanged()
	return created, nil
}

// EditProfile merges the given fields into a record. Gated by the
// profile-edit list.
func (s *Service) EditProfile(identity access.Identity, playerID string, upd roster.PlayerUpdate) error {
	if !s.gate.CanEditProfiles(identity) {
		log.Warn("Denied profile edit", "email", identity.Email, "playerID", playerID)
		return ErrUnauthorized
	}

	if err := s.store.Update(playerID, upd); err != nil {
		s.metrics.IncWriteFailures()
		return err
	}
	s.metrics.IncRosterWrites()
	s.publishRosterChanged()
	return nil
}

// RemovePlayer deletes a record permanently. Gated by the profile-edit
// list.
func (s *Service) RemovePlayer(identity access.Identity, playerID string) error {
	if !s.gate.CanEditProfiles(identity) {
		log.Warn("Denied player removal", "email", identity.Email, "playerID", playerID)
		return ErrUnauthorized
	}

	if err := s.store.Delete(playerID); err != nil {
		s.metrics.IncWriteFailures()
		return err
	}
	s.metrics.IncRosterWrites()
	s.publishRosterChanged()
	return nil
}

// SeedRoster populates any default roster entries missing by name. Safe
// to run on every start.
func (s *Service) SeedRoster() (int, error) {
	added, err := roster.EnsureRoster(s.store, roster.DefaultRoster())
	if err != nil {
		return added, err
	}
	if added > 0 {
		s.publishRosterChanged()
	}
	return added, nil
}

// WatchRoster wires a live subscription and pushes ranked standings to
// onSnapshot. If the first snapshot takes longer than
// SlowSnapshotThreshold the feed is flagged slow, but not aborted. The
// returned func unsubscribes.
func (s *Service) WatchRoster(onSnapshot func([]ranking.RankedPlayer), onError func(error)) func() {
	start := time.Now()
	var first sync.Once

	slowTimer := time.AfterFunc(SlowSnapshotThreshold, func() {
		s.metrics.SetFeedConnected(false)
		log.Warn("Live roster feed is slow", "threshold", SlowSnapshotThreshold)
	})

	return s.store.Subscribe(
		func(players []roster.Player) {
			first.Do(func() {
				slowTimer.Stop()
				s.metrics.ObserveSnapshotWait(time.Since(start).Seconds())
			})
			s.metrics.SetFeedConnected(true)
			s.metrics.IncSnapshotsPushed()
			onSnapshot(ranking.Rank(players))
		},
		func(err error) {
			slowTimer.Stop()
			s.metrics.SetFeedConnected(false)
			onError(err)
		},
	)
}

// HandleRosterChanged ingests a roster-changed event from a peer instance
// and nudges the local feed. Events this instance published are ignored.
func (s *Service) HandleRosterChanged(evt pubsub.RosterChangedEvent) {
	if evt.Origin == s.instanceID {
		return
	}
	log.Debug("Peer roster change received", "origin", evt.Origin)
	s.store.Nudge()
}

func (s *Service) publishRosterChanged() {
	err := s.pubsub.SendMessage(pubsub.EventRosterChanged, pubsub.RosterChangedEvent{Origin: s.instanceID})
	if err != nil {
		log.Error("Failed to publish roster-changed event", "error", err)
	}
	// Local subscribers should not wait out a poll interval either.
	s.store.Nudge()
}
