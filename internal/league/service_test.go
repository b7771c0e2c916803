package league_test

import (
	"errors"
	"testing"

	"github.com/amanijl/courtside/internal/access"
	"github.com/amanijl/courtside/internal/league"
	"github.com/amanijl/courtside/internal/metrics"
	"github.com/amanijl/courtside/internal/notifier"
	"github.com/amanijl/courtside/internal/pubsub"
	"github.com/amanijl/courtside/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	entryOnly = access.Identity{Email: "stats@4qa.com"}
	editor    = access.Identity{Email: "admin@4qa.com"}
	stranger  = access.Identity{Email: "stranger@example.com"}
)

func newTestService(store roster.PlayerStore) (*league.Service, *roster.MockStore, *notifier.MockNotifier, *pubsub.MockPubSubClient) {
	mockStore, _ := store.(*roster.MockStore)
	gate := access.NewGate(
		[]string{"admin@4qa.com", "stats@4qa.com"},
		[]string{"admin@4qa.com"},
	)
	n := notifier.NewMock()
	ps := pubsub.NewMock("TEST")
	svc := league.New(store, gate, n, metrics.NewMockMetrics(), ps)
	return svc, mockStore, n, ps
}

func TestRecordResult(t *testing.T) {
	store := roster.NewMock()
	store.GetFunc = func(id string) (*roster.Player, error) {
		return &roster.Player{ID: id, Name: "Bobby Floyd", Wins: 5, Losses: 2}, nil
	}
	svc, mockStore, n, ps := newTestService(store)

	player, err := svc.RecordResult(entryOnly, "p1", 5, 2, false)
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, 5, player.Wins)

	require.Len(t, mockStore.UpdateStatsCalls, 1)
	assert.Equal(t, roster.UpdateStatsCall{ID: "p1", Wins: 5, Losses: 2}, mockStore.UpdateStatsCalls[0])

	require.Len(t, n.ResultRecordedCalls, 1)
	assert.Equal(t, "Bobby Floyd", n.ResultRecordedCalls[0].Name)

	// A roster-changed and a stats-recorded event go out.
	require.Len(t, ps.SendMessageCalls, 2)
	assert.Equal(t, string(pubsub.EventRosterChanged), ps.SendMessageCalls[0].Topic)
	assert.Equal(t, string(pubsub.EventStatsRecorded), ps.SendMessageCalls[1].Topic)
}

func TestRecordResultDeniedForStranger(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, n, _ := newTestService(store)

	_, err := svc.RecordResult(stranger, "p1", 5, 2, false)
	require.ErrorIs(t, err, league.ErrUnauthorized)

	// Denial happens before any store call.
	assert.Empty(t, mockStore.UpdateStatsCalls)
	assert.Empty(t, n.ResultRecordedCalls)
}

func TestRecordResultDeniedWhenUnauthenticated(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, _, _ := newTestService(store)

	_, err := svc.RecordResult(access.Identity{}, "p1", 1, 0, false)
	require.ErrorIs(t, err, league.ErrUnauthorized)
	assert.Empty(t, mockStore.UpdateStatsCalls)
}

func TestRecordResultSurfacesStoreError(t *testing.T) {
	store := roster.NewMock()
	store.UpdateStatsFunc = func(id string, wins, losses int) error {
		return &roster.StoreError{Kind: roster.KindNotFound, Op: "update stats", Err: errors.New("gone")}
	}
	svc, _, n, _ := newTestService(store)

	_, err := svc.RecordResult(entryOnly, "gone", 1, 1, false)
	require.Error(t, err)
	assert.Equal(t, roster.KindNotFound, roster.KindOf(err))
	assert.Empty(t, n.ResultRecordedCalls)
}

func TestEditProfileRequiresEditList(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, _, _ := newTestService(store)

	name := "Robert Floyd"
	// A data-entry-only user cannot edit profiles.
	err := svc.EditProfile(entryOnly, "p1", roster.PlayerUpdate{Name: &name})
	require.ErrorIs(t, err, league.ErrUnauthorized)
	assert.Empty(t, mockStore.UpdateCalls)

	err = svc.EditProfile(editor, "p1", roster.PlayerUpdate{Name: &name})
	require.NoError(t, err)
	require.Len(t, mockStore.UpdateCalls, 1)
	assert.Equal(t, "p1", mockStore.UpdateCalls[0].ID)
}

func TestAddPlayerDefaultsToActive(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, _, _ := newTestService(store)

	created, err := svc.AddPlayer(editor, roster.Player{Name: "New Guy"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.Len(t, mockStore.CreateCalls, 1)
	assert.Equal(t, roster.StatusActive, mockStore.CreateCalls[0].Status)
}

func TestRemovePlayerGated(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, _, _ := newTestService(store)

	require.ErrorIs(t, svc.RemovePlayer(entryOnly, "p1"), league.ErrUnauthorized)
	assert.Empty(t, mockStore.DeleteCalls)

	require.NoError(t, svc.RemovePlayer(editor, "p1"))
	assert.Equal(t, []string{"p1"}, mockStore.DeleteCalls)
}

func TestHandleRosterChangedNudgesOnPeerEvent(t *testing.T) {
	store := roster.NewMock()
	svc, mockStore, _, _ := newTestService(store)

	svc.HandleRosterChanged(pubsub.RosterChangedEvent{Origin: "some-other-instance"})
	assert.Equal(t, 1, mockStore.NudgeCalls)
}

func TestStandingsRanksStoreSnapshot(t *testing.T) {
	store := roster.NewMock()
	store.ListFunc = func() ([]roster.Player, error) {
		return []roster.Player{
			{Name: "B", Status: roster.StatusActive, Wins: 5, Losses: 5},
			{Name: "A", Status: roster.StatusActive, Wins: 10, Losses: 0},
			{Name: "Benched", Status: roster.StatusInactive, Wins: 20, Losses: 0},
		}, nil
	}
	svc, _, _, _ := newTestService(store)

	standings, err := svc.Standings()
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, "A", standings[0].Name)
	assert.Equal(t, 1, standings[0].Standing)
}
