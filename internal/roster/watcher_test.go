package roster_test

import (
	"testing"
	"time"

	"github.com/amanijl/courtside/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForSnapshot(t *testing.T, ch <-chan []roster.Player) []roster.Player {
	t.Helper()
	select {
	case players := <-ch:
		return players
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for roster snapshot")
		return nil
	}
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.Create(roster.Player{Name: "Amani Jean-Louis", Status: roster.StatusActive})
	require.NoError(t, err)

	snapshots := make(chan []roster.Player, 8)
	unsubscribe := store.Subscribe(
		func(players []roster.Player) { snapshots <- players },
		func(err error) { t.Errorf("unexpected feed error: %v", err) },
	)
	defer unsubscribe()

	initial := waitForSnapshot(t, snapshots)
	require.Len(t, initial, 1)
	assert.Equal(t, "Amani Jean-Louis", initial[0].Name)
}

func TestSubscribeObservesWrites(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	snapshots := make(chan []roster.Player, 8)
	unsubscribe := store.Subscribe(
		func(players []roster.Player) { snapshots <- players },
		func(err error) { t.Errorf("unexpected feed error: %v", err) },
	)
	defer unsubscribe()

	// Initial load counts as the first invocation, even when empty.
	initial := waitForSnapshot(t, snapshots)
	assert.Empty(t, initial)

	created, err := store.Create(roster.Player{Name: "Jordan Bowditch", Status: roster.StatusActive})
	require.NoError(t, err)

	var next []roster.Player
	for next = waitForSnapshot(t, snapshots); len(next) == 0; next = waitForSnapshot(t, snapshots) {
	}
	require.Len(t, next, 1)
	assert.Equal(t, created.ID, next[0].ID)

	// A delete is observed the same way.
	require.NoError(t, store.Delete(created.ID))
	for next = waitForSnapshot(t, snapshots); len(next) != 0; next = waitForSnapshot(t, snapshots) {
	}
	assert.Empty(t, next)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	snapshots := make(chan []roster.Player, 8)
	unsubscribe := store.Subscribe(
		func(players []roster.Player) { snapshots <- players },
		func(err error) {},
	)

	waitForSnapshot(t, snapshots)
	unsubscribe()

	_, err := store.Create(roster.Player{Name: "Scott Ely", Status: roster.StatusActive})
	require.NoError(t, err)

	// Drain anything already in flight, then expect silence.
	time.Sleep(100 * time.Millisecond)
	for len(snapshots) > 0 {
		<-snapshots
	}
	select {
	case players := <-snapshots:
		t.Errorf("received snapshot after unsubscribe: %v", players)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSnapshotsOrderedByName(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	for _, name := range []string{"Oscar Moncada", "Brian Gomez", "Dane Espegard"} {
		_, err := store.Create(roster.Player{Name: name, Status: roster.StatusActive})
		require.NoError(t, err)
	}

	snapshots := make(chan []roster.Player, 8)
	unsubscribe := store.Subscribe(
		func(players []roster.Player) { snapshots <- players },
		func(err error) { t.Errorf("unexpected feed error: %v", err) },
	)
	defer unsubscribe()

	players := waitForSnapshot(t, snapshots)
	require.Len(t, players, 3)
	assert.Equal(t, "Brian Gomez", players[0].Name)
	assert.Equal(t, "Dane Espegard", players[1].Name)
	assert.Equal(t, "Oscar Moncada", players[2].Name)
}
