package roster

// PlayerStore is the sole interface between the application and the
// persisted player collection. Snapshots from List and Subscribe are
// ordered by name ascending, so the standings tie-break is deterministic
// across reloads.
type PlayerStore interface {
	List() ([]Player, error)
	Get(id string) (*Player, error)
	Create(p Player) (*Player, error)
	Update(id string, upd PlayerUpdate) error
	UpdateStats(id string, wins, losses int) error
	Delete(id string) error

	// Subscribe registers a live feed. onChange receives the full
	// name-ordered player list on every collection change; the initial
	// load counts as the first invocation. onError receives a classified
	// failure if the feed breaks; the feed does not auto-retry and the
	// caller must re-subscribe. The returned func unsubscribes.
	Subscribe(onChange func([]Player), onError func(error)) (unsubscribe func())

	// Nudge forces an immediate change check on the live feed, used when
	// a peer instance reports a write.
	Nudge()

	Clear() error
	Close()
}
