package roster

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// defaultPollInterval is how often the live feed checks the collection
// version for changes made by this or any other client.
const defaultPollInterval = 2 * time.Second

type subscriber struct {
	onChange func([]Player)
	onError  func(error)
	pending  bool
}

// watcher drives the live subscription feed. Every write bumps the
// roster_version counter in its own transaction; the watcher polls the
// counter and pushes a full name-ordered snapshot to every subscriber
// when it moves. On a store failure the feed breaks for all subscribers;
// there is no auto-retry.
type watcher struct {
	store    *store
	interval time.Duration
	nudge    chan struct{}

	mu          sync.Mutex
	subs        map[int]*subscriber
	nextID      int
	stop        chan struct{}
	running     bool
	lastVersion int64
}

func newWatcher(s *store, interval time.Duration) *watcher {
	return &watcher{
		store:       s,
		interval:    interval,
		nudge:       make(chan struct{}, 1),
		subs:        make(map[int]*subscriber),
		lastVersion: -1,
	}
}

func (w *watcher) subscribe(onChange func([]Player), onError func(error)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = &subscriber{onChange: onChange, onError: onError, pending: true}
	if !w.running {
		w.running = true
		w.stop = make(chan struct{})
		go w.loop(w.stop)
	}
	w.mu.Unlock()

	// Wake the loop so the new subscriber gets its initial snapshot
	// without waiting a full poll interval.
	w.nudgeFeed()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

func (w *watcher) nudgeFeed() {
	select {
	case w.nudge <- struct{}{}:
	default:
	}
}

func (w *watcher) stopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stop)
		w.running = false
	}
	w.subs = make(map[int]*subscriber)
}

func (w *watcher) loop(stop chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-w.nudge:
			w.check()
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *watcher) check() {
	version, err := w.store.version()
	if err != nil {
		w.fail(err)
		return
	}

	w.mu.Lock()
	changed := version != w.lastVersion
	var pending []*subscriber
	for _, sub := range w.subs {
		if sub.pending {
			pending = append(pending, sub)
		}
	}
	w.mu.Unlock()

	if !changed && len(pending) == 0 {
		return
	}

	players, err := w.store.List()
	if err != nil {
		w.fail(err)
		return
	}

	w.mu.Lock()
	w.lastVersion = version
	var targets []*subscriber
	for _, sub := range w.subs {
		if changed || sub.pending {
			targets = append(targets, sub)
		}
		sub.pending = false
	}
	w.mu.Unlock()

	for _, sub := range targets {
		sub.onChange(players)
	}
}

// fail breaks the feed: every subscriber is told once and dropped, and the
// loop shuts down. Callers re-subscribe explicitly.
func (w *watcher) fail(err error) {
	log.Error("Live roster feed failed", "error", err, "kind", KindOf(err))

	w.mu.Lock()
	var dropped []*subscriber
	for _, sub := range w.subs {
		dropped = append(dropped, sub)
	}
	w.subs = make(map[int]*subscriber)
	if w.running {
		close(w.stop)
		w.running = false
	}
	w.lastVersion = -1
	w.mu.Unlock()

	for _, sub := range dropped {
		sub.onError(err)
	}
}
