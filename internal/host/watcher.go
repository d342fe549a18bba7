package host

import (
	"context"
	"sync"
	"time"
)

// Event conveys a store mutation observed by the watcher.
type Event struct {
	Version uint64
}

// Watcher polls the store version at a fixed interval and publishes an
// event whenever it changes, so open menus can rebuild their item lists
// after external mutation.
type Watcher struct {
	store    *Store
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls the store every interval.
func NewWatcher(store *Store, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of store change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current tick; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	throttle := newThrottle(w.interval / 4)
	last := w.store.Version()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			throttle.wait()
			version := w.store.Version()
			if version == last {
				continue
			}
			last = version
			select {
			case <-w.ctx.Done():
				return
			case w.events <- Event{Version: version}:
			}
		}
	}
}
