// Package netwatch tracks reachability of the remote note store. It probes
// the store on a ticker and notifies subscribers on every transition between
// online and offline, standing in for the browser's online/offline events.
package netwatch

import (
	"context"
	"sync"
	"time"

	"github.com/cloudvault/cloudvault/internal/logger"
)

// Prober issues a single lightweight reachability check. Satisfied by the
// server adapter's Ping.
type Prober interface {
	Ping(ctx context.Context) error
}

// Watcher maintains the current online/offline state and fans transitions
// out to subscribers. The zero state is offline until the first probe.
type Watcher struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	online bool
	subs   []func(online bool)
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher builds a watcher probing at the given interval. An interval of
// zero or less defaults to 15 seconds.
func NewWatcher(prober Prober, interval time.Duration, logger *logger.Logger) *Watcher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Watcher{prober: prober, interval: interval, logger: logger}
}

// Online returns the most recently observed connectivity state.
func (w *Watcher) Online() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.online
}

// Subscribe registers fn to be called on every connectivity transition.
// Callbacks run on the watcher's goroutine and must not block.
func (w *Watcher) Subscribe(fn func(online bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subs = append(w.subs, fn)
}

// Probe performs one synchronous reachability check and applies the
// resulting state, notifying subscribers if it changed. Returns the
// observed state.
func (w *Watcher) Probe(ctx context.Context) bool {
	online := w.prober.Ping(ctx) == nil
	w.setOnline(online)
	return online
}

// Start launches the background probe loop. It stops any previously running
// loop first. The goroutine exits when ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.Probe(loopCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and blocks until it has fully exited. Safe to
// call when the loop is not running.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Watcher) setOnline(online bool) {
	w.mu.Lock()
	changed := w.online != online
	w.online = online
	subs := make([]func(bool), len(w.subs))
	copy(subs, w.subs)
	w.mu.Unlock()

	if !changed {
		return
	}

	w.logger.Info().Bool("online", online).Msg("connectivity changed")
	for _, fn := range subs {
		fn(online)
	}
}
