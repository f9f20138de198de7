package netwatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudvault/cloudvault/internal/logger"
)

type stubProber struct {
	mu  sync.Mutex
	err error
}

func (p *stubProber) Ping(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *stubProber) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func TestWatcher_StartsOffline(t *testing.T) {
	w := NewWatcher(&stubProber{}, 0, logger.Nop())
	assert.False(t, w.Online())
}

func TestWatcher_ProbeTransitions(t *testing.T) {
	prober := &stubProber{}
	w := NewWatcher(prober, 0, logger.Nop())

	var transitions []bool
	w.Subscribe(func(online bool) { transitions = append(transitions, online) })

	require.True(t, w.Probe(context.Background()))
	assert.True(t, w.Online())

	// repeated probe with same result must not re-notify
	require.True(t, w.Probe(context.Background()))

	prober.setErr(errors.New("connection refused"))
	require.False(t, w.Probe(context.Background()))
	assert.False(t, w.Online())

	assert.Equal(t, []bool{true, false}, transitions)
}

func TestWatcher_BackgroundLoop(t *testing.T) {
	prober := &stubProber{}
	w := NewWatcher(prober, 10*time.Millisecond, logger.Nop())

	online := make(chan bool, 1)
	w.Subscribe(func(o bool) {
		select {
		case online <- o:
		default:
		}
	})

	w.Start(context.Background())
	defer w.Stop()

	select {
	case o := <-online:
		assert.True(t, o)
	case <-time.After(time.Second):
		t.Fatal("watcher never reported an online transition")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w := NewWatcher(&stubProber{}, 10*time.Millisecond, logger.Nop())

	w.Stop() // not started yet: no-op

	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
