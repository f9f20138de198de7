package service

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudvault/cloudvault/internal/logger"
)

// SyncJob runs reconciliation passes in the background whenever one is
// requested. It is typically kicked by a connectivity watcher on every
// offline to online transition, so notes saved while disconnected get
// pushed as soon as the remote store is reachable again.
type SyncJob struct {
	notes  NoteService
	logger *logger.Logger

	kick chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncJob(notes NoteService, log *logger.Logger) *SyncJob {
	return &SyncJob{
		notes:  notes,
		logger: log,
		kick:   make(chan struct{}, 1),
	}
}

// OnConnectivityChange is the subscriber shape expected by
// netwatch.Watcher.Subscribe. Regained connectivity requests a pass; going
// offline requests nothing.
func (j *SyncJob) OnConnectivityChange(online bool) {
	if online {
		j.Kick()
	}
}

// Kick requests one reconciliation pass. Requests made while a pass is
// already queued coalesce into it.
func (j *SyncJob) Kick() {
	select {
	case j.kick <- struct{}{}:
	default:
	}
}

// Start launches the background loop. Calling Start on a running job is a
// no-op.
func (j *SyncJob) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil {
		return
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.wg.Add(1)
	go j.loop(ctx)
}

func (j *SyncJob) loop(ctx context.Context) {
	defer j.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.kick:
			if err := j.notes.SyncPending(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
				j.logger.Warn().Err(err).
					Str("func", "SyncJob.loop").
					Msg("background reconciliation finished with failures")
			}
		}
	}
}

// Stop cancels the loop and waits for an in-flight pass to finish.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}
