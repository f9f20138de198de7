// Package workers runs the application's background workers (the
// connectivity watcher and the reconciliation job) under one lifecycle, so
// startup and shutdown stay in a single place.
package workers

import "context"

// Worker is a background component with an explicit lifecycle. Start must
// not block; Stop must be safe to call more than once and must wait for the
// worker's goroutines to finish.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start launches every worker in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse order, so consumers go down before
// their producers.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
