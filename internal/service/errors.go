package service

import "errors"

var (
	// ErrEmptyTitle is returned by SaveNote when the note title is empty.
	// Title presence is enforced at the editing boundary, not by the store.
	ErrEmptyTitle = errors.New("note title is required")

	// ErrSyncInProgress is returned when a reconciliation pass is requested
	// while another is still running. At most one pass holds the sync lock
	// at a time so pending pushes stay strictly sequential.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrSyncItemFailed reports that one or more pending notes failed to
	// push during a reconciliation pass. Failed notes stay pending and are
	// retried on the next reconnect; the rest of the batch is unaffected.
	ErrSyncItemFailed = errors.New("failed to sync pending note")
)
