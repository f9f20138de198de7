// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package service

import (
	"context"

	"github.com/cloudvault/cloudvault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// NoteService is the offline-first note API exposed to the UI layer. All
// operations update the shared in-memory note list as a side effect, and the
// list is always updated synchronously with the store write that produced
// the authoritative value.
type NoteService interface {
	// LoadNotes reads the locally cached notes scoped to the current
	// identity and returns them immediately, then attempts a remote fetch.
	// On remote success the displayed set is replaced with the remote
	// result and the local store is overwritten with it. On remote failure
	// the local snapshot stays the displayed truth and no error is
	// surfaced. Finishes with one reconciliation pass when online.
	LoadNotes(ctx context.Context) ([]models.Note, error)

	// SaveNote persists a note. While online it issues a remote create or
	// update and caches the authoritative result; remote rejections are
	// surfaced and nothing is queued. While offline (or when the transport
	// fails) it marks the note pending and writes it locally only.
	// Returns the stored note.
	SaveNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes a note. Always online-only: the remote delete must
	// succeed before the local cached copy is removed. There is no
	// offline-delete queue.
	DeleteNote(ctx context.Context, id string) error

	// SyncPending pushes every pending note for the current identity to the
	// remote store, strictly sequentially. One note's failure is logged and
	// left pending without blocking the others. Returns a wrapped
	// [ErrSyncItemFailed] if any item failed, or [ErrSyncInProgress] when
	// another pass holds the sync lock.
	SyncPending(ctx context.Context) error

	// Notes returns the current in-memory note list ordered by most
	// recently updated first.
	Notes() []models.Note

	// Logout purges the entire local cache and drops the session
	// credential, so the next user of the device cannot see this user's
	// notes.
	Logout(ctx context.Context) error
}

// EditingSession is the transient state machine governing whether a note is
// open for edit. The state is observable by components outside the editor's
// own subtree; chrome suppression is decided elsewhere.
type EditingSession interface {
	// EnterEditing opens a note in the editor, or a blank draft when note
	// is nil, and notifies observers.
	EnterEditing(note *models.Note)

	// SetDraft replaces the session's working copy with the editor's
	// current content. A no-op when no note is open.
	SetDraft(note models.Note)

	// ExitEditing leaves the editing state, attempting one best-effort
	// autosave first when the draft has a non-empty title or content.
	// Autosave failures are logged, never surfaced: exiting always
	// succeeds.
	ExitEditing(ctx context.Context)

	// Editing reports whether a note is currently open for edit.
	Editing() bool

	// Subscribe registers an observer called with the new state on every
	// transition.
	Subscribe(fn func(editing bool))
}

// Connectivity reports the last observed reachability of the remote store.
// Satisfied by netwatch.Watcher.
type Connectivity interface {
	Online() bool
}

// Notifier receives per-note reconciliation outcomes for display to the
// user.
type Notifier interface {
	// NoteSynced reports that a pending note was pushed successfully and
	// replaced by the authoritative record.
	NoteSynced(note models.Note)

	// SyncFailed reports that pushing a pending note failed. The note
	// stays pending.
	SyncFailed(noteID string, err error)
}
