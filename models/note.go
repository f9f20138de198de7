package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SyncState is the explicit per-note synchronization state. It replaces
// id-prefix sniffing as a control-flow mechanism: the reconciler decides
// between create and update by looking at this tag, never at the id shape.
type SyncState string

const (
	// StateSynced marks a note that is remote-backed with no pending change.
	StateSynced SyncState = "synced"

	// StatePendingCreate marks a note created while offline. It carries a
	// synthetic local id and has never been pushed to the remote store.
	StatePendingCreate SyncState = "pending_create"

	// StatePendingUpdate marks a remote-backed note edited while offline.
	// It keeps its remote id so reconciliation issues an update, not a create.
	StatePendingUpdate SyncState = "pending_update"
)

// LocalIDPrefix is the reserved prefix of synthetic ids assigned to notes
// created while offline. The prefix keeps locally issued keys disjoint from
// remote-issued ones; it is not used for control flow.
const LocalIDPrefix = "local-"

// Note is a single note record, either remote-authoritative or local-pending.
type Note struct {
	// ID is the note identifier. Remote-issued ids are opaque server tokens;
	// offline-created notes carry a synthetic id starting with LocalIDPrefix.
	ID string `json:"id"`

	// OwnerID is the identity of the creating user. Required on every
	// locally cached note so the cache can be scoped per identity on a
	// shared device.
	OwnerID string `json:"owner_id"`

	// Title is the note title. Non-empty, enforced at the editing boundary.
	Title string `json:"title"`

	// Content is the rich text markup. Opaque to the cache.
	Content string `json:"content"`

	// Locked makes title and content read-only in the editing surface.
	// The cache still permits writes via explicit unlock.
	Locked bool `json:"locked"`

	// UpdatedAt is used only for display ordering, never for conflict
	// resolution.
	UpdatedAt time.Time `json:"updated_at"`

	// PendingSync is true only for notes created or edited while offline
	// and not yet reconciled with the remote store.
	PendingSync bool `json:"pending_sync"`

	// SyncState tags the note's position in the reconciliation lifecycle.
	SyncState SyncState `json:"sync_state"`
}

// Pending reports whether the note owes a create or an update to the remote
// store.
func (n Note) Pending() bool {
	return n.SyncState == StatePendingCreate || n.SyncState == StatePendingUpdate
}

// NewLocalNoteID synthesizes an identifier for a note created while offline:
// local-<unix-ms>-<random>. The timestamp keeps ids roughly ordered, the
// random fragment keeps two offline creates in the same millisecond distinct.
func NewLocalNoteID() string {
	return fmt.Sprintf("%s%d-%s", LocalIDPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
