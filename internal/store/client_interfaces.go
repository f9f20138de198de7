package store

import (
	"context"

	"github.com/cloudvault/cloudvault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// NoteRepository is the low-level local note cache. Exactly one record exists
// per note id; every put is an upsert (last write wins).
type NoteRepository interface {
	// PutMany upserts a batch of notes in a single transaction. The batch is
	// atomic: all records become visible or none do. Returns a wrapped
	// [ErrWriteFailed] if the transaction aborts.
	PutMany(ctx context.Context, notes []models.Note) error

	// PutOne upserts a single note and returns the assigned key (the note id).
	PutOne(ctx context.Context, note models.Note) (string, error)

	// GetAll returns every cached record regardless of owner, in unspecified
	// order. Identity scoping and display ordering are caller concerns.
	GetAll(ctx context.Context) ([]models.Note, error)

	// GetPending returns the records owed to the remote store
	// (pending_sync = true) for the given owner, oldest update first so
	// reconciliation order stays deterministic.
	GetPending(ctx context.Context, ownerID string) ([]models.Note, error)

	// DeleteOne removes the record with the given id. Absent records are not
	// an error.
	DeleteOne(ctx context.Context, id string) error

	// Clear removes all records unconditionally. Used only at logout.
	Clear(ctx context.Context) error
}

// ResponseCacheRepository is the gateway's side cache of HTTP responses,
// distinct from the note cache. Entries are keyed by (cache version, path).
type ResponseCacheRepository interface {
	// Get returns the cached response for the given version and path, or a
	// wrapped [ErrCachedResponseNotFound].
	Get(ctx context.Context, version, path string) (models.CachedResponse, error)

	// Put upserts a cached response.
	Put(ctx context.Context, entry models.CachedResponse) error

	// PurgeOtherVersions removes every entry whose cache version differs
	// from current.
	PurgeOtherVersions(ctx context.Context, current string) error

	// PurgePathPrefixes removes every entry of the given version whose path
	// starts with any of the prefixes.
	PurgePathPrefixes(ctx context.Context, version string, prefixes []string) error
}
