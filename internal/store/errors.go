package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned when the host environment has no
	// usable persistent storage: the database file cannot be created,
	// opened, pinged, or migrated. Callers degrade to memory-only operation
	// with no offline durability.
	ErrStoreUnavailable = errors.New("local store unavailable")

	// ErrWriteFailed is returned when a local store transaction aborts.
	// The batch is all-or-nothing: no partial writes are visible. Retry is
	// the caller's responsibility, never automatic.
	ErrWriteFailed = errors.New("local store write failed")

	// ErrCachedResponseNotFound is returned when the side cache holds no
	// entry for the requested cache version and path.
	ErrCachedResponseNotFound = errors.New("cached response not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan note rows")
)
