package models

import "time"

// CachedResponse is a single entry of the gateway's side cache: an HTTP
// response stored for offline reuse. The side cache is distinct from the
// note store; entries are keyed by (cache version, request path).
type CachedResponse struct {
	// Version is the cache generation the entry belongs to. Entries from
	// older generations are purged on gateway activation.
	Version string

	// Path is the request path the response was served for.
	Path string

	// Status is the upstream HTTP status code. Only 200 responses are ever
	// stored, but the column is kept explicit so replays are faithful.
	Status int

	// ContentType is the upstream Content-Type header.
	ContentType string

	// Body is the raw response body.
	Body []byte

	// StoredAt records when the entry was written.
	StoredAt time.Time
}
