package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyID          = errors.New("note id is required")
	ErrInvalidLocalID   = errors.New("pending create must carry a local id")
	ErrInvalidSyncState = errors.New("invalid sync state")
	ErrPendingFlagDrift = errors.New("pending flag disagrees with sync state")
)
