package adapter

import "errors"

var (
	// ErrNetworkUnavailable indicates the remote store could not be reached
	// at all: the transport failed, or the gateway synthesized an offline
	// response. Callers switch to the offline save path instead of surfacing
	// an error dialog.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrUnauthorized indicates the bearer credential is missing or invalid.
	// Callers must treat this as "cannot sync", never as "no notes".
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRemoteRejected indicates the server responded but not successfully.
	// Surfaced to the user as a visible failure.
	ErrRemoteRejected = errors.New("remote store rejected request")
)
