// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

// Package adapter provides transport-layer abstractions for communicating
// with the remote note store.
//
// The primary abstraction is [NoteServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNetworkUnavailable] for transport failures and
// synthesized offline responses, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/cloudvault/cloudvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// NoteServerAdapter defines transport-agnostic communication with the remote
// note store. Implementations are responsible for serialisation, bearer
// credential management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every method honours ctx cancellation and the configured request timeout;
// no remote call runs unbounded.
type NoteServerAdapter interface {
	// SetToken stores the bearer credential that will be attached to all
	// subsequent authenticated requests. An empty value clears the session.
	SetToken(token string)

	// Token returns the bearer credential currently stored in the adapter,
	// or an empty string if none has been set.
	Token() string

	// ListNotes fetches every note owned by the authenticated identity
	// (GET /notes). Returned notes carry [models.StateSynced].
	// Returns [ErrNetworkUnavailable] (wrapped) when the store cannot be
	// reached and [ErrUnauthorized] when the credential is rejected.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote creates a note on the remote store (POST /notes) and
	// returns the authoritative record with the server-issued id.
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// UpdateNote updates the note with the given remote id (PUT /notes/{id})
	// and returns the authoritative record echoing the id.
	UpdateNote(ctx context.Context, id string, payload models.NotePayload) (models.Note, error)

	// DeleteNote deletes the note with the given remote id (DELETE /notes/{id}).
	DeleteNote(ctx context.Context, id string) error

	// Ping probes the remote store with a lightweight request. Any HTTP
	// response, including an error status, counts as reachable; only a
	// transport failure returns [ErrNetworkUnavailable].
	Ping(ctx context.Context) error
}
