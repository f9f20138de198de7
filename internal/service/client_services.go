package service

import (
	"github.com/cloudvault/cloudvault/internal/adapter"
	"github.com/cloudvault/cloudvault/internal/identity"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/store"
	"github.com/cloudvault/cloudvault/models"
)

// ClientServices bundles the client-side services behind one constructor so
// the application wiring stays in a single place.
type ClientServices struct {
	Notes   NoteService
	Session EditingSession
	Sync    *SyncJob
}

// NewClientServices builds the service layer on top of the local storages
// and the remote adapter. Passing a nil notifier falls back to one that only
// logs outcomes.
func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.NoteServerAdapter,
	scoper *identity.Scoper,
	net Connectivity,
	notifier Notifier,
	log *logger.Logger,
) *ClientServices {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}

	notes := NewClientNoteService(storages, serverAdapter, scoper, net, notifier, log)

	return &ClientServices{
		Notes:   notes,
		Session: NewEditingSession(notes, log),
		Sync:    NewSyncJob(notes, log),
	}
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a Notifier that records reconciliation outcomes in
// the log and nothing else. It stands in wherever no UI is attached.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (n *logNotifier) NoteSynced(note models.Note) {
	n.logger.Info().
		Str("func", "logNotifier.NoteSynced").
		Str("note_id", note.ID).
		Str("title", note.Title).
		Msg("pending note pushed to remote store")
}

func (n *logNotifier) SyncFailed(noteID string, err error) {
	n.logger.Warn().Err(err).
		Str("func", "logNotifier.SyncFailed").
		Str("note_id", noteID).
		Msg("pending note failed to push")
}
