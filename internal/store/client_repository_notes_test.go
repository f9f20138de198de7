package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestNoteRepo(t *testing.T, db *sql.DB) NoteRepository {
	t.Helper()
	return NewNoteRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testNoteColumns = []string{
	"id", "owner_id", "title", "content", "locked",
	"updated_at", "pending_sync", "sync_state",
}

func sampleNote(id, owner string) models.Note {
	return models.Note{
		ID:        id,
		OwnerID:   owner,
		Title:     "groceries",
		Content:   "<p>milk</p>",
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		SyncState: models.StateSynced,
	}
}

func TestNoteRepository_PutOne_Upsert(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	note := sampleNote("abc123", "user-a")

	mock.ExpectExec("INSERT INTO notes .* ON CONFLICT\\(id\\) DO UPDATE SET").
		WithArgs(note.ID, note.OwnerID, note.Title, note.Content, note.Locked,
			note.UpdatedAt, note.PendingSync, string(note.SyncState)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	key, err := repo.PutOne(testContext(), note)
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PutOne_SecondWriteWins(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	first := sampleNote("abc123", "user-a")
	second := first
	second.Content = "<p>milk and eggs</p>"

	// both writes hit the same upsert statement: one surviving record per id
	mock.ExpectExec("INSERT INTO notes .* ON CONFLICT").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO notes .* ON CONFLICT").
		WithArgs(second.ID, second.OwnerID, second.Title, second.Content, second.Locked,
			second.UpdatedAt, second.PendingSync, string(second.SyncState)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.PutOne(testContext(), first)
	require.NoError(t, err)
	_, err = repo.PutOne(testContext(), second)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PutMany_Atomic(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	notes := []models.Note{sampleNote("a", "user-a"), sampleNote("b", "user-a")}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO notes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO notes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.PutMany(testContext(), notes))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_PutMany_AbortsWholeBatch(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	notes := []models.Note{sampleNote("a", "user-a"), sampleNote("b", "user-a")}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO notes").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.PutMany(testContext(), notes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	updated := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(testNoteColumns).
		AddRow("abc123", "user-a", "groceries", "<p>milk</p>", false, updated, false, "synced").
		AddRow("local-1-aaaa", "user-b", "draft", "", false, updated, true, "pending_create")

	mock.ExpectQuery("SELECT .* FROM notes").WillReturnRows(rows)

	notes, err := repo.GetAll(testContext())
	require.NoError(t, err)
	require.Len(t, notes, 2)

	assert.Equal(t, "abc123", notes[0].ID)
	assert.Equal(t, models.StateSynced, notes[0].SyncState)
	assert.Equal(t, "user-b", notes[1].OwnerID)
	assert.True(t, notes[1].PendingSync)
	assert.Equal(t, models.StatePendingCreate, notes[1].SyncState)
}

func TestNoteRepository_GetPending_FiltersByOwner(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	updated := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(testNoteColumns).
		AddRow("local-2-bbbb", "user-a", "offline note", "<p>hi</p>", false, updated, true, "pending_create")

	mock.ExpectQuery("SELECT .* FROM notes WHERE .*pending_sync.*").
		WithArgs("user-a", true).
		WillReturnRows(rows)

	notes, err := repo.GetPending(testContext(), "user-a")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "local-2-bbbb", notes[0].ID)
}

func TestNoteRepository_GetAll_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectQuery("SELECT .* FROM notes").WillReturnError(errors.New("database is locked"))

	_, err := repo.GetAll(testContext())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_DeleteOne(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec("DELETE FROM notes WHERE").
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteOne(testContext(), "abc123"))
}

func TestNoteRepository_DeleteOne_AbsentIsNotAnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec("DELETE FROM notes WHERE").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteOne(testContext(), "missing"))
}

func TestNoteRepository_Clear(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestNoteRepo(t, db)

	mock.ExpectExec("DELETE FROM notes").WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.Clear(testContext()))
	require.NoError(t, mock.ExpectationsWereMet())
}
