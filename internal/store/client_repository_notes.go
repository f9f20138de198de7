// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

const notesTable = "notes"

var noteColumns = []string{
	"id", "owner_id", "title", "content", "locked",
	"updated_at", "pending_sync", "sync_state",
}

const noteUpsertSuffix = `ON CONFLICT(id) DO UPDATE SET
		owner_id     = excluded.owner_id,
		title        = excluded.title,
		content      = excluded.content,
		locked       = excluded.locked,
		updated_at   = excluded.updated_at,
		pending_sync = excluded.pending_sync,
		sync_state   = excluded.sync_state`

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) PutMany(ctx context.Context, notes []models.Note) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.PutMany").
			Msg("failed to begin transaction for note batch")
		return fmt.Errorf("%w: begin transaction: %w", ErrWriteFailed, err)
	}
	defer tx.Rollback()

	for _, note := range notes {
		query, args, buildErr := upsertNoteQuery(note).ToSql()
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "noteRepository.PutMany").
				Str("note_id", note.ID).
				Msg("failed to build upsert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "noteRepository.PutMany").
				Str("note_id", note.ID).
				Msg("failed to execute upsert, aborting batch")
			return fmt.Errorf("%w: upsert note (id=%s): %w", ErrWriteFailed, note.ID, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.PutMany").
			Msg("failed to commit note batch")
		return fmt.Errorf("%w: commit: %w", ErrWriteFailed, err)
	}

	return nil
}

func (r *noteRepository) PutOne(ctx context.Context, note models.Note) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := upsertNoteQuery(note).ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.PutOne").
			Str("note_id", note.ID).
			Msg("failed to build upsert query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.PutOne").
			Str("note_id", note.ID).
			Msg("failed to execute upsert for note")
		return "", fmt.Errorf("%w: upsert note (id=%s): %w", ErrWriteFailed, note.ID, err)
	}

	return note.ID, nil
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	return r.queryNotes(ctx, "noteRepository.GetAll",
		sq.Select(noteColumns...).From(notesTable))
}

func (r *noteRepository) GetPending(ctx context.Context, ownerID string) ([]models.Note, error) {
	return r.queryNotes(ctx, "noteRepository.GetPending",
		sq.Select(noteColumns...).
			From(notesTable).
			Where(sq.Eq{"pending_sync": true, "owner_id": ownerID}).
			OrderBy("updated_at ASC"))
}

func (r *noteRepository) DeleteOne(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(notesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteOne").
			Str("note_id", id).
			Msg("failed to execute delete for note")
		return fmt.Errorf("%w: delete note (id=%s): %w", ErrWriteFailed, id, err)
	}

	return nil
}

func (r *noteRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, _, err := sq.Delete(notesTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query); err != nil {
		log.Err(err).
			Str("func", "noteRepository.Clear").
			Msg("failed to clear note cache")
		return fmt.Errorf("%w: clear notes: %w", ErrWriteFailed, err)
	}

	return nil
}

func (r *noteRepository) queryNotes(ctx context.Context, caller string, builder sq.SelectBuilder) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute query for notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var notes []models.Note

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func upsertNoteQuery(note models.Note) sq.InsertBuilder {
	return sq.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.OwnerID,
			note.Title,
			note.Content,
			note.Locked,
			note.UpdatedAt,
			note.PendingSync,
			string(note.SyncState),
		).
		Suffix(noteUpsertSuffix)
}

func scanNote(rows *sql.Rows) (models.Note, error) {
	var note models.Note
	var state string

	err := rows.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Locked,
		&note.UpdatedAt,
		&note.PendingSync,
		&state,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.SyncState = models.SyncState(state)
	return note, nil
}
