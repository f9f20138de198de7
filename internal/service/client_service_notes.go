// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cloudvault/cloudvault/internal/adapter"
	"github.com/cloudvault/cloudvault/internal/identity"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/store"
	"github.com/cloudvault/cloudvault/internal/validators"
	"github.com/cloudvault/cloudvault/models"
)

type clientNoteService struct {
	notesRepo store.NoteRepository
	adapter   adapter.NoteServerAdapter
	scoper    *identity.Scoper
	net       Connectivity
	notifier  Notifier
	validator validators.Validator
	logger    *logger.Logger

	listMu sync.RWMutex
	list   []models.Note

	// syncMu serialises reconciliation passes: one in-flight remote write
	// at a time, per-note outcomes independent and attributable.
	syncMu sync.Mutex
}

func NewClientNoteService(
	storages *store.ClientStorages,
	serverAdapter adapter.NoteServerAdapter,
	scoper *identity.Scoper,
	net Connectivity,
	notifier Notifier,
	log *logger.Logger,
) NoteService {
	return &clientNoteService{
		notesRepo: storages.NoteRepository,
		adapter:   serverAdapter,
		scoper:    scoper,
		net:       net,
		notifier:  notifier,
		validator: validators.NewNoteValidator(),
		logger:    log,
	}
}

// LoadNotes implements [NoteService]. The local snapshot is displayed first
// so the screen is useful fully offline; the remote fetch then replaces it
// when it succeeds. Local read errors and remote failures are swallowed
// here: the load path optimizes for always showing something.
func (s *clientNoteService) LoadNotes(ctx context.Context) ([]models.Note, error) {
	local, err := s.notesRepo.GetAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientNoteService.LoadNotes").
			Msg("failed to read local notes, starting from empty snapshot")
		local = nil
	}

	s.replaceList(s.scoper.FilterOwned(local))

	remote, err := s.adapter.ListNotes(ctx)
	if err != nil {
		// offline or rejected credential: the local snapshot stays the truth
		s.logger.Info().Err(err).
			Str("func", "clientNoteService.LoadNotes").
			Msg("remote fetch failed, serving local snapshot")
		return s.Notes(), nil
	}

	// the remote result is authoritative: normalize the lifecycle tags here
	// instead of trusting the transport to have set them
	for i := range remote {
		remote[i] = s.scoper.Stamp(remote[i])
		remote[i].SyncState = models.StateSynced
		remote[i].PendingSync = false
	}
	scoped := s.scoper.FilterOwned(remote)

	if err = s.notesRepo.PutMany(ctx, scoped); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientNoteService.LoadNotes").
			Msg("failed to overwrite local cache with remote notes")
	}
	s.replaceList(scoped)

	if s.net.Online() {
		if syncErr := s.SyncPending(ctx); syncErr != nil && !errors.Is(syncErr, ErrSyncInProgress) {
			s.logger.Warn().Err(syncErr).
				Str("func", "clientNoteService.LoadNotes").
				Msg("reconciliation after load finished with failures")
		}
	}

	return s.Notes(), nil
}

// SaveNote implements [NoteService].
func (s *clientNoteService) SaveNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note, "Title", "SyncState"); err != nil {
		if errors.Is(err, validators.ErrEmptyTitle) {
			return models.Note{}, ErrEmptyTitle
		}
		return models.Note{}, err
	}

	if !s.net.Online() {
		return s.saveOffline(ctx, note)
	}

	saved, err := s.pushNote(ctx, note)
	if err != nil {
		if errors.Is(err, adapter.ErrNetworkUnavailable) {
			// the transport dropped between the connectivity probe and the
			// call: fall back to the offline path instead of an error dialog
			return s.saveOffline(ctx, note)
		}
		return models.Note{}, err
	}

	saved = s.scoper.Stamp(saved)

	if _, err = s.notesRepo.PutOne(ctx, saved); err != nil {
		return models.Note{}, err
	}

	if note.ID != "" && note.ID != saved.ID {
		// offline-created note pushed while online: drop the local placeholder
		if delErr := s.notesRepo.DeleteOne(ctx, note.ID); delErr != nil {
			s.logger.Warn().Err(delErr).
				Str("func", "clientNoteService.SaveNote").
				Str("note_id", note.ID).
				Msg("failed to remove local placeholder after remote create")
		}
	}

	s.upsertList(note.ID, saved)
	return saved, nil
}

func (s *clientNoteService) saveOffline(ctx context.Context, note models.Note) (models.Note, error) {
	switch {
	case note.ID == "":
		// brand new note: synthesize a local id, owe a create
		note.ID = models.NewLocalNoteID()
		note.SyncState = models.StatePendingCreate
	case note.SyncState == models.StatePendingCreate:
		// still never pushed: keep the local id and the owed create
	default:
		// remote-backed note edited offline: keep the remote id, owe an update
		note.SyncState = models.StatePendingUpdate
	}

	note.PendingSync = true
	note.UpdatedAt = time.Now()
	note = s.scoper.Stamp(note)

	if _, err := s.notesRepo.PutOne(ctx, note); err != nil {
		return models.Note{}, err
	}

	s.upsertList(note.ID, note)
	return note, nil
}

// DeleteNote implements [NoteService]. The remote delete goes first and must
// succeed; there is no offline-delete queue.
func (s *clientNoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.adapter.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("remote delete: %w", err)
	}

	if err := s.notesRepo.DeleteOne(ctx, id); err != nil {
		return err
	}

	s.removeFromList(id)
	return nil
}

// SyncPending implements [NoteService]. Pending notes are pushed strictly
// sequentially; a failed push leaves its note pending and does not block the
// rest of the batch.
func (s *clientNoteService) SyncPending(ctx context.Context) error {
	if !s.syncMu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.syncMu.Unlock()

	if !s.net.Online() {
		return nil
	}

	pending, err := s.notesRepo.GetPending(ctx, s.scoper.Subject())
	if err != nil {
		return fmt.Errorf("read pending notes: %w", err)
	}

	var failed int
	for _, note := range pending {
		if err := s.pushPending(ctx, note); err != nil {
			failed++
			s.logger.Warn().Err(err).
				Str("func", "clientNoteService.SyncPending").
				Str("note_id", note.ID).
				Msg("failed to push pending note, leaving it pending")
			s.notifier.SyncFailed(note.ID, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSyncItemFailed, failed, len(pending))
	}
	return nil
}

func (s *clientNoteService) pushPending(ctx context.Context, note models.Note) error {
	saved, err := s.pushNote(ctx, note)
	if err != nil {
		return err
	}

	saved = s.scoper.Stamp(saved)

	// replace the pending record with the authoritative one: delete the old
	// key first so a local-id placeholder never survives next to its remote
	// counterpart
	if note.ID != saved.ID {
		if err = s.notesRepo.DeleteOne(ctx, note.ID); err != nil {
			return err
		}
	}
	if _, err = s.notesRepo.PutOne(ctx, saved); err != nil {
		return err
	}

	s.upsertList(note.ID, saved)
	s.notifier.NoteSynced(saved)
	return nil
}

// pushNote issues the remote write a note owes: an update for remote-backed
// notes, a create for ones that only exist locally.
func (s *clientNoteService) pushNote(ctx context.Context, note models.Note) (models.Note, error) {
	payload := models.PayloadFor(note)

	if note.ID != "" && note.SyncState != models.StatePendingCreate {
		return s.adapter.UpdateNote(ctx, note.ID, payload)
	}
	return s.adapter.CreateNote(ctx, payload)
}

// Notes implements [NoteService].
func (s *clientNoteService) Notes() []models.Note {
	s.listMu.RLock()
	defer s.listMu.RUnlock()

	notes := make([]models.Note, len(s.list))
	copy(notes, s.list)

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes
}

// Logout implements [NoteService]. Clearing the store is what prevents the
// next user of a shared device from seeing this user's cached notes; the
// scoper alone only filters.
func (s *clientNoteService) Logout(ctx context.Context) error {
	if err := s.notesRepo.Clear(ctx); err != nil {
		return fmt.Errorf("purge local cache at logout: %w", err)
	}

	s.adapter.SetToken("")
	s.replaceList(nil)
	return nil
}

func (s *clientNoteService) replaceList(notes []models.Note) {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.list = notes
}

func (s *clientNoteService) upsertList(oldID string, note models.Note) {
	s.listMu.Lock()
	defer s.listMu.Unlock()

	kept := s.list[:0]
	for _, n := range s.list {
		if n.ID == oldID || n.ID == note.ID {
			continue
		}
		kept = append(kept, n)
	}
	s.list = append(kept, note)
}

func (s *clientNoteService) removeFromList(id string) {
	s.listMu.Lock()
	defer s.listMu.Unlock()

	kept := s.list[:0]
	for _, n := range s.list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.list = kept
}
