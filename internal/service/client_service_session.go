// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

// untitledTitle is the title autosave falls back to when the user typed
// content but never named the note.
const untitledTitle = "Untitled Note"

type editingSession struct {
	notes  NoteService
	logger *logger.Logger

	mu      sync.Mutex
	editing bool
	draft   models.Note
	subs    []func(editing bool)
}

func NewEditingSession(notes NoteService, log *logger.Logger) EditingSession {
	return &editingSession{
		notes:  notes,
		logger: log,
	}
}

// EnterEditing implements [EditingSession].
func (s *editingSession) EnterEditing(note *models.Note) {
	s.mu.Lock()
	if note != nil {
		s.draft = *note
	} else {
		s.draft = models.Note{}
	}
	changed := !s.editing
	s.editing = true
	subs := s.observers()
	s.mu.Unlock()

	if changed {
		notifyAll(subs, true)
	}
}

// SetDraft implements [EditingSession].
func (s *editingSession) SetDraft(note models.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing {
		return
	}
	s.draft = note
}

// ExitEditing implements [EditingSession].
func (s *editingSession) ExitEditing(ctx context.Context) {
	s.mu.Lock()
	if !s.editing {
		s.mu.Unlock()
		return
	}
	draft := s.draft
	s.editing = false
	s.draft = models.Note{}
	subs := s.observers()
	s.mu.Unlock()

	// the autosave attempt happens before observers learn the session is
	// back to browsing, so anything reacting to the transition already sees
	// the saved note
	s.autosave(ctx, draft)

	notifyAll(subs, false)
}

func (s *editingSession) autosave(ctx context.Context, draft models.Note) {
	if strings.TrimSpace(draft.Title) == "" && strings.TrimSpace(draft.Content) == "" {
		return
	}
	if strings.TrimSpace(draft.Title) == "" {
		draft.Title = untitledTitle
	}

	if _, err := s.notes.SaveNote(ctx, draft); err != nil {
		// leaving the editor must always succeed, the draft is not worth
		// trapping the user for
		s.logger.Warn().Err(err).
			Str("func", "editingSession.ExitEditing").
			Str("note_id", draft.ID).
			Msg("autosave on exit failed, discarding draft")
	}
}

// Editing implements [EditingSession].
func (s *editingSession) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// Subscribe implements [EditingSession].
func (s *editingSession) Subscribe(fn func(editing bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// observers returns a snapshot of the subscriber list. Callers must hold mu.
func (s *editingSession) observers() []func(bool) {
	subs := make([]func(bool), len(s.subs))
	copy(subs, s.subs)
	return subs
}

func notifyAll(subs []func(bool), editing bool) {
	for _, fn := range subs {
		fn(editing)
	}
}
