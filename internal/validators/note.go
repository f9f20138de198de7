package validators

import (
	"context"
	"strings"

	"github.com/cloudvault/cloudvault/models"
)

// noteValidator enforces the structural rules of a [models.Note] before it
// reaches the store or the remote adapter.
type noteValidator struct{}

func NewNoteValidator() Validator {
	return &noteValidator{}
}

// Validate checks the given note. With no field names all rules run; with
// field names only the named rules run. Unknown field names are an error so
// call sites fail loudly instead of silently validating nothing.
func (v *noteValidator) Validate(_ context.Context, input any, fields ...string) error {
	var note models.Note
	switch in := input.(type) {
	case models.Note:
		note = in
	case *models.Note:
		if in == nil {
			return ErrUnsupportedType
		}
		note = *in
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{"Title", "SyncState"}
	}

	for _, field := range fields {
		var err error
		switch field {
		case "Title":
			err = v.validateTitle(note)
		case "ID":
			err = v.validateID(note)
		case "SyncState":
			err = v.validateSyncState(note)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *noteValidator) validateTitle(note models.Note) error {
	if strings.TrimSpace(note.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func (v *noteValidator) validateID(note models.Note) error {
	if strings.TrimSpace(note.ID) == "" {
		return ErrEmptyID
	}
	if note.SyncState == models.StatePendingCreate && !strings.HasPrefix(note.ID, models.LocalIDPrefix) {
		return ErrInvalidLocalID
	}
	return nil
}

func (v *noteValidator) validateSyncState(note models.Note) error {
	switch note.SyncState {
	// the zero value is allowed: notes fresh from the editor are untagged
	// until a save path decides their lifecycle position
	case "", models.StateSynced, models.StatePendingCreate, models.StatePendingUpdate:
	default:
		return ErrInvalidSyncState
	}

	if note.PendingSync != note.Pending() && note.SyncState != "" {
		return ErrPendingFlagDrift
	}
	return nil
}
