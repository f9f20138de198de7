// Package identity derives the current user's identity from the session
// credential and scopes collections of cached notes to that identity.
//
// Scoping is advisory: the local store is not partitioned per user at the
// storage-engine level, so on a shared device another identity's records may
// be physically present. The scoper guarantees they are never returned for
// display. Records whose owner cannot be resolved are excluded as well —
// fail closed, never shown.
package identity

import (
	"fmt"
	"strings"

	"github.com/cloudvault/cloudvault/internal/utils"
	"github.com/cloudvault/cloudvault/models"
)

// Scoper filters note collections down to the currently authenticated
// identity.
type Scoper struct {
	subject string
}

// NewScoper extracts a stable subject id from the session credential and
// returns a scoper bound to it. Returns an error if the credential carries
// no resolvable subject.
func NewScoper(credential string) (*Scoper, error) {
	subject, err := utils.SubjectFromJWT(credential)
	if err != nil {
		return nil, fmt.Errorf("resolve identity from credential: %w", err)
	}

	return &Scoper{subject: subject}, nil
}

// Subject returns the identity the scoper is bound to.
func (s *Scoper) Subject() string {
	return s.subject
}

// FilterOwned returns only the notes whose owner matches the scoper's
// subject (string-equal after normalization). Notes with an empty owner are
// excluded.
func (s *Scoper) FilterOwned(notes []models.Note) []models.Note {
	owned := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		owner := strings.TrimSpace(note.OwnerID)
		if owner == "" || owner != s.subject {
			continue
		}
		owned = append(owned, note)
	}
	return owned
}

// Stamp sets the scoper's subject as the owner of the given note. Used when
// persisting records fetched from the remote store, which omits the owner
// field for the authenticated caller.
func (s *Scoper) Stamp(note models.Note) models.Note {
	note.OwnerID = s.subject
	return note
}
