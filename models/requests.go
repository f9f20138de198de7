package models

// NotePayload is the request body for remote note creates and updates:
// POST /notes and PUT /notes/{id}. The owner is inferred server-side from
// the bearer credential and never sent.
type NotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Locked  bool   `json:"locked"`
}

// PayloadFor extracts the remote write payload from a note.
func PayloadFor(n Note) NotePayload {
	return NotePayload{Title: n.Title, Content: n.Content, Locked: n.Locked}
}
