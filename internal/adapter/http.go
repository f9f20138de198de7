package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/cloudvault/cloudvault/internal/config"
	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/utils"
	"github.com/cloudvault/cloudvault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [NoteServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NoteServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [NoteServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListNotes implements [NoteServerAdapter]. It GETs /notes and decodes the
// response into the owned note collection. Every returned note is tagged
// [models.StateSynced]; the remote store is authoritative by definition.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/notes")
	if err != nil {
		return nil, fmt.Errorf("%w: list notes: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	for i := range notes {
		notes[i].SyncState = models.StateSynced
		notes[i].PendingSync = false
	}

	return notes, nil
}

// CreateNote implements [NoteServerAdapter]. It POSTs the payload to /notes
// and returns the created note carrying the server-issued id.
func (h *httpServerAdapter) CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error) {
	var created models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post("/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: create note: %w", ErrNetworkUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	created.SyncState = models.StateSynced
	created.PendingSync = false
	return created, nil
}

// UpdateNote implements [NoteServerAdapter]. It PUTs the payload to
// /notes/{id} and returns the updated note echoing the id.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, payload models.NotePayload) (models.Note, error) {
	var updated models.Note

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&updated).
		Put("/notes/" + url.PathEscape(id))
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: update note %s: %w", ErrNetworkUnavailable, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	updated.SyncState = models.StateSynced
	updated.PendingSync = false
	return updated, nil
}

// DeleteNote implements [NoteServerAdapter]. It sends DELETE /notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/notes/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("%w: delete note %s: %w", ErrNetworkUnavailable, id, err)
	}

	return mapHTTPError(resp)
}

// Ping implements [NoteServerAdapter]. Any HTTP response counts as
// reachable; only a transport-level failure reports the network as down.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	_, err := h.client.R().SetContext(ctx).Head("/")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrNetworkUnavailable, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
