package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

// proxyAPI forwards an API request to the remote store verbatim. API
// responses carry per-user data and are never written to the response cache;
// when the remote is unreachable the gateway answers with the offline
// marker so the UI can flip into its offline mode instead of surfacing a
// transport error.
func (g *Gateway) proxyAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("failed to read request body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := g.client.R().SetContext(ctx)
	if len(body) > 0 {
		req.SetBody(body)
	}
	for _, header := range []string{"Authorization", "Content-Type", "Accept"} {
		if v := r.Header.Get(header); v != "" {
			req.SetHeader(header, v)
		}
	}

	target := g.upstream + r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	resp, err := req.Execute(r.Method, target)
	if err != nil {
		log.Info().Err(err).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("remote store unreachable, synthesizing offline response")
		writeOffline(w)
		return
	}

	if contentType := resp.Header().Get("Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(resp.StatusCode())
	_, _ = w.Write(resp.Body())
}

// writeOffline answers with the well-known offline reply. The body shape is
// part of the contract with the UI and with the adapter's error mapper.
func writeOffline(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(models.OfflineResponse{Error: models.OfflineMarker})
}
