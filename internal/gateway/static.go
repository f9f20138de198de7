package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

// serveShell handles page navigations cache first: a cached shell is served
// without touching the network, so navigation stays instant and works fully
// offline. The upstream copy is fetched and stored only on a miss; deploys
// propagate through the activation purge, not through per-request refetches.
func (g *Gateway) serveShell(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if body, contentType, ok := g.cached(ctx, shellPath); ok {
		log.Debug().Str("path", r.URL.Path).Msg("serving cached app shell")
		writeBody(w, http.StatusOK, contentType, body)
		return
	}

	resp, err := g.client.R().SetContext(ctx).Get(g.upstream + shellPath)
	if err != nil || resp.StatusCode() >= 300 {
		writeOffline(w)
		return
	}

	body := resp.Body()
	contentType := resp.Header().Get("Content-Type")

	g.store(ctx, shellPath, resp.StatusCode(), contentType, body)
	writeBody(w, resp.StatusCode(), contentType, body)
}

// serveStatic handles asset requests cache first: a hit is served without
// touching the network, a miss is fetched upstream and stored for next time.
func (g *Gateway) serveStatic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Path

	if body, contentType, ok := g.cached(ctx, path); ok {
		writeBody(w, http.StatusOK, contentType, body)
		return
	}

	resp, err := g.client.R().SetContext(ctx).Get(g.upstream + path)
	if err != nil {
		log.Info().Err(err).Str("path", path).Msg("asset unreachable and not cached")
		writeOffline(w)
		return
	}

	body := resp.Body()
	contentType := resp.Header().Get("Content-Type")

	if resp.StatusCode() < 300 {
		g.store(ctx, path, resp.StatusCode(), contentType, body)
	}
	writeBody(w, resp.StatusCode(), contentType, body)
}

// store writes a response into the cache. Failures are logged only: caching
// is opportunistic and must never fail the request being served.
func (g *Gateway) store(ctx context.Context, path string, status int, contentType string, body []byte) {
	entry := models.CachedResponse{
		Version:     g.version,
		Path:        path,
		Status:      status,
		ContentType: contentType,
		Body:        body,
		StoredAt:    time.Now(),
	}

	if err := g.cache.Put(ctx, entry); err != nil {
		g.logger.Warn().Err(err).
			Str("func", "Gateway.store").
			Str("path", path).
			Msg("failed to cache response")
	}
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
