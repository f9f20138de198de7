package gateway

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (g *Gateway) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(g.withLogging)

	// user data is proxied, never served from the cache: the same path
	// families the activation purge drops
	for _, prefix := range dynamicPrefixes {
		router.Handle(prefix, http.HandlerFunc(g.proxyAPI))
		router.Handle(prefix+"/*", http.HandlerFunc(g.proxyAPI))
	}

	// everything else goes through the offline-capable paths
	router.NotFound(g.serve)

	return router
}

// serve dispatches non-API requests: page navigations resolve to the app
// shell, anything else is treated as a static asset.
func (g *Gateway) serve(w http.ResponseWriter, r *http.Request) {
	if isNavigation(r) {
		g.serveShell(w, r)
		return
	}
	g.serveStatic(w, r)
}

// isNavigation reports whether the request is a page load rather than an
// asset or data fetch.
func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet &&
		strings.Contains(r.Header.Get("Accept"), "text/html")
}
