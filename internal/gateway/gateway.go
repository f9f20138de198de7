// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

// Package gateway is the local HTTP front of the application: every request
// the UI makes passes through it. It serves the app shell and static assets
// from a versioned response cache so the UI keeps working with no
// connectivity, proxies API calls straight to the remote store, and
// synthesizes a well-known offline reply when the remote cannot be reached.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/internal/store"
	"github.com/cloudvault/cloudvault/internal/utils"
)

// shellPath is the cache key under which the app shell is stored. Every
// navigation request resolves to it.
const shellPath = "/index.html"

// dynamicPrefixes are the path families that must never survive a cache
// version bump: they hold user data, not static assets.
var dynamicPrefixes = []string{"/notes", "/files", "/download", "/api"}

type Gateway struct {
	cache    store.ResponseCacheRepository
	client   *utils.HTTPClient
	upstream string
	version  string

	logger *logger.Logger
}

func NewGateway(cache store.ResponseCacheRepository, client *utils.HTTPClient, upstream, cacheVersion string, log *logger.Logger) *Gateway {
	log.Info().
		Str("upstream", upstream).
		Str("cache_version", cacheVersion).
		Msg("gateway created")

	return &Gateway{
		cache:    cache,
		client:   client,
		upstream: upstream,
		version:  cacheVersion,
		logger:   log,
	}
}

// Activate prepares the cache for this gateway's version: entries written by
// any other version are dropped, and the dynamic path families of the current
// version are dropped too so stale user data never outlives a deploy. Must be
// called before the gateway starts serving.
func (g *Gateway) Activate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := g.cache.PurgeOtherVersions(ctx, g.version); err != nil {
		return fmt.Errorf("purge foreign cache versions: %w", err)
	}

	if err := g.cache.PurgePathPrefixes(ctx, g.version, dynamicPrefixes); err != nil {
		return fmt.Errorf("purge dynamic cache entries: %w", err)
	}

	log.Info().
		Str("func", "Gateway.Activate").
		Str("cache_version", g.version).
		Strs("purged_prefixes", dynamicPrefixes).
		Msg("response cache activated")

	return nil
}

// cached narrows cache read errors: a miss is expected and reported as
// ok=false, anything else is a real storage failure.
func (g *Gateway) cached(ctx context.Context, path string) (body []byte, contentType string, ok bool) {
	entry, err := g.cache.Get(ctx, g.version, path)
	if err != nil {
		if !errors.Is(err, store.ErrCachedResponseNotFound) {
			g.logger.Warn().Err(err).
				Str("func", "Gateway.cached").
				Str("path", path).
				Msg("response cache read failed")
		}
		return nil, "", false
	}
	return entry.Body, entry.ContentType, true
}
