// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// cloudvault client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the side-cache version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistent store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the remote note store transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Gateway holds the listen settings of the local request-intercepting
	// gateway.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// CacheVersion names the current side-cache generation (for example
	// "cloudvault-v4"). Entries stored under any other generation are
	// purged when the gateway activates.
	// Env: APP_CACHE_VERSION
	CacheVersion string `env:"CACHE_VERSION"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite connection string (a file path).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the remote note store transport.
type Adapter struct {
	// HTTPAddress is the base address of the remote note store.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the latency of every outbound remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer credential for the remote note store. Carried via
	// environment only, never via flags, so it stays out of process lists.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Gateway holds listen settings for the local intercepting gateway.
type Gateway struct {
	// Address is the host:port the gateway listens on.
	// Env: GATEWAY_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers contains background worker settings.
type Workers struct {
	// ProbeInterval defines how often the connectivity watcher probes the
	// remote store.
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and an optional JSON file, in that priority
// order (later sources override earlier non-zero fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
