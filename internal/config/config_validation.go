// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; validation rules will be added as the
// application matures.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	// ":memory:" is a valid DSN: the store falls back to it when the
	// persistent database cannot be opened
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ProbeInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.CacheVersion == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
