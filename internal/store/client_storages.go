package store

import (
	"context"
	"fmt"

	"github.com/cloudvault/cloudvault/internal/config"
	"github.com/cloudvault/cloudvault/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service and gateway layers.
type ClientStorages struct {
	// NoteRepository is the SQLite-backed local note cache.
	NoteRepository NoteRepository

	// ResponseCacheRepository is the gateway's side cache of HTTP responses.
	ResponseCacheRepository ResponseCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh note
//     and response-cache repositories.
//
// The whole sequence is idempotent: re-opening an existing store is a no-op
// beyond the connection itself.
//
// When the on-disk database cannot be opened or migrated, the client keeps
// running against an in-memory SQLite database instead: notes remain usable
// for the session but nothing survives a restart. Returns a wrapped
// [ErrStoreUnavailable] only if the in-memory fallback fails too.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := openAndMigrate(cfg.DB, logger)
	if err != nil && cfg.DB.DSN != MemoryDSN {
		logger.Warn().Err(err).
			Str("dsn", cfg.DB.DSN).
			Msg("persistent store unavailable, degrading to in-memory database: local changes will not survive a restart")

		db, err = openAndMigrate(config.ClientDB{DSN: MemoryDSN}, logger)
	}
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		NoteRepository:          NewNoteRepository(db, logger),
		ResponseCacheRepository: NewResponseCacheRepository(db, logger),
	}, nil
}

func openAndMigrate(cfg config.ClientDB, logger *logger.Logger) (*DB, error) {
	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStoreUnavailable, err)
	}

	return db, nil
}
