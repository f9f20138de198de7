package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/cloudvault/cloudvault/internal/logger"
	"github.com/cloudvault/cloudvault/models"
)

const responseCacheTable = "response_cache"

const cacheUpsertSuffix = `ON CONFLICT(cache_version, path) DO UPDATE SET
		status       = excluded.status,
		content_type = excluded.content_type,
		body         = excluded.body,
		stored_at    = excluded.stored_at`

type responseCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewResponseCacheRepository(db *DB, logger *logger.Logger) ResponseCacheRepository {
	return &responseCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *responseCacheRepository) Get(ctx context.Context, version, path string) (models.CachedResponse, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("cache_version", "path", "status", "content_type", "body", "stored_at").
		From(responseCacheTable).
		Where(sq.Eq{"cache_version": version, "path": path}).
		ToSql()
	if err != nil {
		return models.CachedResponse{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.CachedResponse
	row := r.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&entry.Version,
		&entry.Path,
		&entry.Status,
		&entry.ContentType,
		&entry.Body,
		&entry.StoredAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.CachedResponse{}, fmt.Errorf("%w: %s %s", ErrCachedResponseNotFound, version, path)
		}
		log.Err(scanErr).
			Str("func", "responseCacheRepository.Get").
			Str("path", path).
			Msg("failed to scan cached response row")
		return models.CachedResponse{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
	}

	return entry, nil
}

func (r *responseCacheRepository) Put(ctx context.Context, entry models.CachedResponse) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(responseCacheTable).
		Columns("cache_version", "path", "status", "content_type", "body", "stored_at").
		Values(entry.Version, entry.Path, entry.Status, entry.ContentType, entry.Body, entry.StoredAt).
		Suffix(cacheUpsertSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "responseCacheRepository.Put").
			Str("path", entry.Path).
			Msg("failed to store cached response")
		return fmt.Errorf("%w: put cached response (path=%s): %w", ErrWriteFailed, entry.Path, err)
	}

	return nil
}

func (r *responseCacheRepository) PurgeOtherVersions(ctx context.Context, current string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(responseCacheTable).
		Where(sq.NotEq{"cache_version": current}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "responseCacheRepository.PurgeOtherVersions").
			Str("current_version", current).
			Msg("failed to purge stale cache versions")
		return fmt.Errorf("%w: purge other cache versions: %w", ErrWriteFailed, err)
	}

	return nil
}

func (r *responseCacheRepository) PurgePathPrefixes(ctx context.Context, version string, prefixes []string) error {
	log := logger.FromContext(ctx)

	if len(prefixes) == 0 {
		return nil
	}

	like := make(sq.Or, 0, len(prefixes))
	for _, prefix := range prefixes {
		like = append(like, sq.Like{"path": prefix + "%"})
	}

	query, args, err := sq.Delete(responseCacheTable).
		Where(sq.And{sq.Eq{"cache_version": version}, like}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "responseCacheRepository.PurgePathPrefixes").
			Str("cache_version", version).
			Msg("failed to purge privacy-sensitive cache entries")
		return fmt.Errorf("%w: purge cache path prefixes: %w", ErrWriteFailed, err)
	}

	return nil
}
