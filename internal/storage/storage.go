// Package storage persists the user's saved trends.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/config"
	"github.com/ziadkadry99/ytgap/internal/trend"
)

// Key is the fixed key the saved list is stored under.
const Key = "ytgap_savedTrends"

// Store loads and saves the saved-trend list.
type Store interface {
	// Load returns the stored list. A missing or unreadable value yields an
	// empty list; Load never fails.
	Load(ctx context.Context) []trend.Trend
	// Save replaces the stored list.
	Save(ctx context.Context, trends []trend.Trend) error
	// Clear removes the stored list so the next Load is empty.
	Clear(ctx context.Context) error
	Close() error
}

// Open builds the store selected by cfg.
func Open(cfg config.StorageConfig, log zerolog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StorageSQLite, "":
		return OpenSQLite(cfg.Path, log)
	case config.StorageRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisDB, log), nil
	case config.StorageFile:
		return NewFileStore(cfg.Path, log), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// SaveBestEffort saves trends and logs a failure instead of returning it.
// It reports whether the write succeeded.
func SaveBestEffort(ctx context.Context, s Store, trends []trend.Trend, log zerolog.Logger) bool {
	if err := s.Save(ctx, trends); err != nil {
		log.Warn().Err(err).Int("count", len(trends)).Msg("could not persist saved trends")
		return false
	}
	return true
}

func encode(trends []trend.Trend) ([]byte, error) {
	if trends == nil {
		trends = []trend.Trend{}
	}
	data, err := json.Marshal(trends)
	if err != nil {
		return nil, fmt.Errorf("encoding saved trends: %w", err)
	}
	return data, nil
}

// decode parses a stored value. Anything that is not a JSON array of trends
// yields an empty list.
func decode(data []byte, log zerolog.Logger) []trend.Trend {
	var trends []trend.Trend
	if err := json.Unmarshal(data, &trends); err != nil {
		log.Warn().Err(err).Msg("discarding unreadable saved trends")
		return []trend.Trend{}
	}
	if trends == nil {
		return []trend.Trend{}
	}
	return trends
}
