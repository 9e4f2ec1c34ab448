package storage

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/db"
	"github.com/ziadkadry99/ytgap/internal/trend"
)

// SQLiteStore keeps the saved list in the kv_store table.
type SQLiteStore struct {
	db  *db.DB
	log zerolog.Logger
}

// NewSQLiteStore wraps an open database.
func NewSQLiteStore(d *db.DB, log zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{db: d, log: log.With().Str("store", "sqlite").Logger()}
}

// OpenSQLite opens the database file at path and wraps it.
func OpenSQLite(path string, log zerolog.Logger) (*SQLiteStore, error) {
	d, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(d, log), nil
}

func (s *SQLiteStore) Load(ctx context.Context) []trend.Trend {
	value, err := s.db.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.log.Warn().Err(err).Msg("reading saved trends")
		}
		return []trend.Trend{}
	}
	return decode([]byte(value), s.log)
}

func (s *SQLiteStore) Save(ctx context.Context, trends []trend.Trend) error {
	data, err := encode(trends)
	if err != nil {
		return err
	}
	return s.db.Put(ctx, Key, string(data))
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.db.Delete(ctx, Key)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
