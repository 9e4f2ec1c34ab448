package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// FileStore keeps the saved list in a JSON file.
type FileStore struct {
	path string
	log  zerolog.Logger
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log.With().Str("store", "file").Logger()}
}

func (s *FileStore) Load(_ context.Context) []trend.Trend {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("reading saved trends")
		}
		return []trend.Trend{}
	}
	return decode(data, s.log)
}

// Save writes to a temporary file and renames it over the target so a
// reader never sees a partial list.
func (s *FileStore) Save(_ context.Context, trends []trend.Trend) error {
	data, err := encode(trends)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".saved-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing saved trends: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing saved trends: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
