// Package storage is the persistence gateway: whole-file load and save of
// the task collection. It holds no task state between calls.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"stacked/internal/codec"
	"stacked/internal/task"
)

var (
	// ErrLoadCorrupted is returned when any line of the data file fails
	// to decode. The whole load is aborted; there is no partial recovery.
	ErrLoadCorrupted = errors.New("data file corrupted")

	// ErrSaveFailed is returned on any I/O error while writing the file.
	ErrSaveFailed = errors.New("save failed")
)

// Store reads and writes the task collection at a fixed file path.
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates a store bound to the given file path.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full task set. A missing file is the first-run case and
// yields an empty slice, not an error. Blank lines are skipped; any decode
// failure aborts the load with ErrLoadCorrupted.
func (s *Store) Load() ([]task.Task, error) {
	if err := s.ensureDir(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCorrupted, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrLoadCorrupted, err)
	}

	var tasks []task.Task
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := codec.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLoadCorrupted, i+1, err)
		}
		tasks = append(tasks, t)
	}

	s.logger.Debug().Int("count", len(tasks)).Str("path", s.path).Msg("loaded tasks")
	return tasks, nil
}

// Save rewrites the entire file with one record per task, in the given
// order. There are no incremental or append writes.
func (s *Store) Save(tasks []task.Task) error {
	if err := s.ensureDir(); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(codec.Encode(t))
		b.WriteString(lineSeparator)
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("save failed")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.logger.Debug().Int("count", len(tasks)).Str("path", s.path).Msg("saved tasks")
	return nil
}

func (s *Store) ensureDir() error {
	return os.MkdirAll(filepath.Dir(s.path), 0755)
}
