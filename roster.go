package tracker

import (
	"fmt"

	"github.com/KaminaDuck/hd2-tracker/internal/roster/files"
	"github.com/KaminaDuck/hd2-tracker/internal/roster/memory"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// MemoryOption configures an in-memory roster.
type MemoryOption func(*memoryConfig) error

type memoryConfig struct {
	Seed []*stats.Record
}

// WithSeed preloads records into the roster.
func WithSeed(records ...*stats.Record) MemoryOption {
	return func(cfg *memoryConfig) error {
		cfg.Seed = append(cfg.Seed, records...)
		return nil
	}
}

// NewMemoryRoster creates an in-memory roster with no persistence
func NewMemoryRoster(opts ...MemoryOption) (roster.Roster, error) {
	cfg := &memoryConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying memory option: %w", err)
		}
	}

	r := memory.NewRoster()
	for _, rec := range cfg.Seed {
		if err := r.SetPlayer(rec); err != nil {
			return nil, fmt.Errorf("seeding roster: %w", err)
		}
	}

	return r, nil
}

// FilesOption configures a file-backed roster.
type FilesOption func(*filesConfig) error

type filesConfig struct {
	AutoLoad bool
}

// WithAutoLoad controls whether existing records are loaded at
// construction. Defaults to true.
func WithAutoLoad(enabled bool) FilesOption {
	return func(cfg *filesConfig) error {
		cfg.AutoLoad = enabled
		return nil
	}
}

// NewFilesRoster creates a file-backed roster from a directory, with
// one YAML file per player
func NewFilesRoster(path string, opts ...FilesOption) (roster.Roster, error) {
	if path == "" {
		return nil, fmt.Errorf("path is required for files roster")
	}

	cfg := &filesConfig{
		AutoLoad: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying files option: %w", err)
		}
	}

	r := files.NewRoster(path)

	if cfg.AutoLoad {
		if err := r.Load(); err != nil {
			return nil, fmt.Errorf("loading roster from %s: %w", path, err)
		}
	}

	return r, nil
}
