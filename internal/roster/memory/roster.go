// Package memory provides an in-memory roster implementation.
package memory

import (
	"github.com/KaminaDuck/hd2-tracker/internal/roster/base"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
)

// store is an in-memory roster with no backing storage.
type store struct {
	base.BaseRoster
}

// NewRoster creates a new in-memory roster.
func NewRoster() roster.Roster {
	return &store{
		BaseRoster: base.NewBaseRoster(),
	}
}

// All CRUD methods are inherited from BaseRoster

// Load is a no-op; memory rosters have nothing to load from.
func (s *store) Load() error {
	return nil
}

// Save is a no-op; memory rosters have nowhere to persist to.
func (s *store) Save() error {
	return nil
}
