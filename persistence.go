package tracker

import (
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*tracker)(nil)

// Persistence handles roster persistence operations.
type Persistence interface {
	// Save writes the roster to its backing store
	Save() error

	// Load replaces the roster contents from its backing store
	Load() error
}

// Save persists the roster using its native persistence. In-memory
// rosters treat this as a no-op.
func (t *tracker) Save() error {
	if err := t.roster.Save(); err != nil {
		return errors.WrapIO("write", "roster", err)
	}
	return nil
}

// Load replaces the roster contents from its backing store,
// discarding unsaved changes. In-memory rosters treat this as a
// no-op.
func (t *tracker) Load() error {
	if err := t.roster.Load(); err != nil {
		return errors.WrapResource("load", "roster", "", err)
	}
	return nil
}
