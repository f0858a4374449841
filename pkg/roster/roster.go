// Package roster defines access to a clan's player statistic records.
// Implementations live under internal/roster; the root package exposes
// constructors for the memory and file-backed variants.
package roster

import (
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// Reader provides read access to player records.
type Reader interface {
	// Player returns the record for a player by display name.
	Player(name string) (*stats.Record, error)

	// Players returns all records sorted by player name.
	Players() []*stats.Record

	// Len returns the number of players in the roster.
	Len() int
}

// Writer provides write access to player records.
type Writer interface {
	// SetPlayer stores a record, replacing any record the player
	// already has. The record must validate.
	SetPlayer(rec *stats.Record) error

	// DeletePlayer removes a player's record.
	DeletePlayer(name string) error
}

// Roster combines record access with persistence. Load and Save are
// no-ops for backends without storage.
type Roster interface {
	Reader
	Writer

	// Load replaces the roster contents from the backing store.
	Load() error

	// Save writes the roster contents to the backing store.
	Save() error
}
