// Package base provides common roster functionality that can be
// embedded in specific roster implementations (memory, files).
package base

import (
	"sort"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// BaseRoster provides the record CRUD shared by roster
// implementations. Records handed out and taken in are deep copies, so
// callers can't mutate roster state behind its back.
type BaseRoster struct {
	records *roster.Records
}

// NewBaseRoster creates a new base roster with an initialized
// collection.
func NewBaseRoster() BaseRoster {
	return BaseRoster{
		records: roster.NewRecords(),
	}
}

// Records returns the underlying records collection.
func (b *BaseRoster) Records() *roster.Records {
	return b.records
}

// Player returns the record for a player by display name.
func (b *BaseRoster) Player(name string) (*stats.Record, error) {
	rec, ok := b.records.Get(name)
	if !ok {
		return nil, errors.NewNotFoundError("player", name)
	}
	return rec.Clone(), nil
}

// Players returns all records sorted by player name.
func (b *BaseRoster) Players() []*stats.Record {
	records := b.records.List()
	sort.Slice(records, func(i, j int) bool {
		return records[i].Player < records[j].Player
	})

	players := make([]*stats.Record, len(records))
	for i, rec := range records {
		players[i] = rec.Clone()
	}
	return players
}

// Len returns the number of players in the roster.
func (b *BaseRoster) Len() int {
	return b.records.Len()
}

// SetPlayer validates and stores a record, replacing any record the
// player already has. A replacement keeps the original CreatedAt;
// UpdatedAt travels with the record so reloads round-trip timestamps.
func (b *BaseRoster) SetPlayer(rec *stats.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	clone := rec.Clone()
	if prev, ok := b.records.Get(rec.Player); ok {
		clone.CreatedAt = prev.CreatedAt
	}
	return b.records.Set(clone)
}

// DeletePlayer removes a player's record.
func (b *BaseRoster) DeletePlayer(name string) error {
	if !b.records.Exists(name) {
		return errors.NewNotFoundError("player", name)
	}
	return b.records.Delete(name)
}
