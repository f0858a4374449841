package stats

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

// Record is a player's persisted statistics snapshot. Stats always
// carries every tracked key; stats a scan never produced are stored as
// zero so downstream consumers can index without existence checks.
type Record struct {
	Player    string      `json:"player" yaml:"player"`         // Player display name (unique within a roster)
	Stats     map[Key]int `json:"stats" yaml:"stats"`           // Zero-filled values for every tracked key
	CreatedAt utc.Time    `json:"created_at" yaml:"created_at"` // First time this player was recorded
	UpdatedAt utc.Time    `json:"updated_at" yaml:"updated_at"` // Last time the stats changed
}

// NewRecord builds a zero-filled record for a player and overlays the
// provided values. Keys outside the tracked enumeration are ignored.
// Both timestamps are set to the current time.
func NewRecord(player string, values map[Key]int) *Record {
	now := utc.Now()
	rec := &Record{
		Player:    player,
		Stats:     make(map[Key]int, len(keyOrder)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, k := range keyOrder {
		rec.Stats[k] = 0
	}
	for k, v := range values {
		if k.Valid() {
			rec.Stats[k] = v
		}
	}
	return rec
}

// Validate checks that the record is safe to persist: a non-empty
// player name within the length limit, exactly the tracked key set,
// and no negative values.
func (r *Record) Validate() error {
	if r == nil {
		return errors.NewValidationError("record", nil, "record is nil")
	}
	if r.Player == "" {
		return errors.NewValidationError("player", r.Player, "player name is required")
	}
	if len(r.Player) > constants.MaxPlayerNameLength {
		return errors.NewValidationError("player", r.Player,
			fmt.Sprintf("player name exceeds %d characters", constants.MaxPlayerNameLength))
	}
	if r.Stats == nil {
		return errors.NewValidationError("stats", nil, "stats map is required")
	}
	for _, k := range keyOrder {
		v, ok := r.Stats[k]
		if !ok {
			return errors.NewValidationError("stats", k, "missing tracked key")
		}
		if v < 0 {
			return errors.NewValidationError(string(k), v, "stat values must be non-negative")
		}
	}
	for k := range r.Stats {
		if !k.Valid() {
			return errors.NewValidationError("stats", k, "unknown stat key")
		}
	}
	return nil
}

// Value returns the stored value for a key, or zero when the key is
// absent or unknown.
func (r *Record) Value(k Key) int {
	if r == nil || r.Stats == nil {
		return 0
	}
	return r.Stats[k]
}

// Set stores a value for a tracked key and bumps UpdatedAt.
func (r *Record) Set(k Key, value int) error {
	if !k.Valid() {
		return errors.NewValidationError("key", k, "unknown stat key")
	}
	if value < 0 {
		return errors.NewValidationError(string(k), value, "stat values must be non-negative")
	}
	if r.Stats == nil {
		r.Stats = make(map[Key]int, len(keyOrder))
		for _, key := range keyOrder {
			r.Stats[key] = 0
		}
	}
	r.Stats[k] = value
	r.UpdatedAt = utc.Now()
	return nil
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	clone := *r
	if r.Stats != nil {
		clone.Stats = make(map[Key]int, len(r.Stats))
		for k, v := range r.Stats {
			clone.Stats[k] = v
		}
	}
	return &clone
}
