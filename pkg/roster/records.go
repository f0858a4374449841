package roster

import (
	"fmt"
	"maps"
	"sync"

	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// Records is a concurrent safe map of player records keyed by display
// name.
type Records struct {
	mu      sync.RWMutex
	records map[string]*stats.Record
}

// RecordsOption defines a function that configures a Records instance.
type RecordsOption func(*Records)

// WithRecordsCapacity sets the initial capacity of the records map.
func WithRecordsCapacity(capacity int) RecordsOption {
	return func(r *Records) {
		r.records = make(map[string]*stats.Record, capacity)
	}
}

// WithRecordsMap initializes the map with existing records.
func WithRecordsMap(records map[string]*stats.Record) RecordsOption {
	return func(r *Records) {
		if records != nil {
			r.records = make(map[string]*stats.Record, len(records))
			maps.Copy(r.records, records)
		}
	}
}

// NewRecords creates a new Records map with optional configuration.
func NewRecords(opts ...RecordsOption) *Records {
	r := &Records{
		records: make(map[string]*stats.Record),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns a record by player name and whether it exists.
func (r *Records) Get(name string) (*stats.Record, bool) {
	r.mu.RLock()
	rec, ok := r.records[name]
	r.mu.RUnlock()
	return rec, ok
}

// Set stores a record under its player name. Returns an error if the
// record is nil or has no player name.
func (r *Records) Set(rec *stats.Record) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if rec.Player == "" {
		return fmt.Errorf("record must carry a player name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.Player] = rec
	return nil
}

// Delete removes a record by player name. Returns an error if the
// player doesn't exist.
func (r *Records) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[name]; !exists {
		return fmt.Errorf("player %s not found", name)
	}

	delete(r.records, name)
	return nil
}

// Exists checks if a player has a record without returning it.
func (r *Records) Exists(name string) bool {
	r.mu.RLock()
	_, exists := r.records[name]
	r.mu.RUnlock()
	return exists
}

// Len returns the number of records.
func (r *Records) Len() int {
	r.mu.RLock()
	length := len(r.records)
	r.mu.RUnlock()
	return length
}

// List returns a slice of all records in map order.
func (r *Records) List() []*stats.Record {
	r.mu.RLock()
	records := make([]*stats.Record, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	r.mu.RUnlock()
	return records
}

// Map returns a copy of all records.
func (r *Records) Map() map[string]*stats.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*stats.Record, len(r.records))
	maps.Copy(result, r.records)
	return result
}

// ForEach applies a function to each record. The function should not
// modify the record. If the function returns false, iteration stops
// early.
func (r *Records) ForEach(fn func(name string, rec *stats.Record) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, rec := range r.records {
		if !fn(name, rec) {
			break
		}
	}
}

// Clear removes all records.
func (r *Records) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.records {
		delete(r.records, k)
	}
}
