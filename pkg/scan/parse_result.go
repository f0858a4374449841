package scan

import (
	"fmt"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// ParseResult is the outcome of scanning a single screenshot. Stats is
// sparse: only the statistics the engine actually extracted appear, and
// every extracted statistic carries a confidence level under the same
// key. A screenshot that shows no readable player name leaves
// PlayerName nil.
type ParseResult struct {
	Stats      map[stats.Key]int        `json:"stats" yaml:"stats"`                                 // Extracted values, keyed by statistic
	Confidence map[stats.Key]Confidence `json:"confidence" yaml:"confidence"`                       // How each extracted value was located
	PlayerName *string                  `json:"player_name,omitempty" yaml:"player_name,omitempty"` // Player name, if readable
}

// NewParseResult builds a validated ParseResult. Nil maps are
// normalized to empty ones so callers can index without nil checks.
func NewParseResult(values map[stats.Key]int, confidence map[stats.Key]Confidence, playerName *string) (ParseResult, error) {
	result := ParseResult{
		Stats:      values,
		Confidence: confidence,
		PlayerName: playerName,
	}
	if result.Stats == nil {
		result.Stats = make(map[stats.Key]int)
	}
	if result.Confidence == nil {
		result.Confidence = make(map[stats.Key]Confidence)
	}
	if err := result.Validate(); err != nil {
		return ParseResult{}, err
	}
	return result, nil
}

// Validate checks the structural invariants every ParseResult must
// hold before it reaches Merge: identical keysets between Stats and
// Confidence, known keys and confidence levels, non-negative values,
// and a player name within the length limit.
func (r ParseResult) Validate() error {
	if len(r.Stats) != len(r.Confidence) {
		return errors.NewValidationError("confidence", len(r.Confidence),
			fmt.Sprintf("confidence keys must mirror stats keys, got %d stats and %d confidences",
				len(r.Stats), len(r.Confidence)))
	}
	for k, v := range r.Stats {
		if !k.Valid() {
			return errors.NewValidationError("stats", k, "unknown stat key")
		}
		if v < 0 {
			return errors.NewValidationError(string(k), v, "stat values must be non-negative")
		}
		c, ok := r.Confidence[k]
		if !ok {
			return errors.NewValidationError("confidence", k, "extracted stat has no confidence level")
		}
		if !c.Valid() {
			return errors.NewValidationError("confidence", c, "unknown confidence level")
		}
	}
	if r.PlayerName != nil {
		if *r.PlayerName == "" {
			return errors.NewValidationError("player_name", "", "player name must be nil rather than empty")
		}
		if len(*r.PlayerName) > constants.MaxPlayerNameLength {
			return errors.NewValidationError("player_name", *r.PlayerName,
				fmt.Sprintf("player name exceeds %d characters", constants.MaxPlayerNameLength))
		}
	}
	return nil
}

// Keys returns the extracted statistic keys in canonical order.
func (r ParseResult) Keys() []stats.Key {
	var keys []stats.Key
	for _, k := range stats.Keys() {
		if _, ok := r.Stats[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Clone returns a deep copy of the result.
func (r ParseResult) Clone() ParseResult {
	clone := ParseResult{
		Stats:      make(map[stats.Key]int, len(r.Stats)),
		Confidence: make(map[stats.Key]Confidence, len(r.Confidence)),
	}
	for k, v := range r.Stats {
		clone.Stats[k] = v
	}
	for k, c := range r.Confidence {
		clone.Confidence[k] = c
	}
	if r.PlayerName != nil {
		name := *r.PlayerName
		clone.PlayerName = &name
	}
	return clone
}

// Equal reports whether two results carry the same stats, confidence
// levels, and player name.
func (r ParseResult) Equal(other ParseResult) bool {
	if len(r.Stats) != len(other.Stats) || len(r.Confidence) != len(other.Confidence) {
		return false
	}
	for k, v := range r.Stats {
		ov, ok := other.Stats[k]
		if !ok || ov != v {
			return false
		}
	}
	for k, c := range r.Confidence {
		oc, ok := other.Confidence[k]
		if !ok || oc != c {
			return false
		}
	}
	if (r.PlayerName == nil) != (other.PlayerName == nil) {
		return false
	}
	if r.PlayerName != nil && *r.PlayerName != *other.PlayerName {
		return false
	}
	return true
}
