package gemini

import (
	"encoding/json"
	"strings"

	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// scanReply mirrors the JSON document the prompt asks the model to
// return.
type scanReply struct {
	PlayerName string      `json:"player_name"`
	Stats      []scanField `json:"stats"`
}

// scanField is a single extracted statistic. MatchedLabel reports
// whether the model read the value beside its label text or inferred
// it from the card layout.
type scanField struct {
	Key          string `json:"key"`
	Value        int    `json:"value"`
	MatchedLabel bool   `json:"matched_label"`
}

// decodeReply parses a model reply into a validated ParseResult.
// Fields the model invents are dropped rather than failing the scan:
// an unknown key, a negative value, or a repeated key loses that
// field only. A malformed document fails the whole reply.
func decodeReply(raw string) (scan.ParseResult, error) {
	var reply scanReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return scan.ParseResult{}, errors.NewParseError("json", "", "model reply is not valid JSON", err)
	}

	values := make(map[stats.Key]int, len(reply.Stats))
	confidence := make(map[stats.Key]scan.Confidence, len(reply.Stats))
	for _, field := range reply.Stats {
		key := stats.Key(strings.TrimSpace(field.Key))
		if !key.Valid() {
			// The model occasionally echoes the on-screen label
			// instead of the key it was given.
			resolved, ok := stats.KeyForLabel(field.Key)
			if !ok {
				logging.Warn().
					Str("key", field.Key).
					Msg("Dropping unknown stat key from model reply")
				continue
			}
			key = resolved
		}
		if field.Value < 0 {
			logging.Warn().
				Str("key", string(key)).
				Int("value", field.Value).
				Msg("Dropping negative stat value from model reply")
			continue
		}
		if _, dup := values[key]; dup {
			logging.Warn().
				Str("key", string(key)).
				Msg("Dropping repeated stat key from model reply")
			continue
		}
		values[key] = field.Value
		if field.MatchedLabel {
			confidence[key] = scan.ConfidenceLabel
		} else {
			confidence[key] = scan.ConfidencePosition
		}
	}

	var name *string
	if trimmed := strings.TrimSpace(reply.PlayerName); trimmed != "" {
		if len(trimmed) > constants.MaxPlayerNameLength {
			logging.Warn().
				Int("length", len(trimmed)).
				Msg("Dropping oversized player name from model reply")
		} else {
			name = &trimmed
		}
	}

	return scan.NewParseResult(values, confidence, name)
}
