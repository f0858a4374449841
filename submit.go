package tracker

import (
	"context"

	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// Compile-time interface check to ensure proper implementation.
var _ Submitter = (*tracker)(nil)

// Submitter persists reviewed scan results as roster records.
type Submitter interface {
	// Submit zero-fills a reviewed result into a record and stores it
	Submit(ctx context.Context, player string, parsed scan.ParseResult) (*stats.Record, error)
}

// Submit turns a reviewed parse result into a zero-filled roster
// record, stores it, and saves the roster. The player argument
// overrides the scanned name; when empty, the parse result must carry
// one. Returns the stored record.
func (t *tracker) Submit(ctx context.Context, player string, parsed scan.ParseResult) (*stats.Record, error) {
	if player == "" && parsed.PlayerName != nil {
		player = *parsed.PlayerName
	}
	if player == "" {
		return nil, errors.NewValidationError("player", "", "player name is required when the scan found none")
	}

	// The previous record, if any, feeds unlock detection.
	old, _ := t.roster.Player(player)

	rec := stats.NewRecord(player, parsed.Stats)
	if err := t.roster.SetPlayer(rec); err != nil {
		return nil, err
	}
	if err := t.roster.Save(); err != nil {
		return nil, err
	}

	stored, err := t.roster.Player(player)
	if err != nil {
		return nil, err
	}

	t.hooks.triggerSubmit(t.achievements, old, stored)

	logging.Info().
		Str("player", player).
		Int("fields", len(parsed.Stats)).
		Msg("Player record submitted")
	return stored, nil
}
