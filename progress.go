package tracker

import (
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
)

// Compile-time interface check to ensure proper implementation.
var _ Progress = (*tracker)(nil)

// Progress reports achievement progress against stored records.
type Progress interface {
	// Progress returns the player's progress toward every achievement
	Progress(player string) ([]achievements.Progress, error)
}

// Progress returns the player's progress toward every achievement in
// catalog order.
func (t *tracker) Progress(player string) ([]achievements.Progress, error) {
	rec, err := t.roster.Player(player)
	if err != nil {
		return nil, err
	}
	return t.achievements.Progress(rec), nil
}
