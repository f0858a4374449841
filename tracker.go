// Package tracker provides the main entry point for the hd2-tracker
// clan statistics system. It offers a high-level interface for turning
// Helldivers 2 career-card screenshots into persistent per-player stat
// records with achievement progress.
//
// The tracker wraps the underlying scan and roster packages with
// additional features including:
// - Concurrent screenshot scanning with upload-order merging
// - Confidence-ranked field resolution across multiple screenshots
// - Roster persistence as one YAML file per player
// - Achievement progress against configurable thresholds
// - Event hooks for record changes and achievement unlocks
//
// Example usage:
//
//	// Create a tracker with the Gemini scan engine and a roster directory
//	engine, err := gemini.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tr, err := tracker.New(
//	    tracker.WithEngine(engine),
//	    tracker.WithRosterPath(dir),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Announce unlocks
//	tr.OnUnlock(func(player string, p achievements.Progress) {
//	    fmt.Printf("%s unlocked %s!\n", player, p.Achievement.Name)
//	})
//
//	// Scan screenshots; fields the engine only placed by layout
//	// position are flagged for review
//	outcome, err := tr.Scan(ctx, img1, img2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, key := range outcome.ReviewKeys() {
//	    fmt.Printf("review %s = %d\n", key, outcome.Merged.Stats[key])
//	}
//
//	// Submit the reviewed result to the roster
//	rec, err := tr.Submit(ctx, "Helldiver1", outcome.Merged)
//
//	// Check achievement progress
//	progress, err := tr.Progress("Helldiver1")
package tracker

import (
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/logging"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// Compile-time interface check to ensure proper implementation.
var _ Tracker = (*tracker)(nil)

// Roster provides access to the working roster.
type Roster interface {
	Roster() roster.Roster
}

// Achievements provides access to the achievement catalog.
type Achievements interface {
	Achievements() *achievements.Catalog
}

// Tracker manages a clan roster of career statistics fed by
// screenshot scans.
type Tracker interface {

	// Roster provides access to the working roster
	Roster

	// Achievements provides access to the achievement catalog
	Achievements

	// Scanner runs screenshots through the scan pipeline
	Scanner

	// Submitter persists reviewed scan results as roster records
	Submitter

	// Progress reports achievement progress against stored records
	Progress

	// Persistence handles roster persistence operations
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// tracker is the internal implementation of the Tracker interface.
type tracker struct {

	// options are the configured options for the tracker
	options *options

	roster       roster.Roster
	achievements *achievements.Catalog
	pipeline     *scan.Pipeline // nil until an engine is configured

	// hooks fire on submissions
	hooks *hooks
}

// New creates a new Tracker instance with the given options.
func New(opts ...Option) (Tracker, error) {

	t := &tracker{
		options: defaults().apply(opts...),
		hooks:   newHooks(),
	}

	// Use the supplied roster, build one from the configured path, or
	// fall back to memory.
	var err error
	switch {
	case t.options.roster != nil:
		t.roster = t.options.roster
	case t.options.rosterPath != "":
		if t.roster, err = NewFilesRoster(t.options.rosterPath); err != nil {
			return nil, errors.WrapResource("create", "roster", t.options.rosterPath, err)
		}
	default:
		if t.roster, err = NewMemoryRoster(); err != nil {
			return nil, errors.WrapResource("create", "roster", "memory", err)
		}
	}

	t.achievements = t.options.achievements
	if t.achievements == nil {
		if t.achievements, err = achievements.New(); err != nil {
			return nil, errors.WrapResource("create", "achievement catalog", "", err)
		}
	}

	if t.options.engine != nil {
		t.pipeline, err = scan.NewPipeline(t.options.engine,
			scan.WithLimit(t.options.maxImages),
			scan.WithTimeout(constants.DefaultOCRTimeout),
		)
		if err != nil {
			return nil, errors.WrapResource("create", "scan pipeline", "", err)
		}
	}

	logging.Debug().
		Int("players", t.roster.Len()).
		Int("achievements", t.achievements.Len()).
		Bool("engine", t.pipeline != nil).
		Msg("Tracker ready")

	return t, nil
}

// Roster returns the working roster. The handle is safe for
// concurrent use.
func (t *tracker) Roster() roster.Roster {
	return t.roster
}

// Achievements returns the achievement catalog.
func (t *tracker) Achievements() *achievements.Catalog {
	return t.achievements
}
