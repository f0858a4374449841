// Package achievements defines clan achievements earned by crossing
// statistic thresholds, and computes per-player progress toward them.
// The built-in catalog ships embedded in the binary; clans can swap in
// their own YAML catalog instead.
package achievements

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/KaminaDuck/hd2-tracker/internal/embedded"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// embeddedFile is the catalog file name inside the embedded filesystem.
const embeddedFile = "achievements.yaml"

// Achievement is a statistic threshold a player can cross.
type Achievement struct {
	ID          string    `json:"id" yaml:"id"`                   // Stable identifier, kebab-case
	Name        string    `json:"name" yaml:"name"`               // Display name
	Description string    `json:"description" yaml:"description"` // One-line flavor text
	Stat        stats.Key `json:"stat" yaml:"stat"`               // Statistic the threshold applies to
	Threshold   int       `json:"threshold" yaml:"threshold"`     // Career total required to unlock
}

// Validate checks that the achievement references a tracked statistic
// and a crossable threshold.
func (a Achievement) Validate() error {
	if a.ID == "" {
		return errors.NewValidationError("id", a.ID, "achievement id is required")
	}
	if a.Name == "" {
		return errors.NewValidationError("name", a.Name, "achievement name is required")
	}
	if !a.Stat.Valid() {
		return errors.NewValidationError("stat", a.Stat,
			fmt.Sprintf("achievement %s references an unknown stat", a.ID))
	}
	if a.Threshold <= 0 {
		return errors.NewValidationError("threshold", a.Threshold,
			fmt.Sprintf("achievement %s needs a positive threshold", a.ID))
	}
	return nil
}

// Progress is one player's standing against one achievement.
type Progress struct {
	Achievement Achievement `json:"achievement" yaml:"achievement"`
	Value       int         `json:"value" yaml:"value"`       // Player's current career total
	Percent     float64     `json:"percent" yaml:"percent"`   // Completion percentage, capped at 100
	Unlocked    bool        `json:"unlocked" yaml:"unlocked"` // Whether the threshold has been crossed
}

// Catalog is an immutable, ordered set of achievements. The file order
// of the source YAML is the display order.
type Catalog struct {
	achievements []Achievement
	byID         map[string]Achievement
}

// catalogOptions holds the configurable construction inputs.
type catalogOptions struct {
	readFS       fs.FS
	file         string
	achievements []Achievement
}

// catalogDefaults reads the embedded built-in catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		readFS: embedded.FS,
		file:   embeddedFile,
	}
}

// Option configures a Catalog.
type Option func(*catalogOptions)

// WithFS reads the catalog from a custom filesystem. The file name
// still defaults to achievements.yaml unless WithFile overrides it.
func WithFS(fsys fs.FS) Option {
	return func(o *catalogOptions) {
		o.readFS = fsys
	}
}

// WithFile reads the catalog from a YAML file on disk.
func WithFile(path string) Option {
	return func(o *catalogOptions) {
		o.readFS = os.DirFS(filepath.Dir(path))
		o.file = filepath.Base(path)
	}
}

// WithAchievements bypasses file loading and uses the given
// achievements directly.
func WithAchievements(achievements ...Achievement) Option {
	return func(o *catalogOptions) {
		o.achievements = achievements
	}
}

// New builds a validated catalog. Without options it loads the
// built-in embedded catalog.
func New(opts ...Option) (*Catalog, error) {
	options := catalogDefaults()
	for _, opt := range opts {
		opt(options)
	}

	achievements := options.achievements
	if achievements == nil {
		data, err := fs.ReadFile(options.readFS, options.file)
		if err != nil {
			return nil, errors.WrapIO("read", options.file, err)
		}
		if err := yaml.Unmarshal(data, &achievements); err != nil {
			return nil, errors.WrapParse("yaml", options.file, err)
		}
	}

	catalog := &Catalog{
		achievements: make([]Achievement, 0, len(achievements)),
		byID:         make(map[string]Achievement, len(achievements)),
	}
	for _, a := range achievements {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, exists := catalog.byID[a.ID]; exists {
			return nil, errors.NewValidationError("id", a.ID, "duplicate achievement id")
		}
		catalog.achievements = append(catalog.achievements, a)
		catalog.byID[a.ID] = a
	}
	return catalog, nil
}

// List returns all achievements in display order.
func (c *Catalog) List() []Achievement {
	achievements := make([]Achievement, len(c.achievements))
	copy(achievements, c.achievements)
	return achievements
}

// Get returns an achievement by id and whether it exists.
func (c *Catalog) Get(id string) (Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// ForStat returns the achievements gated on a statistic, in display
// order.
func (c *Catalog) ForStat(key stats.Key) []Achievement {
	var matched []Achievement
	for _, a := range c.achievements {
		if a.Stat == key {
			matched = append(matched, a)
		}
	}
	return matched
}

// Len returns the number of achievements in the catalog.
func (c *Catalog) Len() int {
	return len(c.achievements)
}

// Progress computes the player's standing against every achievement in
// display order.
func (c *Catalog) Progress(rec *stats.Record) []Progress {
	progress := make([]Progress, 0, len(c.achievements))
	for _, a := range c.achievements {
		value := rec.Value(a.Stat)
		percent := float64(value) / float64(a.Threshold) * 100
		if percent > 100 {
			percent = 100
		}
		progress = append(progress, Progress{
			Achievement: a,
			Value:       value,
			Percent:     percent,
			Unlocked:    value >= a.Threshold,
		})
	}
	return progress
}
