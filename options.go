package tracker

import (
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
	"github.com/KaminaDuck/hd2-tracker/pkg/constants"
	"github.com/KaminaDuck/hd2-tracker/pkg/roster"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// Option is a function that configures a Tracker instance.
type Option func(*options)

// options are the configured options for a Tracker.
type options struct {
	engine       scan.Engine
	roster       roster.Roster
	rosterPath   string
	achievements *achievements.Catalog
	maxImages    int
}

// defaults returns the default tracker options.
func defaults() *options {
	return &options{
		maxImages: constants.MaxUploadImages,
	}
}

// apply applies the given options and returns the result.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEngine sets the OCR engine Scan uses. Without one, Scan returns
// a configuration error.
func WithEngine(engine scan.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithRoster supplies a pre-built roster instead of the default
// in-memory one.
func WithRoster(r roster.Roster) Option {
	return func(o *options) {
		o.roster = r
	}
}

// WithRosterPath stores the roster as one YAML file per player under
// dir. Ignored when WithRoster is also given.
func WithRosterPath(dir string) Option {
	return func(o *options) {
		o.rosterPath = dir
	}
}

// WithAchievements overrides the embedded achievement catalog.
func WithAchievements(catalog *achievements.Catalog) Option {
	return func(o *options) {
		o.achievements = catalog
	}
}

// WithMaxImages caps how many screenshots a single Scan call accepts.
func WithMaxImages(n int) Option {
	return func(o *options) {
		o.maxImages = n
	}
}
