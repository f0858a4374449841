// Package app provides the application context and dependency management
// for the hd2tracker CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	tracker "github.com/KaminaDuck/hd2-tracker"
	"github.com/KaminaDuck/hd2-tracker/internal/ocr/gemini"
	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
	"github.com/KaminaDuck/hd2-tracker/pkg/errors"
	"github.com/KaminaDuck/hd2-tracker/pkg/scan"
)

// App represents the hd2tracker application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// tracker instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Tracker instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	tracker tracker.Tracker
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Tracker returns the tracker instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Tracker() (tracker.Tracker, error) {
	a.mu.RLock()
	if a.tracker != nil {
		tr := a.tracker
		a.mu.RUnlock()
		return tr, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.tracker != nil {
		return a.tracker, nil
	}

	// Create tracker instance with options from config
	opts, err := a.buildTrackerOptions()
	if err != nil {
		return nil, err
	}
	tr, err := tracker.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "tracker", "", err)
	}

	a.tracker = tr
	return tr, nil
}

// buildTrackerOptions constructs tracker options from the app configuration.
func (a *App) buildTrackerOptions() ([]tracker.Option, error) {
	var opts []tracker.Option

	// Add roster path if configured
	if a.config.RosterPath != "" {
		opts = append(opts, tracker.WithRosterPath(a.config.RosterPath))
	} else {
		a.logger.Warn().Msg("No roster path configured; records will not persist")
	}

	// Add a custom achievement catalog if configured
	if a.config.AchievementsFile != "" {
		catalog, err := achievements.New(achievements.WithFile(a.config.AchievementsFile))
		if err != nil {
			return nil, err
		}
		opts = append(opts, tracker.WithAchievements(catalog))
	}

	if a.config.MaxImages > 0 {
		opts = append(opts, tracker.WithMaxImages(a.config.MaxImages))
	}

	// Add the scan engine when credentials allow one
	engine, err := a.buildEngine()
	if err != nil {
		return nil, err
	}
	if engine != nil {
		opts = append(opts, tracker.WithEngine(engine))
	}

	return opts, nil
}

// buildEngine creates the Gemini scan engine from configuration. A
// missing API key is not an error at startup: roster and progress
// commands work without one, and scanning reports the missing engine
// when it is actually requested.
func (a *App) buildEngine() (scan.Engine, error) {
	var geminiOpts []gemini.Option
	if a.config.GeminiAPIKey != "" {
		geminiOpts = append(geminiOpts, gemini.WithAPIKey(a.config.GeminiAPIKey))
	}
	if a.config.GeminiModel != "" {
		geminiOpts = append(geminiOpts, gemini.WithModel(a.config.GeminiModel))
	}

	engine, err := gemini.New(context.Background(), geminiOpts...)
	if err != nil {
		if errors.IsAPIKeyError(err) {
			a.logger.Debug().Msg("No Gemini API key configured; scanning disabled")
			return nil, nil
		}
		return nil, err
	}
	return engine, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithTracker sets a custom tracker instance (useful for testing).
func WithTracker(tr tracker.Tracker) Option {
	return func(a *App) error {
		a.tracker = tr
		return nil
	}
}
