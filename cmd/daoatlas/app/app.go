// Package app provides the application context and dependency management
// for the daoatlas CLI. It centralizes configuration, logging, and pipeline
// construction.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/daoatlas/daoatlas/internal/pipeline"
)

// App represents the daoatlas application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.Mutex
	pipeline *pipeline.Pipeline
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

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

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Pipeline returns the pipeline instance, creating it lazily.
func (a *App) Pipeline() (*pipeline.Pipeline, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	sources, err := a.config.SourcesConfig()
	if err != nil {
		return nil, err
	}

	p, err := pipeline.NewFromConfig(sources)
	if err != nil {
		return nil, err
	}

	a.pipeline = p
	return p, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		a.config = cfg
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

// WithPipeline sets a custom pipeline instance (useful for testing).
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(a *App) error {
		a.pipeline = p
		return nil
	}
}
