// Package di wires the runtime's collaborators from configuration. Hosts
// override bindings through options rather than reaching into internals.
package di

import (
	"fmt"

	"github.com/goliatone/go-udos/internal/canvas"
	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/internal/logging/gologger"
	"github.com/goliatone/go-udos/internal/markdown"
	"github.com/goliatone/go-udos/internal/runtime"
	"github.com/goliatone/go-udos/internal/runtimeconfig"
	"github.com/goliatone/go-udos/internal/scripting"
	"github.com/goliatone/go-udos/internal/spatial"
	"github.com/goliatone/go-udos/internal/state"
	"github.com/goliatone/go-udos/internal/storage"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Option overrides a container binding before construction completes.
type Option func(*Container)

// WithLoggerProvider injects a host logger provider, bypassing the
// config-selected one.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) { c.loggerProvider = provider }
}

// WithDB injects the database sql blocks execute against, bypassing the
// sqlite DSN in config.
func WithDB(db storage.Executor) Option {
	return func(c *Container) { c.db = db }
}

// WithAnchorRegistry injects a custom anchor registry.
func WithAnchorRegistry(registry interfaces.AnchorRegistry) Option {
	return func(c *Container) { c.anchors = registry }
}

// Container holds the constructed service graph.
type Container struct {
	cfg            runtimeconfig.Config
	loggerProvider interfaces.LoggerProvider
	anchors        interfaces.AnchorRegistry
	db             storage.Executor

	store   *state.Store
	parser  *markdown.Parser
	spatial *spatial.Service
	grid    *canvas.Service
	runtime *runtime.Runtime
	runner  *runtime.Runner
}

// NewContainer validates the configuration and builds the service graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.anchors == nil {
		c.anchors = spatial.NewMemoryAnchorRegistry()
	}
	for _, anchor := range cfg.Spatial.Anchors {
		err := c.anchors.Register(interfaces.Anchor{
			ID:     anchor.ID,
			Title:  anchor.Title,
			Type:   anchor.Type,
			Status: anchor.Status,
		})
		if err != nil {
			return nil, fmt.Errorf("di: seeding anchor %q: %w", anchor.ID, err)
		}
	}

	if c.db == nil && cfg.Storage.DSN != "" {
		db, err := storage.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("di: opening sql storage: %w", err)
		}
		c.db = db
	}

	c.store = state.New(c.loggerProvider)
	c.parser = markdown.NewParser(c.loggerProvider)
	c.spatial = spatial.NewService(c.anchors, c.loggerProvider)
	c.grid = canvas.NewService(cfg.Grid.Theme, c.loggerProvider)

	var engine *scripting.Engine
	if cfg.Script.Enabled {
		engine = scripting.NewEngine(cfg.Script.Timeout)
	}

	factory := runtime.NewFactory(runtime.Dependencies{
		Logger:        c.loggerProvider,
		Grid:          c.grid,
		ScriptEngine:  engine,
		ScriptEnabled: cfg.Script.Enabled,
		DB:            c.db,
	})

	c.runtime = runtime.New(c.parser, c.store, factory, c.loggerProvider)
	c.runner = runtime.NewRunner(c.runtime, cfg.Runner.MaxSections, c.loggerProvider)

	return c, nil
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "", "noop":
		return noopProvider{}, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, runtimeconfig.ErrLoggingProviderUnknown
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }

// Config returns the validated configuration the container was built from.
func (c *Container) Config() runtimeconfig.Config { return c.cfg }

// State returns the shared state store.
func (c *Container) State() *state.Store { return c.store }

// Parser returns the markdown parser.
func (c *Container) Parser() *markdown.Parser { return c.parser }

// Spatial returns the PlaceRef service.
func (c *Container) Spatial() *spatial.Service { return c.spatial }

// Grid returns the grid render service.
func (c *Container) Grid() *canvas.Service { return c.grid }

// Runtime returns the section executor.
func (c *Container) Runtime() *runtime.Runtime { return c.runtime }

// Runner returns the document runner.
func (c *Container) Runner() *runtime.Runner { return c.runner }
