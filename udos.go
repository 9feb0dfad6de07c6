// Package udos is the markdown-driven script runtime: documents made of
// ##-delimited sections and typed fenced blocks execute against a
// path-addressable state store, navigate between sections, and render
// deterministic 80x30 text grids addressed through the fractal spatial-id
// scheme.
package udos

import (
	"github.com/goliatone/go-udos/internal/canvas"
	"github.com/goliatone/go-udos/internal/di"
	"github.com/goliatone/go-udos/internal/markdown"
	"github.com/goliatone/go-udos/internal/runtime"
	"github.com/goliatone/go-udos/internal/spatial"
	"github.com/goliatone/go-udos/internal/state"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Core contract types re-exported for consumers of the udos package.
type (
	Document         = interfaces.Document
	Frontmatter      = interfaces.Frontmatter
	Section          = interfaces.Section
	Block            = interfaces.Block
	BlockType        = interfaces.BlockType
	ExecutorResult   = interfaces.ExecutorResult
	RunnerResult     = interfaces.RunnerResult
	SectionRun       = interfaces.SectionRun
	StateStore       = interfaces.StateStore
	Anchor           = interfaces.Anchor
	AnchorRegistry   = interfaces.AnchorRegistry
	Cell             = interfaces.Cell
	LocID            = interfaces.LocID
	PlaceRef         = interfaces.PlaceRef
	GridInput        = interfaces.GridInput
	GridMode         = interfaces.GridMode
	RenderResult     = interfaces.RenderResult
	Logger           = interfaces.Logger
	LoggerProvider   = interfaces.LoggerProvider
	ExecutionContext = interfaces.ExecutionContext
)

// Option forwards DI overrides to the container.
type Option = di.Option

// WithLoggerProvider injects a host logger provider.
var WithLoggerProvider = di.WithLoggerProvider

// WithDB injects the database sql blocks execute against.
var WithDB = di.WithDB

// WithAnchorRegistry injects a custom anchor registry.
var WithAnchorRegistry = di.WithAnchorRegistry

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a runtime module from the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Runtime returns the section executor.
func (m *Module) Runtime() *runtime.Runtime {
	return m.container.Runtime()
}

// Runner returns the document runner.
func (m *Module) Runner() *runtime.Runner {
	return m.container.Runner()
}

// State returns the shared state store.
func (m *Module) State() *state.Store {
	return m.container.State()
}

// Parser returns the markdown parser.
func (m *Module) Parser() *markdown.Parser {
	return m.container.Parser()
}

// Spatial returns the PlaceRef service.
func (m *Module) Spatial() *spatial.Service {
	return m.container.Spatial()
}

// Grid returns the grid render service.
func (m *Module) Grid() *canvas.Service {
	return m.container.Grid()
}
