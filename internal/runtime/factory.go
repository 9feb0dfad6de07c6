package runtime

import (
	"github.com/goliatone/go-udos/internal/canvas"
	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/internal/scripting"
	"github.com/goliatone/go-udos/internal/storage"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Dependencies carries the collaborators block executors draw on. Grid and
// DB are optional; executors needing an absent dependency fail explicitly
// at execution time rather than at construction.
type Dependencies struct {
	Logger        interfaces.LoggerProvider
	Grid          *canvas.Service
	ScriptEngine  *scripting.Engine
	ScriptEnabled bool
	DB            storage.Executor
}

// Factory owns one executor per block kind. The set is closed at
// construction; lookups for anything else miss, and the runtime turns a miss
// into a loud failure.
type Factory struct {
	executors map[interfaces.BlockType]interfaces.Executor
	logger    interfaces.Logger
}

// NewFactory wires the executor registry.
func NewFactory(deps Dependencies) *Factory {
	logger := logging.RuntimeLogger(deps.Logger)

	registry := []interfaces.Executor{
		&stateExecutor{},
		&setExecutor{},
		&formExecutor{},
		&ifExecutor{},
		&elseExecutor{},
		&navExecutor{},
		&panelExecutor{},
		&mapExecutor{grid: deps.Grid},
		&scriptExecutor{engine: deps.ScriptEngine, enabled: deps.ScriptEnabled},
		&sqlExecutor{db: deps.DB},
	}

	executors := make(map[interfaces.BlockType]interfaces.Executor, len(registry))
	for _, executor := range registry {
		executors[executor.Kind()] = executor
	}

	return &Factory{executors: executors, logger: logger}
}

// Executor resolves the executor for a block type.
func (f *Factory) Executor(blockType interfaces.BlockType) (interfaces.Executor, bool) {
	executor, ok := f.executors[blockType]
	return executor, ok
}
