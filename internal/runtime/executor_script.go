package runtime

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-udos/internal/scripting"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// scriptExecutor hands the block body to the embedded JS engine. Scripts
// talk to the runtime through the state host object, output(), and
// navigate().
type scriptExecutor struct {
	engine  *scripting.Engine
	enabled bool
}

func (*scriptExecutor) Kind() interfaces.BlockType { return interfaces.BlockScript }

func (e *scriptExecutor) Execute(ctx context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	if !e.enabled || e.engine == nil {
		return interfaces.Failure(goerrors.Wrap(
			fmt.Errorf("runtime: script execution is disabled"),
			goerrors.CategoryValidation, "script block rejected").
			WithTextCode(scriptDisabledCode))
	}

	result, err := e.engine.Run(ctx, block.Content, ec.State)
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}

	return interfaces.ExecutorResult{
		Success:     true,
		Output:      strings.Join(result.Output, "\n"),
		NextSection: result.NextSection,
	}
}
