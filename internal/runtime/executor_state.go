package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// stateExecutor seeds state from flat "path: value" declarations.
type stateExecutor struct{}

func (*stateExecutor) Kind() interfaces.BlockType { return interfaces.BlockState }

func (*stateExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	changes := map[string]any{}
	for _, raw := range splitLines(block.Content) {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path, value, ok := strings.Cut(line, ":")
		path = strings.TrimSpace(path)
		if !ok || path == "" {
			return interfaces.Failure(wrapBlockError(block.Type,
				fmt.Errorf("state entries must be path: value, got %q", line)))
		}
		changes[path] = parseLiteral(ec.State.Interpolate(strings.TrimSpace(value)))
	}

	result := interfaces.ExecutorResult{Success: true}
	if len(changes) > 0 {
		result.StateChanges = changes
	}
	return result
}

// setExecutor runs the imperative command dialect: set, increment,
// decrement, toggle, nav, output.
type setExecutor struct{}

func (*setExecutor) Kind() interfaces.BlockType { return interfaces.BlockSet }

func (*setExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	cmd, err := runCommands(ec, splitLines(block.Content))
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	return commandsToResult(cmd)
}
