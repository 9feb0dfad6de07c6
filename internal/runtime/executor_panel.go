package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-udos/internal/canvas"
	"github.com/goliatone/go-udos/internal/spatial"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// panelExecutor emits interpolated prose as block output.
type panelExecutor struct{}

func (*panelExecutor) Kind() interfaces.BlockType { return interfaces.BlockPanel }

func (*panelExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	content := strings.TrimRight(block.Content, "\n")
	content = strings.Trim(content, `"`)
	return interfaces.ExecutorResult{
		Success: true,
		Output:  ec.State.Interpolate(content),
	}
}

// mapBlock is the JSON payload a map block carries.
type mapBlock struct {
	Title  string            `json:"title"`
	Legend bool              `json:"legend"`
	Cells  map[string]string `json:"cells"`
}

// mapExecutor validates LocId overlay cells and renders them through the
// grid pipeline, emitting the packaged text as output.
type mapExecutor struct {
	grid *canvas.Service
}

func (*mapExecutor) Kind() interfaces.BlockType { return interfaces.BlockMap }

func (e *mapExecutor) Execute(_ context.Context, _ *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	if e.grid == nil {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("grid renderer not configured")))
	}

	var payload mapBlock
	if err := json.Unmarshal([]byte(block.Content), &payload); err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}

	cells := make(map[string]any, len(payload.Cells))
	for locID, marker := range payload.Cells {
		if _, err := spatial.ParseLocID(locID); err != nil {
			return interfaces.Failure(err)
		}
		cells[locID] = marker
	}

	rendered, err := e.grid.RenderGrid(interfaces.GridInput{
		Mode: interfaces.ModeMap,
		Spec: map[string]any{
			"title":  payload.Title,
			"legend": payload.Legend,
		},
		Data: map[string]any{"cells": cells},
	})
	if err != nil {
		return interfaces.Failure(err)
	}

	return interfaces.ExecutorResult{Success: true, Output: rendered.RawText}
}
