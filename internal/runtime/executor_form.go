package runtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// formBlock is the JSON payload a form block carries. Schema, when present,
// is a JSON schema the field defaults must satisfy.
type formBlock struct {
	ID     string         `json:"id"`
	Fields []formField    `json:"fields"`
	Schema map[string]any `json:"schema"`
}

type formField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Default  any    `json:"default"`
	Required bool   `json:"required"`
}

// formExecutor registers a form definition: defaults land in state under
// forms.<id>.<name> and the rendered field listing becomes output. Actual
// submission arrives from outside the runtime through the state store.
type formExecutor struct{}

func (*formExecutor) Kind() interfaces.BlockType { return interfaces.BlockForm }

func (*formExecutor) Execute(_ context.Context, _ *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	var payload formBlock
	if err := json.Unmarshal([]byte(block.Content), &payload); err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	if strings.TrimSpace(payload.ID) == "" {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("form block needs an id")))
	}

	defaults := map[string]any{}
	for _, field := range payload.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return interfaces.Failure(wrapBlockError(block.Type,
				fmt.Errorf("form %q has a field without a name", payload.ID)))
		}
		if field.Default != nil {
			defaults[field.Name] = field.Default
		}
	}

	if payload.Schema != nil {
		schema, err := compileFormSchema(payload.Schema)
		if err != nil {
			return interfaces.Failure(wrapBlockError(block.Type, err))
		}
		if err := schema.Validate(defaults); err != nil {
			return interfaces.Failure(wrapBlockError(block.Type, err))
		}
	}

	changes := map[string]any{}
	for name, value := range defaults {
		changes["forms."+payload.ID+"."+name] = value
	}

	var lines []string
	lines = append(lines, "form "+payload.ID)
	for _, field := range payload.Fields {
		label := field.Label
		if label == "" {
			label = field.Name
		}
		entry := "  - " + label
		if field.Type != "" {
			entry += " (" + field.Type + ")"
		}
		if field.Required {
			entry += " *"
		}
		lines = append(lines, entry)
	}

	result := interfaces.ExecutorResult{Success: true, Output: strings.Join(lines, "\n")}
	if len(changes) > 0 {
		result.StateChanges = changes
	}
	return result
}

func compileFormSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}
