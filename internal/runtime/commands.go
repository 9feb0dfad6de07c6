package runtime

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// commandResult accumulates the effect of running a block's command lines.
type commandResult struct {
	changes     map[string]any
	nextSection string
	output      []string
}

// runCommands interprets the line-oriented command dialect shared by set,
// if, and else blocks. Blank lines and # comments are skipped; the first
// malformed line aborts. Command values are interpolated against state
// before parsing, and earlier changes in the same block shadow the store for
// subsequent reads.
func runCommands(ec *interfaces.ExecutionContext, lines []string) (commandResult, error) {
	result := commandResult{changes: map[string]any{}}

	read := func(path string) (any, bool) {
		if value, ok := result.changes[path]; ok {
			return value, true
		}
		return ec.State.Get(path)
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "set":
			pathToken, valueText, ok := strings.Cut(rest, " ")
			if !ok {
				return result, fmt.Errorf("set needs a path and a value: %q", line)
			}
			path, err := commandPath(pathToken)
			if err != nil {
				return result, err
			}
			result.changes[path] = parseLiteral(ec.State.Interpolate(strings.TrimSpace(valueText)))

		case "increment", "decrement":
			path, err := commandPath(rest)
			if err != nil {
				return result, err
			}
			current, _ := read(path)
			base, ok := asNumber(current)
			if current != nil && !ok {
				return result, fmt.Errorf("%s target %q is not numeric", verb, path)
			}
			if verb == "increment" {
				result.changes[path] = base + 1
			} else {
				result.changes[path] = base - 1
			}

		case "toggle":
			path, err := commandPath(rest)
			if err != nil {
				return result, err
			}
			current, _ := read(path)
			value, ok := current.(bool)
			if current != nil && !ok {
				return result, fmt.Errorf("toggle target %q is not a boolean", path)
			}
			result.changes[path] = !value

		case "nav":
			target := ec.State.Interpolate(rest)
			if strings.TrimSpace(target) == "" {
				return result, fmt.Errorf("nav needs a section id: %q", line)
			}
			result.nextSection = strings.TrimSpace(target)

		case "output":
			result.output = append(result.output, ec.State.Interpolate(rest))

		default:
			return result, fmt.Errorf("unrecognized command %q", verb)
		}
	}

	return result, nil
}

// commandPath strips the $ sigil command targets carry.
func commandPath(token string) (string, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 || token[0] != '$' {
		return "", fmt.Errorf("state path must start with $: %q", token)
	}
	return token[1:], nil
}

// parseLiteral decodes a command value: JSON literals (numbers, booleans,
// null, quoted strings, arrays, objects) parse as such, anything else is the
// bare string.
func parseLiteral(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
		return value
	}
	return strings.Trim(trimmed, `"'`)
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case nil:
		return 0, false
	default:
		return 0, false
	}
}

// splitLines splits block content preserving order, without trailing blank
// tail lines.
func splitLines(content string) []string {
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

// commandsToResult converts a command pass into the uniform executor result.
func commandsToResult(cmd commandResult) interfaces.ExecutorResult {
	result := interfaces.ExecutorResult{Success: true}
	if len(cmd.changes) > 0 {
		result.StateChanges = cmd.changes
	}
	if len(cmd.output) > 0 {
		result.Output = strings.Join(cmd.output, "\n")
	}
	result.NextSection = cmd.nextSection
	return result
}
