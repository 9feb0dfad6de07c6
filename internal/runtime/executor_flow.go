package runtime

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// lastConditionVar is the transient context slot pairing an else block with
// the closest preceding if in the same section pass.
const lastConditionVar = "lastCondition"

// ifExecutor evaluates its first line as a condition and, when true, runs
// the remaining lines through the command dialect.
type ifExecutor struct{}

func (*ifExecutor) Kind() interfaces.BlockType { return interfaces.BlockIf }

func (*ifExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	lines := splitLines(block.Content)
	condition, rest := firstContentLine(lines)
	if condition == "" {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("if block needs a condition line")))
	}

	truthy, err := evalCondition(ec, condition)
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	ec.Variables[lastConditionVar] = truthy

	if !truthy {
		return interfaces.ExecutorResult{Success: true}
	}

	cmd, err := runCommands(ec, rest)
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	return commandsToResult(cmd)
}

// elseExecutor runs its commands when the preceding if evaluated false.
// An else without a preceding if in the same section pass is malformed.
type elseExecutor struct{}

func (*elseExecutor) Kind() interfaces.BlockType { return interfaces.BlockElse }

func (*elseExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	last, ok := ec.Variables[lastConditionVar].(bool)
	if !ok {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("else block without a preceding if")))
	}
	delete(ec.Variables, lastConditionVar)

	if last {
		return interfaces.ExecutorResult{Success: true}
	}

	cmd, err := runCommands(ec, splitLines(block.Content))
	if err != nil {
		return interfaces.Failure(wrapBlockError(block.Type, err))
	}
	return commandsToResult(cmd)
}

// navExecutor short-circuits the section toward another one.
type navExecutor struct{}

func (*navExecutor) Kind() interfaces.BlockType { return interfaces.BlockNav }

func (*navExecutor) Execute(_ context.Context, ec *interfaces.ExecutionContext, block interfaces.Block) interfaces.ExecutorResult {
	target, _ := firstContentLine(splitLines(block.Content))
	target = strings.TrimPrefix(target, "nav ")
	target = strings.TrimSpace(ec.State.Interpolate(target))
	if target == "" {
		return interfaces.Failure(wrapBlockError(block.Type,
			fmt.Errorf("nav block needs a target section id")))
	}
	return interfaces.ExecutorResult{Success: true, NextSection: target}
}

// evalCondition evaluates "$path", "$path <op> literal" with ==, !=, >, >=,
// <, <=. A bare path is truthy when present and neither false, 0, "", nor
// null.
func evalCondition(ec *interfaces.ExecutionContext, condition string) (bool, error) {
	fields := strings.Fields(condition)
	switch len(fields) {
	case 1:
		path, err := commandPath(fields[0])
		if err != nil {
			return false, err
		}
		value, ok := ec.State.Get(path)
		if !ok {
			return false, nil
		}
		return truthy(value), nil
	case 3:
		path, err := commandPath(fields[0])
		if err != nil {
			return false, err
		}
		left, _ := ec.State.Get(path)
		right := parseLiteral(ec.State.Interpolate(fields[2]))
		return compare(left, fields[1], right)
	default:
		return false, fmt.Errorf("condition must be $path or $path <op> value: %q", condition)
	}
}

func compare(left any, op string, right any) (bool, error) {
	if leftNum, lok := asNumber(left); lok {
		if rightNum, rok := asNumber(right); rok {
			switch op {
			case "==":
				return leftNum == rightNum, nil
			case "!=":
				return leftNum != rightNum, nil
			case ">":
				return leftNum > rightNum, nil
			case ">=":
				return leftNum >= rightNum, nil
			case "<":
				return leftNum < rightNum, nil
			case "<=":
				return leftNum <= rightNum, nil
			}
			return false, fmt.Errorf("unrecognized operator %q", op)
		}
	}

	leftText := fmt.Sprint(left)
	rightText := fmt.Sprint(right)
	switch op {
	case "==":
		return leftText == rightText, nil
	case "!=":
		return leftText != rightText, nil
	case ">":
		return leftText > rightText, nil
	case ">=":
		return leftText >= rightText, nil
	case "<":
		return leftText < rightText, nil
	case "<=":
		return leftText <= rightText, nil
	default:
		return false, fmt.Errorf("unrecognized operator %q", op)
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return true
	}
}

// firstContentLine returns the first non-blank line and the lines after it.
func firstContentLine(lines []string) (string, []string) {
	for i, raw := range lines {
		if line := strings.TrimSpace(raw); line != "" {
			return line, lines[i+1:]
		}
	}
	return "", nil
}
