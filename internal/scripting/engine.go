// Package scripting embeds a JavaScript engine for script blocks. Each run
// gets a fresh runtime with a narrow host API over the state store; scripts
// are interrupted when the execution context ends or the timeout elapses.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// ErrInterrupted reports a script halted by cancellation or timeout.
var ErrInterrupted = errors.New("scripting: execution interrupted")

// Result carries what a script handed back to the runtime.
type Result struct {
	Output      []string
	NextSection string
}

// Engine runs script block bodies. The zero timeout disables the deadline.
type Engine struct {
	timeout time.Duration
}

// NewEngine constructs the engine with an optional per-run timeout.
func NewEngine(timeout time.Duration) *Engine {
	return &Engine{timeout: timeout}
}

// Run executes source against a fresh VM exposing the state host object.
// The VM is discarded afterwards; scripts cannot retain state between blocks
// other than through the store.
func (e *Engine) Run(ctx context.Context, source string, store interfaces.StateStore) (Result, error) {
	vm := goja.New()
	result := &Result{}

	if err := bindHostAPI(vm, store, result); err != nil {
		return Result{}, err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			vm.Interrupt(ErrInterrupted)
		case <-done:
		}
	}()

	if _, err := vm.RunString(source); err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return Result{}, ErrInterrupted
		}
		return Result{}, fmt.Errorf("scripting: %w", err)
	}

	return *result, nil
}

func bindHostAPI(vm *goja.Runtime, store interfaces.StateStore, result *Result) error {
	stateAPI := map[string]any{
		"get": func(path string) any {
			value, ok := store.Get(path)
			if !ok {
				return goja.Undefined()
			}
			return value
		},
		"set": func(path string, value goja.Value) {
			if err := store.Set(path, normalize(value.Export())); err != nil {
				panic(vm.ToValue(err.Error()))
			}
		},
		"increment": func(path string) float64 {
			next, err := store.Increment(path)
			if err != nil {
				panic(vm.ToValue(err.Error()))
			}
			return next
		},
		"decrement": func(path string) float64 {
			next, err := store.Decrement(path)
			if err != nil {
				panic(vm.ToValue(err.Error()))
			}
			return next
		},
		"toggle": func(path string) bool {
			next, err := store.Toggle(path)
			if err != nil {
				panic(vm.ToValue(err.Error()))
			}
			return next
		},
		"interpolate": func(text string) string {
			return store.Interpolate(text)
		},
	}

	if err := vm.Set("state", stateAPI); err != nil {
		return err
	}
	if err := vm.Set("output", func(args ...goja.Value) {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = arg.String()
		}
		result.Output = append(result.Output, strings.Join(parts, " "))
	}); err != nil {
		return err
	}
	return vm.Set("navigate", func(section string) {
		result.NextSection = section
	})
}

// normalize coerces goja exports to the JSON-shaped values the store
// accepts. Integers come back as int64 from goja; maps and slices recurse.
func normalize(value any) any {
	switch v := value.(type) {
	case int64:
		return float64(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}
		return out
	default:
		return v
	}
}
