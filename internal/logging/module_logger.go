package logging

import (
	"context"
	"maps"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

const (
	rootModule     = "udos"
	markdownModule = "udos.markdown"
	runtimeModule  = "udos.runtime"
	runnerModule   = "udos.runner"
	stateModule    = "udos.state"
	spatialModule  = "udos.spatial"
	gridModule     = "udos.grid"
)

const (
	fieldDocument = "document"
	fieldSection  = "section"
	fieldBlock    = "block_type"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// MarkdownLogger returns the logger namespace reserved for document parsing.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// RuntimeLogger returns the logger namespace reserved for section execution.
func RuntimeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, runtimeModule)
}

// RunnerLogger returns the logger namespace reserved for document runs.
func RunnerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, runnerModule)
}

// StateLogger returns the logger namespace reserved for the state store.
func StateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, stateModule)
}

// SpatialLogger returns the logger namespace reserved for spatial addressing.
func SpatialLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, spatialModule)
}

// GridLogger returns the logger namespace reserved for grid rendering.
func GridLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, gridModule)
}

// WithExecutionContext enriches the provided logger with common execution
// fields such as document id, section id, and block type. Empty values are
// ignored.
func WithExecutionContext(logger interfaces.Logger, document, section, blockType string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(document); trimmed != "" {
		fields[fieldDocument] = trimmed
	}
	if trimmed := strings.TrimSpace(section); trimmed != "" {
		fields[fieldSection] = trimmed
	}
	if trimmed := strings.TrimSpace(blockType); trimmed != "" {
		fields[fieldBlock] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
