package runtime

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/internal/markdown"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Runtime executes one section of a loaded document at a time. Each instance
// owns its document, state store, and history exclusively; the execution
// model is single-threaded and cooperative.
type Runtime struct {
	parser  *markdown.Parser
	store   interfaces.StateStore
	factory *Factory
	doc     *interfaces.Document
	history []string
	logger  interfaces.Logger
}

// New wires a runtime over the given parser, store, and executor factory.
func New(parser *markdown.Parser, store interfaces.StateStore, factory *Factory, provider interfaces.LoggerProvider) *Runtime {
	return &Runtime{
		parser:  parser,
		store:   store,
		factory: factory,
		logger:  logging.RuntimeLogger(provider),
	}
}

// Load parses markdown into the runtime's document, resetting execution
// history. A frontmatter stateDefaults of "reset" clears state.
func (r *Runtime) Load(source string) *interfaces.Document {
	doc := r.parser.Parse(source)
	if doc.Frontmatter.StateDefaults == "reset" {
		r.store.Clear()
	}
	r.doc = doc
	r.history = nil
	r.logger.Debug("document loaded", "document", doc.ID, "sections", len(doc.Sections))
	return doc
}

// Document returns the currently loaded document, nil before Load.
func (r *Runtime) Document() *interfaces.Document {
	return r.doc
}

// State exposes the runtime's store.
func (r *Runtime) State() interfaces.StateStore {
	return r.store
}

// Execute runs one section's blocks in document order. Per-block rules:
// a failure halts the section immediately; state changes merge into live
// state before the next block; outputs accumulate newline-joined; a
// nextSection short-circuits the rest and returns with the accumulated
// output. A section completing without navigation returns success with the
// accumulated output.
func (r *Runtime) Execute(ctx context.Context, sectionID string) interfaces.ExecutorResult {
	if r.doc == nil {
		return interfaces.Failure(ErrNoDocument)
	}
	section, ok := r.doc.SectionByID(sectionID)
	if !ok {
		return interfaces.Failure(ErrSectionNotFound)
	}

	ec := &interfaces.ExecutionContext{
		State:     r.store,
		Section:   section,
		History:   append([]string(nil), r.history...),
		Variables: map[string]any{},
	}

	var outputs []string
	var last interfaces.ExecutorResult

	for _, block := range section.Blocks {
		executor, ok := r.factory.Executor(block.Type)
		if !ok {
			return interfaces.Failure(errUnknownBlockType(block.Type))
		}

		ec.Block = block
		result := executor.Execute(ctx, ec, block)

		if !result.Success {
			r.logger.Warn("block failed",
				"section", section.ID,
				"block_type", block.Type,
				"error", result.Error,
			)
			result.Output = joinOutput(outputs, result.Output)
			return result
		}

		if err := r.mergeChanges(result.StateChanges); err != nil {
			return interfaces.Failure(wrapMergeError(block.Type, err))
		}

		if result.Output != "" {
			outputs = append(outputs, result.Output)
		}

		if result.NextSection != "" {
			r.history = append(r.history, section.ID)
			result.Output = strings.Join(outputs, "\n")
			return result
		}

		last = result
	}

	r.history = append(r.history, section.ID)

	last.Success = true
	last.Err = nil
	last.Error = ""
	last.NextSection = ""
	last.Output = strings.Join(outputs, "\n")
	return last
}

// mergeChanges shallow-merges executor state changes into the live store in
// deterministic key order. Keys may be dotted paths.
func (r *Runtime) mergeChanges(changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(changes))
	for key := range changes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := r.store.Set(key, changes[key]); err != nil {
			return err
		}
	}
	return nil
}

func joinOutput(outputs []string, tail string) string {
	if tail != "" {
		outputs = append(outputs, tail)
	}
	return strings.Join(outputs, "\n")
}
