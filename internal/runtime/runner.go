package runtime

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/internal/runtimeconfig"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Runner drives Runtime.Execute across nextSection chains with loop
// protection: revisiting a section, or visiting more than the configured
// bound, aborts with an explicit error carrying the partial trail.
type Runner struct {
	runtime     *Runtime
	maxSections int
	logger      interfaces.Logger
}

// NewRunner wires a runner around a runtime. Non-positive bounds fall back
// to the policy default; the bound is never unlimited.
func NewRunner(rt *Runtime, maxSections int, provider interfaces.LoggerProvider) *Runner {
	if maxSections <= 0 {
		maxSections = runtimeconfig.DefaultMaxSections
	}
	return &Runner{
		runtime:     rt,
		maxSections: maxSections,
		logger:      logging.RunnerLogger(provider),
	}
}

// Runtime exposes the wrapped runtime.
func (r *Runner) Runtime() *Runtime {
	return r.runtime
}

// Run loads the document and executes from sectionID (or the first section
// when empty), following navigation until a section completes without a
// nextSection. Failures propagate immediately with the partial section trail
// and history attached.
func (r *Runner) Run(ctx context.Context, source, sectionID string) interfaces.RunnerResult {
	result := interfaces.RunnerResult{RunID: uuid.New().String()}

	doc := r.runtime.Load(source)
	if len(doc.Sections) == 0 {
		return runnerFailure(result, interfaces.Failure(ErrSectionNotFound))
	}

	current := sectionID
	if current == "" {
		current = doc.Sections[0].ID
	}

	visited := map[string]bool{}
	var outputs []string

	for {
		if visited[current] {
			err := wrapLoopError(ErrNavigationLoop, current, len(visited))
			r.logger.Warn("navigation loop detected", "section", current, "visited", len(visited))
			return runnerFailure(result, interfaces.Failure(err))
		}
		visited[current] = true
		if len(visited) > r.maxSections {
			err := wrapLoopError(ErrSectionLimit, current, len(visited))
			return runnerFailure(result, interfaces.Failure(err))
		}

		sectionResult := r.runtime.Execute(ctx, current)
		result.ExecutedSections = append(result.ExecutedSections, current)
		result.History = append(result.History, interfaces.SectionRun{
			Section: current,
			Result:  sectionResult,
		})

		if !sectionResult.Success {
			return runnerFailure(result, sectionResult)
		}
		if sectionResult.Output != "" {
			outputs = append(outputs, sectionResult.Output)
		}

		if sectionResult.NextSection == "" {
			break
		}
		current = sectionResult.NextSection
	}

	result.Success = true
	result.Output = strings.Join(outputs, "\n")
	if snapshot, err := r.runtime.State().Snapshot(); err == nil {
		result.FinalState = snapshot
	}
	r.logger.Debug("run complete", "run_id", result.RunID, "sections", len(result.ExecutedSections))
	return result
}

func runnerFailure(result interfaces.RunnerResult, cause interfaces.ExecutorResult) interfaces.RunnerResult {
	result.Success = false
	result.Err = cause.Err
	result.Error = cause.Error
	result.Output = cause.Output
	return result
}
