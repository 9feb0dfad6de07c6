package runtime

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-udos/internal/canvas"
	"github.com/goliatone/go-udos/internal/markdown"
	"github.com/goliatone/go-udos/internal/scripting"
	"github.com/goliatone/go-udos/internal/state"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

func newTestRuntime(tb testing.TB) *Runtime {
	tb.Helper()
	factory := NewFactory(Dependencies{
		Grid:          canvas.NewService("mono", nil),
		ScriptEngine:  scripting.NewEngine(time.Second),
		ScriptEnabled: true,
	})
	return New(markdown.NewParser(nil), state.New(nil), factory, nil)
}

func readFixture(tb testing.TB, path string) string {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return string(data)
}

func TestExecuteWithoutDocument(t *testing.T) {
	rt := newTestRuntime(t)

	result := rt.Execute(context.Background(), "start")
	if result.Success {
		t.Fatalf("expected a failure without a loaded document")
	}
	if result.Error != "No document loaded" {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestExecuteSectionNotFound(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load(readFixture(t, "testdata/score.md"))

	result := rt.Execute(context.Background(), "ghost")
	if result.Success {
		t.Fatalf("expected a failure for an unknown section")
	}
	if result.Error != "Section not found" {
		t.Fatalf("error = %q", result.Error)
	}
}

func TestExecuteScoreScenario(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load(readFixture(t, "testdata/score.md"))

	start := rt.Execute(context.Background(), "start")
	if !start.Success {
		t.Fatalf("start failed: %s", start.Error)
	}
	if start.NextSection != "end" {
		t.Fatalf("start should navigate to end, got %q", start.NextSection)
	}
	if score, _ := rt.State().Get("score"); score != float64(10) {
		t.Fatalf("score = %v", score)
	}

	end := rt.Execute(context.Background(), "end")
	if !end.Success {
		t.Fatalf("end failed: %s", end.Error)
	}
	if end.Output != "Score: 10" {
		t.Fatalf("output = %q", end.Output)
	}
	if end.NextSection != "" {
		t.Fatalf("end should not navigate, got %q", end.NextSection)
	}
}

func TestLoadResetsStateOnDemand(t *testing.T) {
	rt := newTestRuntime(t)
	if err := rt.State().Set("leftover", "stale"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	rt.Load(readFixture(t, "testdata/score.md"))
	if _, ok := rt.State().Get("leftover"); ok {
		t.Fatalf("stateDefaults: reset should clear prior state")
	}

	// Without the reset directive prior state survives a load.
	if err := rt.State().Set("leftover", "kept"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	rt.Load("## Solo\n\n```panel\nhi\n```\n")
	if value, ok := rt.State().Get("leftover"); !ok || value != "kept" {
		t.Fatalf("load without reset dropped state: %v %v", value, ok)
	}
}

func TestExecuteHaltsOnFirstFailure(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load("## Broken\n\n```panel\nbefore\n```\n\n```set\nfrobnicate $x\n```\n\n```panel\nafter\n```\n")

	result := rt.Execute(context.Background(), "broken")
	if result.Success {
		t.Fatalf("expected the malformed set block to fail the section")
	}
	if !strings.Contains(result.Output, "before") {
		t.Fatalf("output should keep work done before the failure: %q", result.Output)
	}
	if strings.Contains(result.Output, "after") {
		t.Fatalf("blocks after the failure must not run: %q", result.Output)
	}
}

func TestExecuteMergesChangesBetweenBlocks(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load("## Chain\n\n```set\nset $score 1\n```\n\n```set\nincrement $score\n```\n\n```panel\nScore: $score\n```\n")

	result := rt.Execute(context.Background(), "chain")
	if !result.Success {
		t.Fatalf("chain failed: %s", result.Error)
	}
	if result.Output != "Score: 2" {
		t.Fatalf("output = %q", result.Output)
	}
}

func TestExecuteNavShortCircuits(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load("## Jump\n\n```panel\nseen\n```\n\n```nav\nnav target\n```\n\n```panel\nnever\n```\n\n## Target\n")

	result := rt.Execute(context.Background(), "jump")
	if !result.Success {
		t.Fatalf("jump failed: %s", result.Error)
	}
	if result.NextSection != "target" {
		t.Fatalf("next section = %q", result.NextSection)
	}
	if result.Output != "seen" {
		t.Fatalf("output = %q", result.Output)
	}
}

func TestExecuteIfElse(t *testing.T) {
	rt := newTestRuntime(t)
	source := "## Gate\n\n" +
		"```set\nset $score 3\n```\n\n" +
		"```if\n$score > 5\noutput high\n```\n\n" +
		"```else\noutput low\n```\n"
	rt.Load(source)

	result := rt.Execute(context.Background(), "gate")
	if !result.Success {
		t.Fatalf("gate failed: %s", result.Error)
	}
	if result.Output != "low" {
		t.Fatalf("output = %q", result.Output)
	}
}

func TestExecuteIfTakenSkipsElse(t *testing.T) {
	rt := newTestRuntime(t)
	source := "## Gate\n\n" +
		"```set\nset $score 9\n```\n\n" +
		"```if\n$score > 5\noutput high\n```\n\n" +
		"```else\noutput low\n```\n"
	rt.Load(source)

	result := rt.Execute(context.Background(), "gate")
	if !result.Success {
		t.Fatalf("gate failed: %s", result.Error)
	}
	if result.Output != "high" {
		t.Fatalf("output = %q", result.Output)
	}
}

func TestExecuteElseWithoutIfFails(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load("## Oops\n\n```else\noutput never\n```\n")

	result := rt.Execute(context.Background(), "oops")
	if result.Success {
		t.Fatalf("else without a preceding if should fail")
	}
}

func TestExecuteRecordsHistory(t *testing.T) {
	rt := newTestRuntime(t)
	rt.Load(readFixture(t, "testdata/score.md"))

	rt.Execute(context.Background(), "start")
	result := rt.Execute(context.Background(), "end")
	if !result.Success {
		t.Fatalf("end failed: %s", result.Error)
	}

	// A failing call leaves history untouched.
	rt.Execute(context.Background(), "ghost")
	final := rt.Execute(context.Background(), "end")
	if !final.Success {
		t.Fatalf("end failed: %s", final.Error)
	}
}

func TestFactoryRejectsUnknownBlockType(t *testing.T) {
	factory := NewFactory(Dependencies{})

	if _, ok := factory.Executor("bogus"); ok {
		t.Fatalf("unknown block type resolved to an executor")
	}
	for _, kind := range interfaces.KnownBlockTypes() {
		if _, ok := factory.Executor(kind); !ok {
			t.Fatalf("missing executor for %q", kind)
		}
	}
}
