package udos

import (
	"context"
	"strings"
	"testing"
)

const scoreScript = `---
title: Score Demo
id: score-demo
stateDefaults: reset
---

## Start

` + "```state\nscore: 10\n```\n\n```nav\nnav end\n```" + `

## End

` + "```panel\n\"Score: $score\"\n```" + `
`

func TestModuleRunsScript(t *testing.T) {
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := module.Runner().Run(context.Background(), scoreScript, "")
	if !result.Success {
		t.Fatalf("run failed: %s", result.Error)
	}
	if result.Output != "Score: 10" {
		t.Fatalf("output = %q", result.Output)
	}
	if result.FinalState["score"] != float64(10) {
		t.Fatalf("final state = %#v", result.FinalState)
	}
}

func TestModuleServicesShareState(t *testing.T) {
	module, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	module.Runtime().Load(scoreScript)
	section := module.Runtime().Execute(context.Background(), "start")
	if !section.Success {
		t.Fatalf("execute failed: %s", section.Error)
	}

	if got, _ := module.State().Get("score"); got != float64(10) {
		t.Fatalf("state not shared across services: %v", got)
	}
	if module.State().Interpolate("have $score") != "have 10" {
		t.Fatalf("interpolation over shared state failed")
	}
}

func TestModuleSpatialAndGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spatial.Anchors = []AnchorConfig{{ID: "HOME", Title: "Home Base"}}

	module, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ref, err := module.Spatial().ParsePlaceRef("HOME:SUR:L305-AA10:D1")
	if err != nil {
		t.Fatalf("ParsePlaceRef: %v", err)
	}
	if ref.Loc.Band != "TERRESTRIAL" {
		t.Fatalf("band = %q", ref.Loc.Band)
	}

	grid, err := module.Grid().RenderGrid(GridInput{
		Mode: "map",
		Spec: map[string]any{"title": "Sector"},
		Data: map[string]any{"cells": map[string]any{"L305-AA10": "X"}},
	})
	if err != nil {
		t.Fatalf("RenderGrid: %v", err)
	}
	if len(grid.Lines) != 30 || len(grid.Lines[0]) != 80 {
		t.Fatalf("grid body is %dx%d", len(grid.Lines[0]), len(grid.Lines))
	}
	if !strings.HasSuffix(grid.RawText, "--- end ---") {
		t.Fatalf("grid footer missing")
	}
}

func TestModuleRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Runner.MaxSections = -1

	if _, err := New(cfg); err == nil {
		t.Fatalf("expected a config validation error")
	}
}
