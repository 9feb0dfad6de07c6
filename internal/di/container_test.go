package di

import (
	"errors"
	"testing"

	"github.com/goliatone/go-udos/internal/runtimeconfig"
	"github.com/goliatone/go-udos/internal/spatial"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

func TestNewContainer(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.State() == nil || container.Parser() == nil {
		t.Fatalf("core services missing")
	}
	if container.Spatial() == nil || container.Grid() == nil {
		t.Fatalf("spatial or grid service missing")
	}
	if container.Runtime() == nil || container.Runner() == nil {
		t.Fatalf("runtime services missing")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Grid.Theme = ""

	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrGridThemeRequired) {
		t.Fatalf("expected theme validation failure, got %v", err)
	}
}

func TestNewContainerSeedsAnchors(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Spatial.Anchors = []runtimeconfig.AnchorConfig{
		{ID: "HOME", Title: "Home Base"},
		{ID: "OUTPOST", Status: "inactive"},
	}

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	anchors := container.Spatial().Anchors()
	home, ok := anchors.Get("HOME")
	if !ok || !home.Active() {
		t.Fatalf("seed anchor missing or inactive: %+v", home)
	}
	outpost, ok := anchors.Get("OUTPOST")
	if !ok || outpost.Active() {
		t.Fatalf("inactive seed anchor mishandled: %+v", outpost)
	}
}

func TestNewContainerHonorsInjectedRegistry(t *testing.T) {
	registry := spatial.NewMemoryAnchorRegistry()
	if err := registry.Register(interfaces.Anchor{ID: "LAB"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithAnchorRegistry(registry))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if _, ok := container.Spatial().Anchors().Get("LAB"); !ok {
		t.Fatalf("injected registry was replaced")
	}
}
