package runtimeconfig

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var anchorIDPattern = regexp.MustCompile(`^[A-Z_]+$`)

// ErrMaxSectionsInvalid rejects non-positive runner bounds.
var ErrMaxSectionsInvalid = errors.New("udos config: runner max sections must be positive")

// ErrScriptTimeoutInvalid rejects negative script timeouts.
var ErrScriptTimeoutInvalid = errors.New("udos config: script timeout must be zero or positive")

// ErrLoggingProviderUnknown rejects unsupported logging providers.
var ErrLoggingProviderUnknown = errors.New("udos config: logging provider is invalid")

// ErrGridThemeRequired rejects empty grid themes; the theme name appears in
// packaged output headers and must be stable.
var ErrGridThemeRequired = errors.New("udos config: grid theme is required")

// DefaultMaxSections is the runner loop-protection bound. It is a policy
// constant: callers may raise it through RunnerConfig but never disable it.
const DefaultMaxSections = 50

// Config aggregates feature toggles and adapter bindings for the runtime
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Runner  RunnerConfig
	Script  ScriptConfig
	Storage StorageConfig
	Spatial SpatialConfig
	Grid    GridConfig
	Logging LoggingConfig
}

// RunnerConfig bounds DocumentRunner traversal.
type RunnerConfig struct {
	// MaxSections caps the number of sections a single run may visit.
	MaxSections int
}

// ScriptConfig controls the embedded script block engine.
type ScriptConfig struct {
	Enabled bool
	Timeout time.Duration
}

// StorageConfig wires the sqlite-backed store used by sql blocks. An empty
// DSN leaves sql blocks unconfigured; executing one then fails explicitly.
type StorageConfig struct {
	DSN string
}

// SpatialConfig seeds the anchor registry.
type SpatialConfig struct {
	Anchors []AnchorConfig
}

// AnchorConfig declares one seed anchor. Status defaults to "active".
type AnchorConfig struct {
	ID     string
	Title  string
	Type   string
	Status string
}

// GridConfig captures rendering defaults surfaced in packaged grid headers.
type GridConfig struct {
	Theme string
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the baseline configuration used when hosts supply
// nothing.
func DefaultConfig() Config {
	return Config{
		Runner: RunnerConfig{MaxSections: DefaultMaxSections},
		Script: ScriptConfig{Enabled: true, Timeout: 5 * time.Second},
		Grid:   GridConfig{Theme: "mono"},
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate normalizes and checks the configuration, returning the first
// sentinel violated.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Runner.MaxSections <= 0 {
		return ErrMaxSectionsInvalid
	}
	if c.Script.Timeout < 0 {
		return ErrScriptTimeoutInvalid
	}
	switch c.Logging.Provider {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}
	if c.Grid.Theme == "" {
		return ErrGridThemeRequired
	}
	for i := range c.Spatial.Anchors {
		if err := c.Spatial.Anchors[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a seed anchor declaration.
func (a AnchorConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ID, validation.Required,
			validation.Match(anchorIDPattern).
				ErrorObject(validation.NewError("udos.config.anchor_id", "anchor id must be uppercase letters or underscores"))),
		validation.Field(&a.Status, validation.In("", "active", "inactive").
			ErrorObject(validation.NewError("udos.config.anchor_status", "anchor status must be active or inactive"))),
	)
}
