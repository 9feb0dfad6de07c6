package udos

import "github.com/goliatone/go-udos/internal/runtimeconfig"

var (
	ErrMaxSectionsInvalid     = runtimeconfig.ErrMaxSectionsInvalid
	ErrScriptTimeoutInvalid   = runtimeconfig.ErrScriptTimeoutInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrGridThemeRequired      = runtimeconfig.ErrGridThemeRequired
)

type (
	Config        = runtimeconfig.Config
	RunnerConfig  = runtimeconfig.RunnerConfig
	ScriptConfig  = runtimeconfig.ScriptConfig
	StorageConfig = runtimeconfig.StorageConfig
	SpatialConfig = runtimeconfig.SpatialConfig
	AnchorConfig  = runtimeconfig.AnchorConfig
	GridConfig    = runtimeconfig.GridConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultMaxSections is the runner loop-protection bound.
const DefaultMaxSections = runtimeconfig.DefaultMaxSections

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
