package interfaces

// Grid geometry and framing constants for the canonical text output format.
const (
	GridWidth     = 80
	GridHeight    = 30
	GridHeader    = "--- udos-grid:v1"
	GridDelimiter = "---"
	GridFooter    = "--- end ---"
)

// GridMode selects the layout renderer applied to a render request.
type GridMode string

const (
	ModeCalendar  GridMode = "calendar"
	ModeTable     GridMode = "table"
	ModeSchedule  GridMode = "schedule"
	ModeMap       GridMode = "map"
	ModeDashboard GridMode = "dashboard"
	ModeWorkflow  GridMode = "workflow"
)

// GridInput is the view-model consumed by RenderGrid. Spec carries layout
// directives (title, theme, ts, mode-specific keys); Data carries the rows,
// cells, or entries being rendered. Rendering is pure: identical input yields
// byte-identical output, and nothing outside Spec may introduce variance.
type GridInput struct {
	Mode GridMode       `json:"mode"`
	Spec map[string]any `json:"spec,omitempty"`
	Data map[string]any `json:"data,omitempty"`
}

// RenderResult is the canonical packaged grid: a metadata header, exactly 30
// body lines of exactly 80 visible characters, and the assembled raw text.
// It is a pure value, never mutated after construction.
type RenderResult struct {
	Header  string   `json:"header"`
	Lines   []string `json:"lines"`
	RawText string   `json:"raw_text"`
}
