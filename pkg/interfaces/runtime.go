package interfaces

import "context"

// BlockType identifies the executable dialect of a fenced block. The set is
// closed: a type outside this enum must fail execution loudly rather than
// no-op.
type BlockType string

const (
	BlockState  BlockType = "state"
	BlockSet    BlockType = "set"
	BlockForm   BlockType = "form"
	BlockIf     BlockType = "if"
	BlockElse   BlockType = "else"
	BlockNav    BlockType = "nav"
	BlockPanel  BlockType = "panel"
	BlockMap    BlockType = "map"
	BlockScript BlockType = "script"
	BlockSQL    BlockType = "sql"
)

// KnownBlockTypes lists every recognized block type in declaration order.
func KnownBlockTypes() []BlockType {
	return []BlockType{
		BlockState, BlockSet, BlockForm, BlockIf, BlockElse,
		BlockNav, BlockPanel, BlockMap, BlockScript, BlockSQL,
	}
}

// IsKnownBlockType reports whether t belongs to the closed block enum.
func IsKnownBlockType(t BlockType) bool {
	for _, known := range KnownBlockTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Block is a typed, fenced sub-document embedded in a Section. Content stays
// verbatim and unparsed until the matching executor runs, so malformed bodies
// in never-executed branches cannot break document loading.
type Block struct {
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
}

// Section is a ##-delimited region of a Document holding prose and zero or
// more runtime blocks. The id is the slugified title; uniqueness is not
// enforced and lookups resolve to the first match.
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Blocks  []Block `json:"blocks"`
}

// Frontmatter carries the flat scalar metadata parsed from the leading
// delimited block. Missing or malformed frontmatter yields the zero value
// with defaults applied; parsing never fails the document.
type Frontmatter struct {
	Title         string            `json:"title,omitempty"`
	ID            string            `json:"id,omitempty"`
	Version       string            `json:"version,omitempty"`
	Runtime       string            `json:"runtime,omitempty"`
	Mode          string            `json:"mode,omitempty"`
	StateDefaults string            `json:"state_defaults,omitempty"`
	Custom        map[string]string `json:"custom,omitempty"`
}

// Document is the parsed form of a markdown script. It is immutable once
// parsed and owned by the Runtime for its lifetime.
type Document struct {
	ID          string      `json:"id"`
	Frontmatter Frontmatter `json:"frontmatter"`
	Sections    []Section   `json:"sections"`
	Raw         string      `json:"-"`
}

// SectionByID returns the first section whose id matches, preserving the
// first-match resolution rule for duplicate slugs.
func (d *Document) SectionByID(id string) (Section, bool) {
	if d == nil {
		return Section{}, false
	}
	for _, section := range d.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// ExecutorResult is the uniform outcome value returned by block execution and
// by Runtime/DocumentRunner calls. Expected failures are reported here, never
// raised across the public API.
type ExecutorResult struct {
	Success      bool           `json:"success"`
	Err          error          `json:"-"`
	Error        string         `json:"error,omitempty"`
	Output       string         `json:"output,omitempty"`
	StateChanges map[string]any `json:"state_changes,omitempty"`
	NextSection  string         `json:"next_section,omitempty"`
}

// Failure builds a failed result carrying both the structured error and its
// rendered message.
func Failure(err error) ExecutorResult {
	result := ExecutorResult{Success: false, Err: err}
	if err != nil {
		result.Error = err.Error()
	}
	return result
}

// WatchFunc observes a state mutation on a watched path.
type WatchFunc func(path string, value, previous any)

// StateStore is the path-addressable mutable variable tree shared by block
// executors within a Runtime instance. Values are constrained to JSON-shaped
// data; snapshots are deep copies so callers can never mutate live state.
type StateStore interface {
	Get(path string) (any, bool)
	Set(path string, value any) error
	Increment(path string) (float64, error)
	Decrement(path string) (float64, error)
	Toggle(path string) (bool, error)
	Interpolate(text string) string
	Watch(path string, fn WatchFunc) (unsubscribe func())
	Snapshot() (map[string]any, error)
	Restore(snapshot map[string]any) error
	Clear()
}

// ExecutionContext is created fresh for every Runtime.Execute call and passed
// by reference through the executor chain; it is never retained afterwards.
type ExecutionContext struct {
	State   StateStore
	Section Section
	History []string
	// Variables holds per-call transient values executors use to talk to
	// each other (e.g. the last evaluated condition for if/else pairing).
	Variables map[string]any
	Block     Block
}

// Executor runs a single block kind against an execution context.
type Executor interface {
	Kind() BlockType
	Execute(ctx context.Context, ec *ExecutionContext, block Block) ExecutorResult
}

// SectionRun records one section execution inside a runner pass.
type SectionRun struct {
	Section string         `json:"section"`
	Result  ExecutorResult `json:"result"`
}

// RunnerResult aggregates a DocumentRunner pass across nextSection chains.
// On failure ExecutedSections and History still carry the partial trail for
// diagnostics.
type RunnerResult struct {
	RunID            string         `json:"run_id"`
	Success          bool           `json:"success"`
	Err              error          `json:"-"`
	Error            string         `json:"error,omitempty"`
	Output           string         `json:"output,omitempty"`
	ExecutedSections []string       `json:"sections"`
	History          []SectionRun   `json:"history,omitempty"`
	FinalState       map[string]any `json:"final_state,omitempty"`
}
