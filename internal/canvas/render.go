package canvas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

var errModeUnknown = validation.NewError("udos.grid.mode",
	"grid mode is not recognized")

// Service renders view-model input into packaged canonical grids.
type Service struct {
	theme  string
	logger interfaces.Logger
}

// NewService builds a renderer with the default theme stamped into packaged
// headers when the input spec supplies none.
func NewService(theme string, provider interfaces.LoggerProvider) *Service {
	return &Service{
		theme:  theme,
		logger: logging.GridLogger(provider),
	}
}

// RenderGrid dispatches on mode to a pure layout function, draws onto a
// fresh canvas, and packages the result. Safe for concurrent use; no state
// is shared between calls.
func (s *Service) RenderGrid(input interfaces.GridInput) (interfaces.RenderResult, error) {
	layout, ok := layoutRegistry[input.Mode]
	if !ok {
		return interfaces.RenderResult{}, goerrors.
			Wrap(errModeUnknown, goerrors.CategoryValidation, "grid render failed").
			WithTextCode("GRID_MODE_UNKNOWN")
	}

	c := New()
	layout(c, input.Spec, input.Data)

	theme := stringValue(input.Spec, "theme", "")
	if theme == "" {
		theme = s.theme
	}

	return Package(c.Lines(), Metadata{
		Title: stringValue(input.Spec, "title", ""),
		Mode:  string(input.Mode),
		Theme: theme,
		TS:    stringValue(input.Spec, "ts", ""),
	}), nil
}
