package spatial

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

const spatialValidationCode = "SPATIAL_VALIDATION_FAILED"

// Constraint errors name the exact check that failed so callers can present
// actionable messages without string matching.
var (
	errCellSyntax = validation.NewError("udos.spatial.cell_syntax",
		"cell must be uppercase letters followed by digits")
	errLocSyntax = validation.NewError("udos.spatial.locid_syntax",
		"locId must be L<3-digit layer> followed by -<cell> refinements")
	errLocCellShape = validation.NewError("udos.spatial.locid_cell",
		"locId cells must be two uppercase letters and two digits")
	errLayerBand = validation.NewError("udos.spatial.layer_band",
		"layer does not fall inside a known band")
	errPlaceSyntax = validation.NewError("udos.spatial.placeref_syntax",
		"placeRef must be ANCHOR:SPACE:LOCID with optional :D and :I suffixes")
	errSpaceUnknown = validation.NewError("udos.spatial.space",
		"space is not a recognized realm")
	errDepthInvalid = validation.NewError("udos.spatial.depth",
		"depth suffix must be a non-negative integer")
	errInstanceInvalid = validation.NewError("udos.spatial.instance",
		"instance suffix must be a non-negative integer")
	errAnchorUnknown = validation.NewError("udos.spatial.anchor_unknown",
		"anchor is not registered")
	errAnchorInactive = validation.NewError("udos.spatial.anchor_inactive",
		"anchor is not active")
)

// wrapValidation envelopes a constraint error in the shared error taxonomy.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "spatial validation failed").
		WithTextCode(spatialValidationCode)
}
