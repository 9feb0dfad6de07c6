package spatial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// layerBands fixes the partition of base layers. Layers outside every band
// are invalid.
var layerBands = []struct {
	min, max int
	band     interfaces.LayerBand
}{
	{300, 305, interfaces.BandTerrestrial},
	{306, 399, interfaces.BandRegional},
	{400, 499, interfaces.BandCities},
	{500, 599, interfaces.BandNations},
	{600, 699, interfaces.BandPlanetary},
	{700, 799, interfaces.BandOrbital},
	{800, 899, interfaces.BandStellar},
}

// BandForLayer classifies a base layer, reporting false when the layer falls
// outside every known band.
func BandForLayer(layer int) (interfaces.LayerBand, bool) {
	for _, entry := range layerBands {
		if layer >= entry.min && layer <= entry.max {
			return entry.band, true
		}
	}
	return "", false
}

// ParseLocID parses a canonical LocId string (L<layer>-<cell>[-<cell>...])
// into its layer, refinement cells, and band. The band derives purely from
// the base layer.
func ParseLocID(value string) (interfaces.LocID, error) {
	parts := strings.Split(value, "-")
	if len(parts) < 2 || len(parts[0]) != 4 || parts[0][0] != 'L' {
		return interfaces.LocID{}, wrapValidation(errLocSyntax)
	}

	layer, err := strconv.Atoi(parts[0][1:])
	if err != nil {
		return interfaces.LocID{}, wrapValidation(errLocSyntax)
	}

	cells := parts[1:]
	for _, cell := range cells {
		if !isLocCell(cell) {
			return interfaces.LocID{}, wrapValidation(errLocCellShape)
		}
	}

	band, ok := BandForLayer(layer)
	if !ok {
		return interfaces.LocID{}, wrapValidation(errLayerBand)
	}

	return interfaces.LocID{
		BaseLayer: layer,
		Depth:     len(cells),
		Cells:     append([]string(nil), cells...),
		Cell:      cells[len(cells)-1],
		Band:      band,
	}, nil
}

// FormatLocID renders the canonical string form. For any syntactically valid
// canonical input x, FormatLocID(ParseLocID(x)) == x.
func FormatLocID(loc interfaces.LocID) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "L%03d", loc.BaseLayer)
	for _, cell := range loc.Cells {
		sb.WriteByte('-')
		sb.WriteString(cell)
	}
	return sb.String()
}
