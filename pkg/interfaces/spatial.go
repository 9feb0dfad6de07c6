package interfaces

// LayerBand partitions LocId base layers into named ranges.
type LayerBand string

const (
	BandTerrestrial LayerBand = "TERRESTRIAL"
	BandRegional    LayerBand = "REGIONAL"
	BandCities      LayerBand = "CITIES"
	BandNations     LayerBand = "NATIONS"
	BandPlanetary   LayerBand = "PLANETARY"
	BandOrbital     LayerBand = "ORBITAL"
	BandStellar     LayerBand = "STELLAR"
)

// Cell is a spreadsheet-style grid coordinate decoded from a token like
// "AA10": base-26 letters (AA is column zero) plus an integer row.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// LocID is a fractal, layer-banded spatial coordinate. Depth is the number of
// cell refinements; Cell is the deepest one.
type LocID struct {
	BaseLayer int       `json:"base_layer"`
	Depth     int       `json:"depth"`
	Cells     []string  `json:"cells"`
	Cell      string    `json:"cell"`
	Band      LayerBand `json:"band"`
}

// PlaceRef is a fully qualified spatial reference scoping a LocId under a
// registered anchor and a space realm, with optional depth and instance
// suffixes (-1 when absent).
type PlaceRef struct {
	AnchorID string `json:"anchor_id"`
	Space    string `json:"space"`
	Loc      LocID  `json:"loc"`
	Depth    int    `json:"depth"`
	Instance int    `json:"instance"`
}

// Anchor is a registered named root (world, catalog, celestial body) that
// PlaceRefs are scoped under.
type Anchor struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Active reports whether the anchor can be referenced by new PlaceRefs.
func (a Anchor) Active() bool {
	return a.Status == "active"
}

// AnchorRegistry resolves and manages the anchors PlaceRef validation
// consults.
type AnchorRegistry interface {
	Register(anchor Anchor) error
	Get(id string) (Anchor, bool)
	List() []Anchor
	Deactivate(id string) error
}
