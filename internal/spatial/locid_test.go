package spatial

import (
	"testing"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

func TestBandForLayer(t *testing.T) {
	cases := []struct {
		layer int
		band  interfaces.LayerBand
		ok    bool
	}{
		{300, interfaces.BandTerrestrial, true},
		{305, interfaces.BandTerrestrial, true},
		{306, interfaces.BandRegional, true},
		{450, interfaces.BandCities, true},
		{599, interfaces.BandNations, true},
		{600, interfaces.BandPlanetary, true},
		{799, interfaces.BandOrbital, true},
		{800, interfaces.BandStellar, true},
		{899, interfaces.BandStellar, true},
		{199, "", false},
		{299, "", false},
		{900, "", false},
	}

	for _, tc := range cases {
		band, ok := BandForLayer(tc.layer)
		if ok != tc.ok || band != tc.band {
			t.Fatalf("BandForLayer(%d) = %q, %v; want %q, %v", tc.layer, band, ok, tc.band, tc.ok)
		}
	}
}

func TestParseLocID(t *testing.T) {
	loc, err := ParseLocID("L305-AA10-BB12")
	if err != nil {
		t.Fatalf("ParseLocID: %v", err)
	}
	if loc.BaseLayer != 305 {
		t.Fatalf("BaseLayer = %d", loc.BaseLayer)
	}
	if loc.Band != interfaces.BandTerrestrial {
		t.Fatalf("Band = %q", loc.Band)
	}
	if loc.Depth != 2 {
		t.Fatalf("Depth = %d", loc.Depth)
	}
	if loc.Cell != "BB12" {
		t.Fatalf("Cell = %q", loc.Cell)
	}
	if len(loc.Cells) != 2 || loc.Cells[0] != "AA10" {
		t.Fatalf("Cells = %#v", loc.Cells)
	}
}

func TestParseLocIDRejectsInvalidInput(t *testing.T) {
	for _, value := range []string{
		"",
		"L305",
		"305-AA10",
		"L30-AA10",
		"L199-AA10",
		"L900-AA10",
		"L305-AAA1",
		"L305-aa10",
		"L305-AA1",
		"LXXX-AA10",
	} {
		if _, err := ParseLocID(value); err == nil {
			t.Fatalf("ParseLocID(%q) should fail", value)
		}
	}
}

func TestLocIDRoundTrip(t *testing.T) {
	for _, value := range []string{
		"L300-AA10",
		"L305-AA10-BB12",
		"L450-ZZ99-AB00-CD34",
		"L899-BA01",
	} {
		loc, err := ParseLocID(value)
		if err != nil {
			t.Fatalf("ParseLocID(%q): %v", value, err)
		}
		if got := FormatLocID(loc); got != value {
			t.Fatalf("round trip of %q produced %q", value, got)
		}
	}
}
