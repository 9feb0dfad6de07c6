package spatial

import (
	"testing"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		token string
		want  interfaces.Cell
	}{
		{"AA10", interfaces.Cell{Col: 0, Row: 10}},
		{"AB10", interfaces.Cell{Col: 1, Row: 10}},
		{"AZ05", interfaces.Cell{Col: 25, Row: 5}},
		{"BA01", interfaces.Cell{Col: 26, Row: 1}},
		{"A5", interfaces.Cell{Col: 0, Row: 5}},
		{"B0", interfaces.Cell{Col: 1, Row: 0}},
		{"ZZ99", interfaces.Cell{Col: 675, Row: 99}},
	}

	for _, tc := range cases {
		got, err := ParseCell(tc.token)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCell(%q) = %+v, want %+v", tc.token, got, tc.want)
		}
	}
}

func TestParseCellRejectsMalformedTokens(t *testing.T) {
	for _, token := range []string{"", "AA", "10", "10A", "aa10", "A1B2"} {
		if _, err := ParseCell(token); err == nil {
			t.Fatalf("ParseCell(%q) should fail", token)
		}
	}
}
