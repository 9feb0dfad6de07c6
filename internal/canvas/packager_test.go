package canvas

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

func TestPackagePadsAndTruncates(t *testing.T) {
	input := []string{
		"short",
		strings.Repeat("x", interfaces.GridWidth+20),
		"tab\there",
	}

	result := Package(input, Metadata{})

	if len(result.Lines) != interfaces.GridHeight {
		t.Fatalf("expected %d body lines, got %d", interfaces.GridHeight, len(result.Lines))
	}
	for i, line := range result.Lines {
		if len(line) != interfaces.GridWidth {
			t.Fatalf("body line %d has %d characters", i, len(line))
		}
	}
	if !strings.HasPrefix(result.Lines[0], "short ") {
		t.Fatalf("short line not padded: %q", result.Lines[0])
	}
	if result.Lines[1] != strings.Repeat("x", interfaces.GridWidth) {
		t.Fatalf("long line not truncated")
	}
	if strings.Contains(result.Lines[2], "\t") {
		t.Fatalf("tab survived packaging: %q", result.Lines[2])
	}
}

func TestPackageCountsRunesNotBytes(t *testing.T) {
	exact := "café " + strings.Repeat("x", interfaces.GridWidth-5)
	long := strings.Repeat("é", interfaces.GridWidth+3)

	result := Package([]string{exact, long, "crème"}, Metadata{})

	if result.Lines[0] != exact {
		t.Fatalf("80-rune line was altered: %q", result.Lines[0])
	}
	if result.Lines[1] != strings.Repeat("é", interfaces.GridWidth) {
		t.Fatalf("multibyte line not truncated by rune count")
	}
	for i, line := range result.Lines[:3] {
		if got := utf8.RuneCountInString(line); got != interfaces.GridWidth {
			t.Fatalf("body line %d has %d visible characters: %q", i, got, line)
		}
	}
}

func TestPackageHeaderAndFooter(t *testing.T) {
	result := Package(nil, Metadata{
		Title: "Mission Map",
		Mode:  "map",
		Theme: "mono",
		TS:    "2026-02-01T00:00:00Z",
	})

	headerLines := strings.Split(result.Header, "\n")
	want := []string{
		interfaces.GridHeader,
		"size: 80x30",
		"title: Mission Map",
		"mode: map",
		"theme: mono",
		"ts: 2026-02-01T00:00:00Z",
		interfaces.GridDelimiter,
	}
	if len(headerLines) != len(want) {
		t.Fatalf("header has %d lines: %q", len(headerLines), result.Header)
	}
	for i, line := range headerLines {
		if line != want[i] {
			t.Fatalf("header line %d = %q, want %q", i, line, want[i])
		}
	}

	if !strings.HasSuffix(result.RawText, interfaces.GridFooter) {
		t.Fatalf("raw text missing footer")
	}
	bodyAndFooter := strings.TrimPrefix(result.RawText, result.Header+"\n")
	lines := strings.Split(bodyAndFooter, "\n")
	if len(lines) != interfaces.GridHeight+1 {
		t.Fatalf("raw body holds %d lines, want %d plus footer", len(lines), interfaces.GridHeight)
	}
}

func TestPackageOmitsEmptyMetadata(t *testing.T) {
	result := Package(nil, Metadata{Mode: "table"})

	if strings.Contains(result.Header, "title:") {
		t.Fatalf("empty title emitted: %q", result.Header)
	}
	if strings.Contains(result.Header, "ts:") {
		t.Fatalf("timestamp emitted without one being supplied: %q", result.Header)
	}
	if !strings.Contains(result.Header, "mode: table") {
		t.Fatalf("mode missing: %q", result.Header)
	}
}
