package markdown

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

func TestParseFrontmatter(t *testing.T) {
	data := readFixture(t, "testdata/score.md")

	fm, body := ParseFrontmatter(data)

	if fm.Title != "Score Demo" {
		t.Fatalf("Frontmatter Title mismatch, got %q", fm.Title)
	}
	if fm.ID != "score-demo" {
		t.Fatalf("Frontmatter ID mismatch, got %q", fm.ID)
	}
	if fm.Version != "1.0" {
		t.Fatalf("Frontmatter Version mismatch, got %q", fm.Version)
	}
	if fm.StateDefaults != "reset" {
		t.Fatalf("Frontmatter StateDefaults mismatch, got %q", fm.StateDefaults)
	}
	if fm.Custom["author"] != "uDOS docs" {
		t.Fatalf("Frontmatter Custom author missing: %#v", fm.Custom)
	}
	if strings.Contains(string(body), "title: Score Demo") {
		t.Fatalf("frontmatter block leaked into body")
	}
	if !strings.Contains(string(body), "## Start") {
		t.Fatalf("body missing section heading: %q", string(body))
	}
}

func TestParseFrontmatterMalformed(t *testing.T) {
	data := readFixture(t, "testdata/broken.md")

	fm, body := ParseFrontmatter(data)

	if !reflect.DeepEqual(fm, interfaces.Frontmatter{}) {
		t.Fatalf("expected zero frontmatter on malformed header, got %#v", fm)
	}
	if string(body) != string(data) {
		t.Fatalf("expected untouched source as body on malformed header")
	}

	doc := NewParser(nil).Parse(string(data))
	if len(doc.Sections) != 1 || doc.Sections[0].ID != "only-section" {
		t.Fatalf("sections should survive malformed frontmatter: %#v", doc.Sections)
	}
}

func TestParseSectionsAndBlocks(t *testing.T) {
	data := readFixture(t, "testdata/score.md")

	doc := NewParser(nil).Parse(string(data))

	if doc.ID == "" {
		t.Fatalf("expected a derived document id")
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %#v", len(doc.Sections), doc.Sections)
	}

	start := doc.Sections[0]
	if start.ID != "start" || start.Title != "Start" {
		t.Fatalf("first section mismatch: %#v", start)
	}
	if !strings.Contains(start.Content, "Welcome to the demo.") {
		t.Fatalf("section prose missing: %q", start.Content)
	}
	if len(start.Blocks) != 2 {
		t.Fatalf("expected 2 blocks in start, got %d", len(start.Blocks))
	}
	if start.Blocks[0].Type != interfaces.BlockState {
		t.Fatalf("expected state block first, got %q", start.Blocks[0].Type)
	}
	if !strings.Contains(start.Blocks[0].Content, "score: 10") {
		t.Fatalf("state block body not verbatim: %q", start.Blocks[0].Content)
	}
	if start.Blocks[1].Type != interfaces.BlockNav {
		t.Fatalf("expected nav block second, got %q", start.Blocks[1].Type)
	}

	end := doc.Sections[1]
	if end.ID != "end" {
		t.Fatalf("second section id mismatch: %q", end.ID)
	}
	if len(end.Blocks) != 1 || end.Blocks[0].Type != interfaces.BlockPanel {
		t.Fatalf("expected a single panel block in end: %#v", end.Blocks)
	}
}

func TestParseDropsBlocksOutsideSections(t *testing.T) {
	data := readFixture(t, "testdata/score.md")

	doc := NewParser(nil).Parse(string(data))

	for _, section := range doc.Sections {
		for _, block := range section.Blocks {
			if strings.Contains(block.Content, "Orphan panel") {
				t.Fatalf("block outside any section was attached to %q", section.ID)
			}
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	data := readFixture(t, "testdata/score.md")
	parser := NewParser(nil)

	first := parser.Parse(string(data))
	second := parser.Parse(string(data))

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parsing the same source twice diverged")
	}
}

func TestParseUnknownFenceIsContent(t *testing.T) {
	source := "## Notes\n\n```ruby\nputs 1\n```\n"

	doc := NewParser(nil).Parse(source)

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if len(doc.Sections[0].Blocks) != 0 {
		t.Fatalf("unknown fence must not become a runtime block: %#v", doc.Sections[0].Blocks)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Start":             "start",
		"Mission   Debrief": "mission-debrief",
		"A/B Test!":         "a-b-test",
		"  trimmed  ":       "trimmed",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
