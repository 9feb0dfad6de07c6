package canvas

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-udos/internal/spatial"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Canvas is a fixed 80x30 character buffer. All drawing primitives clip
// silently at the edges; nothing errors on out-of-range coordinates.
type Canvas struct {
	cells [interfaces.GridHeight][interfaces.GridWidth]rune
}

// New returns a canvas cleared to spaces.
func New() *Canvas {
	c := &Canvas{}
	c.Clear(' ')
	return c
}

// Clear fills the whole buffer with the given rune. Tabs are replaced by
// spaces so body lines never contain them.
func (c *Canvas) Clear(fill rune) {
	if fill == '\t' {
		fill = ' '
	}
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = fill
		}
	}
}

// Put writes a single rune, clipping silently when out of range.
func (c *Canvas) Put(x, y int, ch rune) {
	if x < 0 || x >= interfaces.GridWidth || y < 0 || y >= interfaces.GridHeight {
		return
	}
	if ch == '\t' {
		ch = ' '
	}
	c.cells[y][x] = ch
}

// Write draws a string left to right from (x, y), one cell per rune,
// clipping at the right edge.
func (c *Canvas) Write(x, y int, text string) {
	for i, ch := range []rune(text) {
		c.Put(x+i, y, ch)
	}
}

// Box draws a bordered rectangle with + corners and -/| edges. Boxes smaller
// than 2x2 are ignored.
func (c *Canvas) Box(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	for i := 1; i < w-1; i++ {
		c.Put(x+i, y, '-')
		c.Put(x+i, y+h-1, '-')
	}
	for j := 1; j < h-1; j++ {
		c.Put(x, y+j, '|')
		c.Put(x+w-1, y+j, '|')
	}
	c.Put(x, y, '+')
	c.Put(x+w-1, y, '+')
	c.Put(x, y+h-1, '+')
	c.Put(x+w-1, y+h-1, '+')
}

// Text draws a string inside a column of the given width, optionally
// word-wrapping, and returns the number of lines drawn.
func (c *Canvas) Text(x, y, width int, text string, wrap bool) int {
	if width <= 0 {
		return 0
	}
	if !wrap {
		c.Write(x, y, truncateRunes(text, width))
		return 1
	}

	lines := wrapWords(text, width)
	for i, line := range lines {
		c.Write(x, y+i, line)
	}
	return len(lines)
}

// Table draws rows with fixed column widths. When header is true the first
// row is followed by a dashed separator.
func (c *Canvas) Table(x, y int, widths []int, rows [][]string, header bool) int {
	line := y
	for rowIndex, row := range rows {
		col := x
		for i, width := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			c.Write(col, line, truncateRunes(cell, width))
			col += width + 1
		}
		line++

		if header && rowIndex == 0 {
			col = x
			for _, width := range widths {
				c.Write(col, line, strings.Repeat("-", width))
				col += width + 1
			}
			line++
		}
	}
	return line - y
}

// Minimap plots sparse LocId-keyed overlay cells inside a bordered viewport
// anchored at (x, y) with the given size, optionally drawing a legend to the
// right. Invalid LocIds are skipped; plotting is clipped to the viewport.
func (c *Canvas) Minimap(x, y, w, h int, overlay map[string]rune, legend bool) {
	c.Box(x, y, w, h)

	keys := make([]string, 0, len(overlay))
	for key := range overlay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		loc, err := spatial.ParseLocID(key)
		if err != nil {
			continue
		}
		cell, err := spatial.ParseCell(loc.Cell)
		if err != nil {
			continue
		}
		px := x + 1 + cell.Col
		py := y + 1 + cell.Row
		if px <= x || px >= x+w-1 || py <= y || py >= y+h-1 {
			continue
		}
		c.Put(px, py, overlay[key])
	}

	if legend {
		lx := x + w + 2
		for i, key := range keys {
			c.Write(lx, y+1+i, string(overlay[key])+" "+key)
		}
	}
}

// Lines snapshots the buffer as exactly 30 strings of exactly 80 characters.
func (c *Canvas) Lines() []string {
	lines := make([]string, interfaces.GridHeight)
	for y := range c.cells {
		lines[y] = string(c.cells[y][:])
	}
	return lines
}

func wrapWords(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// truncateRunes clips text to at most width cells, counting runes so
// multibyte characters occupy one cell each.
func truncateRunes(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	return string([]rune(text)[:width])
}
