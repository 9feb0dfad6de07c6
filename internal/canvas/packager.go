package canvas

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Metadata carries the header fields of a packaged grid. Empty values are
// omitted from the header so no blank key lines appear. TS is only ever
// caller-supplied; the packager never reads a clock.
type Metadata struct {
	Title string
	Mode  string
	Theme string
	TS    string
}

// Package wraps exactly 30 body lines with the canonical header and footer.
// Short inputs are padded with blank 80-char lines and long inputs truncated
// so the body invariant always holds.
func Package(lines []string, meta Metadata) interfaces.RenderResult {
	body := make([]string, interfaces.GridHeight)
	for i := range body {
		var line string
		if i < len(lines) {
			line = strings.ReplaceAll(lines[i], "\t", " ")
		}
		// Width is counted in runes so multibyte characters still yield 80
		// visible cells per line.
		width := utf8.RuneCountInString(line)
		if width > interfaces.GridWidth {
			line = string([]rune(line)[:interfaces.GridWidth])
		} else if width < interfaces.GridWidth {
			line += strings.Repeat(" ", interfaces.GridWidth-width)
		}
		body[i] = line
	}

	var header strings.Builder
	header.WriteString(interfaces.GridHeader)
	header.WriteByte('\n')
	fmt.Fprintf(&header, "size: %dx%d\n", interfaces.GridWidth, interfaces.GridHeight)
	writeMeta(&header, "title", meta.Title)
	writeMeta(&header, "mode", meta.Mode)
	writeMeta(&header, "theme", meta.Theme)
	writeMeta(&header, "ts", meta.TS)
	header.WriteString(interfaces.GridDelimiter)

	var raw strings.Builder
	raw.WriteString(header.String())
	raw.WriteByte('\n')
	for _, line := range body {
		raw.WriteString(line)
		raw.WriteByte('\n')
	}
	raw.WriteString(interfaces.GridFooter)

	return interfaces.RenderResult{
		Header:  header.String(),
		Lines:   body,
		RawText: raw.String(),
	}
}

func writeMeta(sb *strings.Builder, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", key, value)
}
