package canvas

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// layoutFunc draws one grid mode using only canvas primitives. Layouts are
// pure; any variance must come in through spec or data.
type layoutFunc func(c *Canvas, spec, data map[string]any)

var layoutRegistry = map[interfaces.GridMode]layoutFunc{
	interfaces.ModeCalendar:  layoutCalendar,
	interfaces.ModeTable:     layoutTable,
	interfaces.ModeSchedule:  layoutSchedule,
	interfaces.ModeMap:       layoutMap,
	interfaces.ModeDashboard: layoutDashboard,
	interfaces.ModeWorkflow:  layoutWorkflow,
}

func layoutCalendar(c *Canvas, spec, data map[string]any) {
	year := intValue(spec, "year", 2000)
	month := intValue(spec, "month", 1)
	if month < 1 || month > 12 {
		month = 1
	}

	drawTitle(c, stringValue(spec, "title", fmt.Sprintf("%04d-%02d", year, month)))

	weekdays := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	for i, day := range weekdays {
		c.Write(2+i*11, 2, day)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	events := mapValue(data, "events")

	slot := int(first.Weekday())
	row := 0
	for day := 1; day <= daysInMonth; day++ {
		x := 2 + slot*11
		y := 4 + row*4
		c.Box(x, y, 10, 4)
		c.Write(x+1, y+1, fmt.Sprintf("%2d", day))
		if label, ok := events[fmt.Sprintf("%d", day)]; ok {
			c.Text(x+1, y+2, 8, fmt.Sprint(label), false)
		}
		slot++
		if slot == 7 {
			slot = 0
			row++
		}
	}
}

func layoutTable(c *Canvas, spec, data map[string]any) {
	drawTitle(c, stringValue(spec, "title", ""))

	columns := sliceValue(spec, "columns")
	widths := make([]int, 0, len(columns))
	keys := make([]string, 0, len(columns))
	header := make([]string, 0, len(columns))
	for _, entry := range columns {
		column, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		key := stringValue(column, "key", "")
		width := intValue(column, "width", 12)
		if width < 1 {
			width = 1
		}
		keys = append(keys, key)
		widths = append(widths, width)
		header = append(header, stringValue(column, "label", key))
	}
	if len(widths) == 0 {
		return
	}

	rows := [][]string{header}
	for _, entry := range sliceValue(data, "rows") {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		row := make([]string, len(keys))
		for i, key := range keys {
			if value, ok := record[key]; ok {
				row[i] = fmt.Sprint(value)
			}
		}
		rows = append(rows, row)
	}

	c.Table(1, 2, widths, rows, true)
}

func layoutSchedule(c *Canvas, spec, data map[string]any) {
	drawTitle(c, stringValue(spec, "title", ""))

	type entry struct {
		at    string
		label string
	}
	var entries []entry
	for _, raw := range sliceValue(data, "entries") {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			at:    stringValue(record, "time", ""),
			label: stringValue(record, "label", ""),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].at < entries[j].at })

	for i, item := range entries {
		y := 2 + i
		c.Write(2, y, item.at)
		c.Write(9, y, "|")
		c.Text(11, y, interfaces.GridWidth-12, item.label, false)
	}
}

func layoutMap(c *Canvas, spec, data map[string]any) {
	drawTitle(c, stringValue(spec, "title", ""))

	overlay := map[string]rune{}
	for key, value := range mapValue(data, "cells") {
		marker := fmt.Sprint(value)
		if marker == "" {
			continue
		}
		overlay[key] = []rune(marker)[0]
	}

	legend := boolValue(spec, "legend")
	c.Minimap(1, 2, 56, 27, overlay, legend)
}

func layoutDashboard(c *Canvas, spec, data map[string]any) {
	drawTitle(c, stringValue(spec, "title", ""))

	panels := sliceValue(data, "panels")
	for i, raw := range panels {
		panel, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		x := 1 + (i%2)*40
		y := 2 + (i/2)*5
		c.Box(x, y, 38, 5)
		c.Text(x+2, y+1, 34, stringValue(panel, "title", ""), false)
		c.Text(x+2, y+3, 34, stringValue(panel, "value", ""), false)
	}
}

func layoutWorkflow(c *Canvas, spec, data map[string]any) {
	drawTitle(c, stringValue(spec, "title", ""))

	y := 2
	for _, raw := range sliceValue(data, "steps") {
		step, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		marker := " "
		switch stringValue(step, "status", "") {
		case "done":
			marker = "x"
		case "active":
			marker = ">"
		}
		c.Write(2, y, "["+marker+"] "+stringValue(step, "name", ""))
		y++
		if y < interfaces.GridHeight-1 {
			c.Write(3, y, "|")
			y++
		}
	}
}

func drawTitle(c *Canvas, title string) {
	if title == "" {
		return
	}
	title = truncateRunes(title, interfaces.GridWidth)
	c.Write((interfaces.GridWidth-utf8.RuneCountInString(title))/2, 0, title)
}

func stringValue(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if value, ok := m[key]; ok {
		if text, ok := value.(string); ok {
			return text
		}
		return fmt.Sprint(value)
	}
	return fallback
}

func intValue(m map[string]any, key string, fallback int) int {
	if m == nil {
		return fallback
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func boolValue(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	value, _ := m[key].(bool)
	return value
}

func sliceValue(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	value, _ := m[key].([]any)
	return value
}

func mapValue(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	value, _ := m[key].(map[string]any)
	return value
}
