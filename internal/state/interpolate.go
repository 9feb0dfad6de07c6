package state

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Interpolate replaces $identifier(.identifier|[index])* tokens with their
// state values. Unresolved tokens pass through unchanged. The scanner is
// hand-rolled rather than regex-driven so token boundaries stay explicit.
func (s *Store) Interpolate(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		path, length := scanToken(text[i+1:])
		if length == 0 {
			sb.WriteByte('$')
			i++
			continue
		}

		token := text[i : i+1+length]
		if value, ok := s.Get(path); ok {
			sb.WriteString(formatValue(value))
		} else {
			sb.WriteString(token)
		}
		i += 1 + length
	}

	return sb.String()
}

// scanToken reads a path token after the dollar sign, returning the path and
// the number of bytes consumed. Zero means no token starts here.
func scanToken(text string) (string, int) {
	identLen := scanIdentifier(text)
	if identLen == 0 {
		return "", 0
	}

	i := identLen
	for i < len(text) {
		switch text[i] {
		case '.':
			next := scanIdentifier(text[i+1:])
			if next == 0 {
				return text[:i], i
			}
			i += 1 + next
		case '[':
			close := strings.IndexByte(text[i:], ']')
			if close < 2 || !allDigits(text[i+1:i+close]) {
				return text[:i], i
			}
			i += close + 1
		default:
			return text[:i], i
		}
	}
	return text[:i], i
}

func scanIdentifier(text string) int {
	if len(text) == 0 || !identStart(text[0]) {
		return 0
	}
	i := 1
	for i < len(text) && identPart(text[i]) {
		i++
	}
	return i
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9')
}

func allDigits(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}

// formatValue renders a state value for prose. Scalars print bare;
// structured values print as compact JSON, which keeps output deterministic.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
