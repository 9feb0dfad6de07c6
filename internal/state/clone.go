package state

import (
	"fmt"
)

// Clone deep-copies a JSON-shaped value: nil, bool, string, numbers, []any,
// and map[string]any. Anything else is a programming error surfaced to the
// caller rather than silently accepted.
func Clone(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			cloned, err := Clone(item)
			if err != nil {
				return nil, err
			}
			out[i] = cloned
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			cloned, err := Clone(item)
			if err != nil {
				return nil, err
			}
			out[key] = cloned
		}
		return out, nil
	default:
		return nil, fmt.Errorf("state: value of type %T is not JSON-serializable", value)
	}
}
