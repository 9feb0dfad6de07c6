package state

import (
	"errors"
	"strconv"
	"strings"
)

// ErrPathInvalid rejects paths the grammar cannot parse.
var ErrPathInvalid = errors.New("state: invalid path")

// segment is one step of a parsed path: a map key or a bracket index.
type segment struct {
	key     string
	index   int
	isIndex bool
}

// parsePath parses dot-separated segments with optional bracket indices,
// e.g. "player.pos[0].x".
func parsePath(path string) ([]segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathInvalid
	}

	var segments []segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, ErrPathInvalid
		}

		key := part
		var brackets string
		if open := strings.IndexByte(part, '['); open >= 0 {
			key = part[:open]
			brackets = part[open:]
		}
		if key == "" {
			return nil, ErrPathInvalid
		}
		segments = append(segments, segment{key: key})

		for brackets != "" {
			if brackets[0] != '[' {
				return nil, ErrPathInvalid
			}
			close := strings.IndexByte(brackets, ']')
			if close < 1 {
				return nil, ErrPathInvalid
			}
			index, err := strconv.Atoi(brackets[1:close])
			if err != nil || index < 0 {
				return nil, ErrPathInvalid
			}
			segments = append(segments, segment{index: index, isIndex: true})
			brackets = brackets[close+1:]
		}
	}

	return segments, nil
}

// mapKey renders the segment as a string map key; bracket indices falling on
// object intermediates address them by their decimal key.
func (s segment) mapKey() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}
