package state

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// ErrNotNumeric reports increment/decrement against a non-numeric value.
var ErrNotNumeric = errors.New("state: value is not numeric")

// ErrNotBoolean reports toggle against a non-boolean value.
var ErrNotBoolean = errors.New("state: value is not a boolean")

// ErrIndexOutOfRange reports a write addressing an array element that does
// not exist; Set never grows arrays.
var ErrIndexOutOfRange = errors.New("state: array index out of range")

type watcher struct {
	id int
	fn interfaces.WatchFunc
}

// Store is the in-memory state tree. Each Runtime instance owns its store
// exclusively and the execution model is single-threaded, so no locking is
// performed.
type Store struct {
	root     map[string]any
	watchers map[string][]watcher
	nextID   int
	logger   interfaces.Logger
}

var _ interfaces.StateStore = (*Store)(nil)

// New constructs an empty store.
func New(provider interfaces.LoggerProvider) *Store {
	return &Store{
		root:     map[string]any{},
		watchers: map[string][]watcher{},
		logger:   logging.StateLogger(provider),
	}
}

// Get resolves a path to its value. The second return is false the instant an
// intermediate is missing or the path is malformed; Get never fails hard. The
// returned value is a deep copy so callers cannot mutate live state.
func (s *Store) Get(path string) (any, bool) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, false
	}

	var node any = s.root
	for _, seg := range segments {
		switch container := node.(type) {
		case map[string]any:
			value, ok := container[seg.mapKey()]
			if !ok {
				return nil, false
			}
			node = value
		case []any:
			if !seg.isIndex || seg.index >= len(container) {
				return nil, false
			}
			node = container[seg.index]
		default:
			return nil, false
		}
	}

	cloned, err := Clone(node)
	if err != nil {
		return nil, false
	}
	return cloned, true
}

// Set writes a value at path, auto-creating missing intermediate objects
// (never arrays) and firing watchers registered on the exact path string.
// Existing array intermediates are indexed into, not replaced; writing past
// the end of an array fails. The value is deep-copied on the way in.
func (s *Store) Set(path string, value any) error {
	segments, err := parsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrPathInvalid, path)
	}

	cloned, err := Clone(value)
	if err != nil {
		return err
	}

	previous, _ := s.Get(path)

	var node any = s.root
	for _, seg := range segments[:len(segments)-1] {
		child, err := s.descend(node, seg, path)
		if err != nil {
			return err
		}
		node = child
	}

	last := segments[len(segments)-1]
	switch container := node.(type) {
	case map[string]any:
		container[last.mapKey()] = cloned
	case []any:
		if !last.isIndex || last.index >= len(container) {
			return fmt.Errorf("%w: %q", ErrIndexOutOfRange, path)
		}
		container[last.index] = cloned
	}

	s.notify(path, cloned, previous)
	return nil
}

// descend resolves one intermediate step of a Set walk. Map children that
// are missing or scalar become fresh objects; array children are addressed
// in place so sibling elements survive writes through an index.
func (s *Store) descend(node any, seg segment, path string) (any, error) {
	switch container := node.(type) {
	case map[string]any:
		key := seg.mapKey()
		child, ok := container[key]
		if !ok {
			created := map[string]any{}
			container[key] = created
			return created, nil
		}
		switch child.(type) {
		case map[string]any, []any:
			return child, nil
		}
		created := map[string]any{}
		container[key] = created
		return created, nil
	case []any:
		if !seg.isIndex || seg.index >= len(container) {
			return nil, fmt.Errorf("%w: %q", ErrIndexOutOfRange, path)
		}
		child := container[seg.index]
		switch child.(type) {
		case map[string]any, []any:
			return child, nil
		}
		created := map[string]any{}
		container[seg.index] = created
		return created, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrPathInvalid, path)
}

// Increment adds one to the numeric value at path, treating missing values
// as zero, and returns the new value.
func (s *Store) Increment(path string) (float64, error) {
	return s.add(path, 1)
}

// Decrement subtracts one from the numeric value at path, treating missing
// values as zero, and returns the new value.
func (s *Store) Decrement(path string) (float64, error) {
	return s.add(path, -1)
}

func (s *Store) add(path string, delta float64) (float64, error) {
	current, ok := s.Get(path)
	var base float64
	if ok && current != nil {
		number, numeric := toFloat(current)
		if !numeric {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, path)
		}
		base = number
	}
	next := base + delta
	if err := s.Set(path, next); err != nil {
		return 0, err
	}
	return next, nil
}

// Toggle flips the boolean at path, treating missing values as false, and
// returns the new value.
func (s *Store) Toggle(path string) (bool, error) {
	current, ok := s.Get(path)
	var base bool
	if ok && current != nil {
		value, isBool := current.(bool)
		if !isBool {
			return false, fmt.Errorf("%w: %q", ErrNotBoolean, path)
		}
		base = value
	}
	next := !base
	if err := s.Set(path, next); err != nil {
		return false, err
	}
	return next, nil
}

// Watch registers a callback fired whenever the exact path string is written
// through Set, Increment, Decrement, or Toggle. The returned function
// unsubscribes.
func (s *Store) Watch(path string, fn interfaces.WatchFunc) func() {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.watchers[path] = append(s.watchers[path], watcher{id: id, fn: fn})

	return func() {
		entries := s.watchers[path]
		for i, entry := range entries {
			if entry.id == id {
				s.watchers[path] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(path string, value, previous any) {
	for _, entry := range s.watchers[path] {
		entry.fn(path, value, previous)
	}
}

// Snapshot deep-copies the full tree. Non-JSON values reaching the tree are
// programming errors and surface here.
func (s *Store) Snapshot() (map[string]any, error) {
	cloned, err := Clone(s.root)
	if err != nil {
		return nil, err
	}
	return cloned.(map[string]any), nil
}

// Restore replaces the tree with a deep copy of the snapshot. Watchers are
// kept but not fired; restore is not a path write.
func (s *Store) Restore(snapshot map[string]any) error {
	if snapshot == nil {
		s.root = map[string]any{}
		return nil
	}
	cloned, err := Clone(snapshot)
	if err != nil {
		return err
	}
	s.root = cloned.(map[string]any)
	return nil
}

// Clear drops all state.
func (s *Store) Clear() {
	s.root = map[string]any{}
	s.logger.Debug("state cleared")
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
