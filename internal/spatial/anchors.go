package spatial

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-udos/pkg/interfaces"
)

// MemoryAnchorRegistry holds anchors in process memory. It follows the
// runtime's single-owner model: one registry per module instance, no
// locking.
type MemoryAnchorRegistry struct {
	anchors map[string]interfaces.Anchor
}

var _ interfaces.AnchorRegistry = (*MemoryAnchorRegistry)(nil)

// NewMemoryAnchorRegistry builds an empty registry.
func NewMemoryAnchorRegistry() *MemoryAnchorRegistry {
	return &MemoryAnchorRegistry{anchors: map[string]interfaces.Anchor{}}
}

// Register adds or replaces an anchor. Ids are uppercased; an empty status
// defaults to active.
func (r *MemoryAnchorRegistry) Register(anchor interfaces.Anchor) error {
	id := strings.ToUpper(strings.TrimSpace(anchor.ID))
	if id == "" {
		return fmt.Errorf("spatial: anchor id is required")
	}
	anchor.ID = id
	if anchor.Status == "" {
		anchor.Status = "active"
	}
	r.anchors[id] = anchor
	return nil
}

// Get resolves an anchor by id.
func (r *MemoryAnchorRegistry) Get(id string) (interfaces.Anchor, bool) {
	anchor, ok := r.anchors[strings.ToUpper(strings.TrimSpace(id))]
	return anchor, ok
}

// List returns all anchors ordered by id.
func (r *MemoryAnchorRegistry) List() []interfaces.Anchor {
	out := make([]interfaces.Anchor, 0, len(r.anchors))
	for _, anchor := range r.anchors {
		out = append(out, anchor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Deactivate marks an anchor inactive so new PlaceRefs can no longer target
// it. Unknown ids are an error.
func (r *MemoryAnchorRegistry) Deactivate(id string) error {
	key := strings.ToUpper(strings.TrimSpace(id))
	anchor, ok := r.anchors[key]
	if !ok {
		return fmt.Errorf("spatial: anchor %q is not registered", id)
	}
	anchor.Status = "inactive"
	r.anchors[key] = anchor
	return nil
}
