// Package state implements the path-addressable variable tree block
// executors read and mutate. Values are constrained to JSON-shaped data;
// reads fail open (missing paths report absence, never panic) and text
// interpolation leaves unresolved tokens untouched so prose cannot crash on
// a typo.
package state
