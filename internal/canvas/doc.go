// Package canvas renders structured view-model data onto a fixed 80x30
// character grid and packages it into the canonical metadata-headed text
// format. Rendering is pure: every call allocates a fresh canvas, and
// identical input always yields byte-identical output.
package canvas
