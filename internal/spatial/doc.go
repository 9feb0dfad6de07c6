// Package spatial implements the fractal addressing scheme: spreadsheet-style
// cell tokens, layer-banded LocIds, and anchor-scoped PlaceRefs. Parsing and
// formatting are deterministic and lossless: formatting a parsed canonical
// string reproduces it byte for byte.
package spatial
