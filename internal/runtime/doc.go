// Package runtime executes parsed script documents: it dispatches typed
// blocks to their executors, threads state changes and output through a
// section, follows navigation between sections, and bounds traversal against
// loops. Expected failures are returned as result values, never raised
// across the public API.
package runtime
