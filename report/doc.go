// Package report renders an mst.Result as the output record stream: one line
// per vertex in increasing id order, "<vertex>\t<parent>", where <parent> is
// the root marker, the parent id, or the unreachable marker.
//
// The markers are configurable. DefaultMarkers returns "NIL" for the root and
// "-1" for unreachable vertices. Validate keeps the three states apart: both
// markers must be non-empty, distinct, free of whitespace and not parse as a
// non-negative integer (which would read as a parent id).
//
// WriteFile stages the output in a temporary file next to the target and
// renames it into place, so a failed run never leaves a partial file.
package report
