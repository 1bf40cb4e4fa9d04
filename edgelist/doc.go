// Package edgelist reads and writes the plain-text graph input format.
//
// Format
//
//	V  E  start        header: vertex count, edge count, start vertex
//	u  v  w            exactly E edge records
//
// Fields are non-negative base-10 integers separated by any run of spaces or
// tabs. Blank lines are ignored anywhere. Endpoint ranges are not checked
// here: Input.Graph hands the edges to core.New, which rejects them with
// core.ErrInvalidEdgeEndpoint.
//
// Every decode error wraps one of the sentinels below and names the
// offending line, so callers branch with errors.Is and print err as is.
package edgelist
