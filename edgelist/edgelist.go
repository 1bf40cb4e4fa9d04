// SPDX-License-Identifier: MIT
// File: edgelist.go
// Role: Decode / Encode of the edge-list format, Input type and errors.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/primst/core"
)

// Sentinel errors for malformed input.
var (
	// ErrMalformedHeader indicates that the header is missing or does not hold three integers.
	ErrMalformedHeader = errors.New("edgelist: malformed header")

	// ErrMalformedEdge indicates that an edge record does not hold three integers.
	ErrMalformedEdge = errors.New("edgelist: malformed edge record")

	// ErrNegativeValue indicates a negative count, id or weight.
	ErrNegativeValue = errors.New("edgelist: negative value")

	// ErrMissingEdges indicates fewer edge records than the header announced.
	ErrMissingEdges = errors.New("edgelist: fewer edge records than declared")

	// ErrTrailingData indicates records after the last declared edge.
	ErrTrailingData = errors.New("edgelist: unexpected data after last edge")
)

// fieldsPerRecord is the arity of both header and edge records.
const fieldsPerRecord = 3

// Input is one decoded problem: a graph and the vertex to grow the tree from.
type Input struct {
	Order int
	Start int
	Edges []core.Edge
}

// Graph builds the immutable core.Graph for in.
func (in *Input) Graph() (*core.Graph, error) {
	return core.New(in.Order, in.Edges)
}

// Decode reads one Input from r.
//
// Steps:
//  1. Skip blank lines; the first non-blank line is the header V E start.
//  2. Read exactly E edge records u v w.
//  3. Any further non-blank line is ErrTrailingData.
//
// Complexity: O(size of input).
func Decode(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0

	// next returns the fields of the next non-blank line, or nil at EOF.
	next := func() ([]string, error) {
		for sc.Scan() {
			line++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("Decode: line %d: %w", line+1, err)
		}
		return nil, nil
	}

	// 1. Header.
	f, err := next()
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("Decode: empty input: %w", ErrMalformedHeader)
	}
	hdr, err := parseRecord(f, ErrMalformedHeader)
	if err != nil {
		return nil, fmt.Errorf("Decode: line %d: %w", line, err)
	}
	in := &Input{Order: int(hdr[0]), Start: int(hdr[2])}
	declared := int(hdr[1])
	in.Edges = make([]core.Edge, 0, min(declared, 1<<16))

	// 2. Edge records.
	for i := 0; i < declared; i++ {
		f, err = next()
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, fmt.Errorf("Decode: got %d of %d edges: %w", i, declared, ErrMissingEdges)
		}
		rec, err := parseRecord(f, ErrMalformedEdge)
		if err != nil {
			return nil, fmt.Errorf("Decode: line %d: %w", line, err)
		}
		in.Edges = append(in.Edges, core.Edge{From: int(rec[0]), To: int(rec[1]), Weight: rec[2]})
	}

	// 3. Nothing may follow.
	f, err = next()
	if err != nil {
		return nil, err
	}
	if f != nil {
		return nil, fmt.Errorf("Decode: line %d: %w", line, ErrTrailingData)
	}

	return in, nil
}

// parseRecord converts exactly three non-negative integer fields.
func parseRecord(f []string, malformed error) ([fieldsPerRecord]int64, error) {
	var out [fieldsPerRecord]int64
	if len(f) != fieldsPerRecord {
		return out, fmt.Errorf("want %d fields, got %d: %w", fieldsPerRecord, len(f), malformed)
	}
	for i, s := range f {
		n, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			return out, fmt.Errorf("field %d %q: %w", i+1, s, malformed)
		}
		if n < 0 {
			return out, fmt.Errorf("field %d = %d: %w", i+1, n, ErrNegativeValue)
		}
		out[i] = n
	}

	return out, nil
}

// ReadFile opens path and decodes it.
func ReadFile(path string) (*Input, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer fh.Close()

	in, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// Encode writes in to w in the same format, tab separated.
func Encode(w io.Writer, in *Input) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\t%d\t%d\n", in.Order, len(in.Edges), in.Start)
	for _, e := range in.Edges {
		fmt.Fprintf(bw, "%d\t%d\t%d\n", e.From, e.To, e.Weight)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}
