// SPDX-License-Identifier: MIT
// File: report.go
// Role: Markers, record rendering and atomic file output.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/primst/mst"
)

// Sentinel errors.
var (
	// ErrInvalidMarker indicates a marker that is empty, contains whitespace,
	// or could be read as a vertex id.
	ErrInvalidMarker = errors.New("report: invalid marker")

	// ErrAmbiguousMarkers indicates equal root and unreachable markers.
	ErrAmbiguousMarkers = errors.New("report: root and unreachable markers are equal")

	// ErrNilResult indicates that a nil *mst.Result was passed in.
	ErrNilResult = errors.New("report: result is nil")
)

// Default marker literals.
const (
	DefaultRootMarker        = "NIL"
	DefaultUnreachableMarker = "-1"
)

// Markers are the literals written for the two non-id states.
type Markers struct {
	Root        string `yaml:"root"`
	Unreachable string `yaml:"unreachable"`
}

// DefaultMarkers returns NIL / -1.
func DefaultMarkers() Markers {
	return Markers{Root: DefaultRootMarker, Unreachable: DefaultUnreachableMarker}
}

// Validate reports whether m keeps root, parent id and unreachable apart.
func (m Markers) Validate() error {
	for _, s := range []struct{ name, v string }{{"root", m.Root}, {"unreachable", m.Unreachable}} {
		if s.v == "" || strings.IndexFunc(s.v, unicode.IsSpace) >= 0 {
			return fmt.Errorf("%s marker %q: %w", s.name, s.v, ErrInvalidMarker)
		}
		if n, err := strconv.ParseUint(s.v, 10, 64); err == nil {
			return fmt.Errorf("%s marker %q reads as vertex %d: %w", s.name, s.v, n, ErrInvalidMarker)
		}
	}
	if m.Root == m.Unreachable {
		return fmt.Errorf("both %q: %w", m.Root, ErrAmbiguousMarkers)
	}

	return nil
}

// field renders the second column of vertex v.
func (m Markers) field(p mst.Parent) string {
	if u, ok := p.Vertex(); ok {
		return strconv.Itoa(u)
	}
	if p.IsRoot() {
		return m.Root
	}

	return m.Unreachable
}

// Lines returns the records of res without trailing newlines.
func Lines(res *mst.Result, m Markers) []string {
	if res == nil {
		return nil
	}
	out := make([]string, len(res.Parents))
	for v, p := range res.Parents {
		out[v] = strconv.Itoa(v) + "\t" + m.field(p)
	}

	return out
}

// Write validates m and writes one record per vertex to w.
func Write(w io.Writer, res *mst.Result, m Markers) error {
	if res == nil {
		return ErrNilResult
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	bw := bufio.NewWriter(w)
	for v, p := range res.Parents {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte('\t')
		bw.WriteString(m.field(p))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// WriteFile writes the report to path through a temporary file in the same
// directory and renames it over path on success.
func WriteFile(path string, res *mst.Result, m Markers) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, res, m); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}

	return nil
}
