package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primst/core"
	"github.com/katalvlaran/primst/mst"
	"github.com/katalvlaran/primst/report"
)

func run(t *testing.T, order, start int, edges ...core.Edge) *mst.Result {
	t.Helper()
	g, err := core.New(order, edges)
	require.NoError(t, err)
	res, err := mst.Prim(g, start)
	require.NoError(t, err)

	return res
}

func TestWrite_Records(t *testing.T) {
	tests := []struct {
		name string
		res  *mst.Result
		m    report.Markers
		want string
	}{
		{"empty graph", run(t, 0, 0), report.DefaultMarkers(), ""},
		{"singleton", run(t, 1, 0), report.DefaultMarkers(), "0\tNIL\n"},
		{"single edge", run(t, 2, 0, core.Edge{From: 0, To: 1, Weight: 5}), report.DefaultMarkers(), "0\tNIL\n1\t0\n"},
		{
			"disconnected",
			run(t, 5, 0,
				core.Edge{From: 0, To: 1, Weight: 10},
				core.Edge{From: 1, To: 2, Weight: 20},
				core.Edge{From: 3, To: 4, Weight: 30}),
			report.Markers{Root: "ROOT", Unreachable: "UNREACHABLE"},
			"0\tROOT\n1\t0\n2\t1\n3\tUNREACHABLE\n4\tUNREACHABLE\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Write(&buf, tc.res, tc.m))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestLines(t *testing.T) {
	res := run(t, 3, 1, core.Edge{From: 0, To: 1, Weight: 2})
	assert.Equal(t, []string{"0\t1", "1\tNIL", "2\t-1"}, report.Lines(res, report.DefaultMarkers()))
	assert.Nil(t, report.Lines(nil, report.DefaultMarkers()))
}

func TestMarkers_Validate(t *testing.T) {
	tests := []struct {
		name string
		m    report.Markers
		want error
	}{
		{"default", report.DefaultMarkers(), nil},
		{"INF", report.Markers{Root: "NIL", Unreachable: "INF"}, nil},
		{"empty root", report.Markers{Root: "", Unreachable: "INF"}, report.ErrInvalidMarker},
		{"space", report.Markers{Root: "NO PARENT", Unreachable: "INF"}, report.ErrInvalidMarker},
		{"numeric", report.Markers{Root: "0", Unreachable: "INF"}, report.ErrInvalidMarker},
		{"equal", report.Markers{Root: "NIL", Unreachable: "NIL"}, report.ErrAmbiguousMarkers},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}

	var buf bytes.Buffer
	err := report.Write(&buf, run(t, 1, 0), report.Markers{Root: "X", Unreachable: "X"})
	assert.ErrorIs(t, err, report.ErrAmbiguousMarkers)
	assert.Zero(t, buf.Len())
	assert.ErrorIs(t, report.Write(&buf, nil, report.DefaultMarkers()), report.ErrNilResult)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	res := run(t, 2, 0, core.Edge{From: 0, To: 1, Weight: 5})

	require.NoError(t, report.WriteFile(path, res, report.DefaultMarkers()))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0\tNIL\n1\t0\n", string(b))

	// Failed write keeps the previous file and leaves no temp behind.
	err = report.WriteFile(path, res, report.Markers{})
	assert.ErrorIs(t, err, report.ErrInvalidMarker)
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0\tNIL\n1\t0\n", string(b))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	err = report.WriteFile(filepath.Join(dir, "nope", "out.txt"), res, report.DefaultMarkers())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
