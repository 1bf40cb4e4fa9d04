package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primst/edgelist"
	"github.com/katalvlaran/primst/mst"
)

func TestRun_GeneratesSolvableInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "g.txt")
	var stderr bytes.Buffer
	code := run([]string{"-topology", "connected", "-n", "300", "-extra", "900", "-seed", "7", out}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	in, err := edgelist.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 300, in.Order)
	assert.Len(t, in.Edges, 299+900)
	for _, e := range in.Edges {
		assert.True(t, e.Weight >= 1 && e.Weight <= 100)
	}

	g, err := in.Graph()
	require.NoError(t, err)
	res, err := mst.Prim(g, in.Start)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Unreached(), "connected fixture")
	require.NoError(t, mst.Verify(g, res))
}

func TestRun_Topologies(t *testing.T) {
	for _, topo := range []string{"complete", "star", "path", "cycle", "sparse"} {
		t.Run(topo, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "g.txt")
			var stderr bytes.Buffer
			require.Equal(t, 0, run([]string{"-topology", topo, "-n", "12", "-p", "0.5", "-start", "3", out}, &stderr), stderr.String())
			in, err := edgelist.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, 12, in.Order)
			assert.Equal(t, 3, in.Start)
		})
	}
}

func TestRun_FullWeightRange(t *testing.T) {
	out := filepath.Join(t.TempDir(), "g.txt")
	var stderr bytes.Buffer
	code := run([]string{"-n", "20", "-extra", "30", "-min-weight", "0", "-max-weight", "9223372036854775807", out}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	in, err := edgelist.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, in.Edges, 19+30)
	for _, e := range in.Edges {
		assert.GreaterOrEqual(t, e.Weight, int64(0))
	}
}

func TestRun_Usage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "g.txt")
	var stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stderr))
	assert.Equal(t, 2, run([]string{"-topology", "torus", out}, &stderr))
	assert.Equal(t, 2, run([]string{"-min-weight", "5", "-max-weight", "2", out}, &stderr))
	assert.Equal(t, 2, run([]string{"-n", "4", "-start", "4", out}, &stderr))
	assert.Equal(t, 1, run([]string{"-topology", "cycle", "-n", "2", out}, &stderr))
}
