package mst_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primst/frontier"
	"github.com/katalvlaran/primst/mst"
)

var kinds = []frontier.Kind{frontier.KindHeap, frontier.KindBTree}

// recorder is an Observer that keeps every Stats it receives.
type recorder struct {
	mu  sync.Mutex
	got []mst.Stats
}

func (r *recorder) ObserveRun(s mst.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, s)
}

func TestPrim_EmptyGraph(t *testing.T) {
	g := mustGraph(t, 0)
	for _, start := range []int{0, 7, -3} {
		res, err := mst.Prim(g, start)
		require.NoError(t, err, "start is ignored when V=0")
		assert.Equal(t, 0, res.Order())
		assert.Empty(t, res.TreeEdges())
	}
}

func TestPrim_Singleton(t *testing.T) {
	res, err := mst.Prim(mustGraph(t, 1), 0)
	require.NoError(t, err)
	require.Equal(t, 1, res.Order())
	assert.True(t, res.Parents[0].IsRoot())
	assert.Equal(t, frontier.Finite(0), res.Keys[0])
	assert.Equal(t, int64(0), res.TotalWeight())
}

func TestPrim_SingleEdge(t *testing.T) {
	res, err := mst.Prim(mustGraph(t, 2, e(0, 1, 5)), 0)
	require.NoError(t, err)
	assert.Equal(t, []mst.Parent{mst.Root(), mst.AttachedTo(0)}, res.Parents)
	assert.Equal(t, []frontier.Key{frontier.Finite(0), frontier.Finite(5)}, res.Keys)
}

func TestPrim_Disconnected(t *testing.T) {
	g := mustGraph(t, 5, e(0, 1, 10), e(1, 2, 20), e(3, 4, 30))
	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			res, err := mst.Prim(g, 0, mst.WithFrontier(kind))
			require.NoError(t, err)
			assert.Equal(t, []mst.Parent{
				mst.Root(), mst.AttachedTo(0), mst.AttachedTo(1), mst.Unreached(), mst.Unreached(),
			}, res.Parents)
			assert.True(t, res.Keys[3].IsInfinite())
			assert.True(t, res.Keys[4].IsInfinite())
			assert.Equal(t, 3, res.Reached())
			assert.Equal(t, 2, res.Unreached())
			assert.Equal(t, int64(30), res.TotalWeight())
			assert.Equal(t, []int{-1, 0, 1, -1, -1}, res.ParentIDs())
			require.NoError(t, mst.Verify(g, res))
		})
	}
}

func TestPrim_StarFormation(t *testing.T) {
	g := mustGraph(t, 5,
		e(0, 1, 1), e(0, 2, 1), e(0, 3, 1), e(0, 4, 1),
		e(1, 2, 10), e(1, 3, 10), e(1, 4, 10),
		e(2, 3, 10), e(2, 4, 10), e(3, 4, 10),
	)
	for _, kind := range kinds {
		res, err := mst.Prim(g, 0, mst.WithFrontier(kind))
		require.NoError(t, err)
		for v := 1; v < 5; v++ {
			p, ok := res.Parents[v].Vertex()
			require.True(t, ok)
			assert.Equal(t, 0, p, "vertex %d (%s)", v, kind)
		}
		assert.Equal(t, int64(4), res.TotalWeight())
	}
}

func TestPrim_TieBreakLowestID(t *testing.T) {
	// All weights equal: ties resolve by vertex id, so 0 attaches 1,2,3 directly.
	g := mustGraph(t, 4, e(0, 3, 7), e(0, 2, 7), e(0, 1, 7), e(1, 2, 7), e(2, 3, 7))
	res, err := mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 0, 0}, res.ParentIDs())

	// Equal-key candidates from different parents: the first strict improvement wins.
	g = mustGraph(t, 3, e(0, 1, 1), e(0, 2, 5), e(1, 2, 5))
	res, err = mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 0}, res.ParentIDs())
}

func TestPrim_LoopsAndParallelEdges(t *testing.T) {
	g := mustGraph(t, 3,
		e(0, 0, 0), e(1, 1, 0),
		e(0, 1, 9), e(0, 1, 2), e(1, 0, 4),
		e(1, 2, 3), e(2, 1, 1),
	)
	for _, kind := range kinds {
		res, err := mst.Prim(g, 0, mst.WithFrontier(kind))
		require.NoError(t, err)
		assert.Equal(t, []int{-1, 0, 1}, res.ParentIDs())
		assert.Equal(t, []frontier.Key{frontier.Finite(0), frontier.Finite(2), frontier.Finite(1)}, res.Keys)
		require.NoError(t, mst.Verify(g, res))
	}
}

func TestPrim_ZeroWeightsAndNonZeroStart(t *testing.T) {
	g := mustGraph(t, 4, e(0, 1, 0), e(1, 2, 0), e(2, 3, 4), e(0, 3, 1))
	res, err := mst.Prim(g, 2)
	require.NoError(t, err)
	assert.True(t, res.IsRoot(2))
	assert.False(t, res.IsRoot(0))
	assert.Equal(t, 2, res.Start)
	assert.Equal(t, int64(1), res.TotalWeight())
	require.NoError(t, mst.Verify(g, res))
}

func TestPrim_StartOutOfRange(t *testing.T) {
	g := mustGraph(t, 3, e(0, 1, 1))
	for _, start := range []int{-1, 3, 100} {
		_, err := mst.Prim(g, start)
		assert.ErrorIs(t, err, mst.ErrStartOutOfRange)
	}
	_, err := mst.Prim(nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
	_, err = mst.Prim(g, 0, mst.WithFrontier("fibonacci"))
	assert.ErrorIs(t, err, frontier.ErrUnknownKind)

	// The frontier kind is checked even when there is nothing to span.
	res, err := mst.Prim(mustGraph(t, 0), 0, mst.WithFrontier("fibonacci"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, frontier.ErrUnknownKind)

	res, err = mst.Prim(mustGraph(t, 0), 0, mst.WithFrontier("BTree"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Order())
}

func TestPrim_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGraph(t, r, 40, 120, 5)
	a, err := mst.Prim(g, 7)
	require.NoError(t, err)
	b, err := mst.Prim(g, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := mst.Prim(g, 7, mst.WithFrontier(frontier.KindBTree))
	require.NoError(t, err)
	assert.Equal(t, a, c, "frontiers share the tie-break rule")
}

func TestPrim_RandomAgainstReferences(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 60; round++ {
		n := 1 + r.Intn(30)
		g := randomGraph(t, r, n, r.Intn(3*n+1), 20)
		start := r.Intn(n)
		for _, kind := range kinds {
			res, err := mst.Prim(g, start, mst.WithFrontier(kind))
			require.NoError(t, err)
			require.NoError(t, mst.Verify(g, res), "round %d kind %s", round, kind)
		}
		_, total, err := mst.Kruskal(g)
		require.NoError(t, err)
		assert.Equal(t, gonumForestWeight(g), total, "round %d", round)
	}
}

func TestPrim_ObserverAndLogger(t *testing.T) {
	g := mustGraph(t, 4, e(0, 1, 2), e(1, 2, 3))
	obs := &recorder{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := mst.Prim(g, 0, mst.WithObserver(obs), mst.WithLogger(logger), mst.WithFrontier(frontier.KindBTree))
	require.NoError(t, err)
	require.Len(t, obs.got, 1)

	st := obs.got[0]
	assert.Equal(t, frontier.KindBTree, st.Frontier)
	assert.Equal(t, 4, st.Vertices)
	assert.Equal(t, 2, st.Edges)
	assert.Equal(t, 3, st.Reached)
	assert.Equal(t, 1, st.Unreached)
	assert.Equal(t, 4, st.Extractions)
	assert.Equal(t, 2, st.Relaxations)
	assert.Equal(t, int64(5), st.TotalWeight)
	assert.NotEqual(t, uuid.Nil, st.RunID)

	out := buf.String()
	assert.True(t, strings.Contains(out, "prim run finished"), out)
	assert.True(t, strings.Contains(out, "run_id="+st.RunID.String()), out)
}

func TestPrim_ConcurrentReaders(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g := randomGraph(t, r, 200, 800, 50)
	want, err := mst.Prim(g, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := mst.Prim(g, 0)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestParent_String(t *testing.T) {
	assert.Equal(t, "root", mst.Root().String())
	assert.Equal(t, "unreached", mst.Unreached().String())
	assert.Equal(t, "12", mst.AttachedTo(12).String())
	assert.True(t, mst.Parent{}.IsUnreached())
	_, ok := mst.Root().Vertex()
	assert.False(t, ok)
}
