package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dfs"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/topk"
)

// recorder keeps every offered path and never prunes.
type recorder struct {
	got []string
}

func (r *recorder) Offer(p core.Path)     { r.got = append(r.got, p.String()) }
func (r *recorder) Dominated(_ int64) bool { return false }
func (r *recorder) paths() []string        { return r.got }

func st(id string) core.Station { return core.Station{ID: id, Name: id} }

// buildNet creates a network from {src, dst, minutes} triples in declaration order.
func buildNet(t *testing.T, ids []string, edges [][3]interface{}) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, id := range ids {
		require.NoError(t, n.AddStation(st(id)))
	}
	for _, e := range edges {
		c := core.Connection{
			Source:      st(e[0].(string)),
			Destination: st(e[1].(string)),
			Time:        core.Minutes(int64(e[2].(int))),
		}
		require.NoError(t, n.AddConnection(c))
	}

	return n
}

// triangle: A–B 30, B–C 10, A–C 70.
func triangle(t *testing.T) *core.Network {
	return buildNet(t, []string{"A", "B", "C"}, [][3]interface{}{
		{"A", "B", 30}, {"B", "C", 10}, {"A", "C", 70},
	})
}

func TestEnumerate_NilInputs(t *testing.T) {
	res, err := dfs.Enumerate(nil, st("A"), st("B"), &recorder{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilNetwork)

	res, err = dfs.Enumerate(triangle(t), st("A"), st("B"), nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrNilCollector)
}

func TestEnumerate_UnknownStation(t *testing.T) {
	n := triangle(t)

	_, err := dfs.Enumerate(n, st("X"), st("C"), &recorder{})
	assert.ErrorIs(t, err, core.ErrUnknownStation)

	_, err = dfs.Enumerate(n, st("A"), st("Y"), &recorder{})
	assert.ErrorIs(t, err, core.ErrUnknownStation)

	// Same ID, different name: not the same station.
	_, err = dfs.Enumerate(n, core.Station{ID: "A", Name: "Other"}, st("C"), &recorder{})
	assert.ErrorIs(t, err, core.ErrUnknownStation)
}

func TestEnumerate_DiscoveryOrder(t *testing.T) {
	r := &recorder{}
	stats, err := dfs.Enumerate(triangle(t), st("A"), st("C"), r)
	require.NoError(t, err)

	assert.Equal(t, []string{"A->B->C, 40", "A->C, 70"}, r.paths())
	assert.Equal(t, 2, stats.Offered)
	assert.Equal(t, 0, stats.Pruned)
}

func TestEnumerate_StartIsEnd(t *testing.T) {
	r := &recorder{}
	stats, err := dfs.Enumerate(triangle(t), st("B"), st("B"), r)
	require.NoError(t, err)

	assert.Equal(t, []string{"B, 0"}, r.paths())
	assert.Equal(t, 0, stats.Expanded)
}

func TestEnumerate_StopsAtEnd(t *testing.T) {
	// A–B, B–C, C–A: from A to B there are exactly A->B and A->C->B.
	// Paths are never extended past B, so B->C->... is not explored.
	n := buildNet(t, []string{"A", "B", "C"}, [][3]interface{}{
		{"A", "B", 1}, {"B", "C", 1}, {"C", "A", 1},
	})
	r := &recorder{}
	_, err := dfs.Enumerate(n, st("A"), st("B"), r)
	require.NoError(t, err)

	assert.Equal(t, []string{"A->B, 1", "A->C->B, 2"}, r.paths())
}

func TestEnumerate_DuplicateEdges(t *testing.T) {
	// The same pair declared twice is two traversal options.
	n := buildNet(t, []string{"A", "B"}, [][3]interface{}{
		{"A", "B", 5}, {"B", "A", 5},
	})
	r := &recorder{}
	_, err := dfs.Enumerate(n, st("A"), st("B"), r)
	require.NoError(t, err)
	assert.Equal(t, []string{"A->B, 5", "A->B, 5"}, r.paths())

	// The selector collapses them into one route.
	sel := topk.New(topk.DefaultK)
	_, err = dfs.Enumerate(n, st("A"), st("B"), sel)
	require.NoError(t, err)
	assert.Len(t, sel.Finalize(), 1)
}

func TestEnumerate_Disconnected(t *testing.T) {
	n := buildNet(t, []string{"A", "B", "C"}, [][3]interface{}{{"A", "B", 3}})
	r := &recorder{}
	stats, err := dfs.Enumerate(n, st("A"), st("C"), r)
	require.NoError(t, err)
	assert.Empty(t, r.paths())
	assert.Equal(t, 2, stats.Explored)
}

func TestEnumerate_PruningWithSelector(t *testing.T) {
	n, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 50)},
		builder.Complete(7),
	)
	require.NoError(t, err)

	sel := topk.New(3)
	stats, err := dfs.Enumerate(n, st("0"), st("6"), sel)
	require.NoError(t, err)
	assert.Positive(t, stats.Pruned, "complete network must trigger pruning")
	assert.Len(t, sel.Finalize(), 3)
}

// TestEnumerate_PruningNeverChangesResult checks that the selector ends up
// with the same ranked routes with and without pruning.
func TestEnumerate_PruningNeverChangesResult(t *testing.T) {
	fixtures := []struct {
		name string
		cons builder.Constructor
		from string
		to   string
	}{
		{"complete7", builder.Complete(7), "0", "6"},
		{"grid3x4", builder.Grid(3, 4), "0,0", "2,3"},
		{"cycle8", builder.Cycle(8), "0", "4"},
		{"sparse12", builder.RandomSparse(12, 0.35), "0", "11"},
	}

	for _, fx := range fixtures {
		for seed := int64(1); seed <= 5; seed++ {
			n, err := builder.BuildNetwork(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 20)},
				fx.cons,
			)
			require.NoError(t, err)

			pruned := topk.New(3)
			_, err = dfs.Enumerate(n, st(fx.from), st(fx.to), pruned)
			require.NoError(t, err)

			full := topk.New(3)
			_, err = dfs.Enumerate(n, st(fx.from), st(fx.to), full, dfs.WithPruning(false))
			require.NoError(t, err)

			if diff := cmp.Diff(full.Finalize(), pruned.Finalize()); diff != "" {
				t.Errorf("%s seed=%d: pruning changed result (-full +pruned):\n%s", fx.name, seed, diff)
			}

			dist, err := dijkstra.Dijkstra(n, st(fx.to))
			require.NoError(t, err)
			bounded := topk.New(3)
			_, err = dfs.Enumerate(n, st(fx.from), st(fx.to), bounded, dfs.WithLowerBound(dist.Dist))
			require.NoError(t, err)

			if diff := cmp.Diff(full.Finalize(), bounded.Finalize()); diff != "" {
				t.Errorf("%s seed=%d: lower bound changed result (-full +bounded):\n%s", fx.name, seed, diff)
			}
		}
	}
}

func TestEnumerate_LowerBoundPrunesMore(t *testing.T) {
	n, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(1, 30)},
		builder.Complete(8),
	)
	require.NoError(t, err)
	dist, err := dijkstra.Dijkstra(n, st("7"))
	require.NoError(t, err)

	plain, err := dfs.Enumerate(n, st("0"), st("7"), topk.New(3))
	require.NoError(t, err)
	bounded, err := dfs.Enumerate(n, st("0"), st("7"), topk.New(3), dfs.WithLowerBound(dist.Dist))
	require.NoError(t, err)

	assert.LessOrEqual(t, bounded.Expanded, plain.Expanded)
	assert.LessOrEqual(t, bounded.Offered, plain.Offered)
}

func TestEnumerate_LowerBoundSkipsDeadEnds(t *testing.T) {
	// D hangs off A and can never lead to C.
	n := buildNet(t, []string{"A", "B", "C", "D", "E"}, [][3]interface{}{
		{"A", "D", 1}, {"D", "E", 1}, {"A", "B", 30}, {"B", "C", 10},
	})
	dist, err := dijkstra.Dijkstra(n, st("C"))
	require.NoError(t, err)

	rec := &recorder{}
	stats, err := dfs.Enumerate(n, st("A"), st("C"), rec, dfs.WithLowerBound(dist.Dist))
	require.NoError(t, err)
	assert.Equal(t, []string{"A->B->C, 40"}, rec.paths())
	assert.Equal(t, 1, stats.Pruned)
}

func TestEnumerate_BadLowerBound(t *testing.T) {
	_, err := dfs.Enumerate(triangle(t), st("A"), st("C"), &recorder{}, dfs.WithLowerBound([]int64{0}))
	assert.ErrorIs(t, err, dfs.ErrBadLowerBound)
}

func TestEnumerate_Cancellation(t *testing.T) {
	n, err := builder.BuildNetwork(nil, builder.Complete(6))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Enumerate(n, st("0"), st("5"), &recorder{}, dfs.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEnumerate_CancelMidway(t *testing.T) {
	n, err := builder.BuildNetwork(nil, builder.Complete(8))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	offers := 0
	hook := func(core.Path) {
		offers++
		if offers == 5 {
			cancel()
		}
	}

	_, err = dfs.Enumerate(n, st("0"), st("7"), &recorder{}, dfs.WithContext(ctx), dfs.WithOnOffer(hook))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, offers)
}

func TestEnumerate_OnOffer(t *testing.T) {
	var seen []int64
	_, err := dfs.Enumerate(triangle(t), st("A"), st("C"), &recorder{},
		dfs.WithOnOffer(func(p core.Path) { seen = append(seen, p.Weight) }))
	require.NoError(t, err)
	assert.Equal(t, []int64{40, 70}, seen)
}

func TestDefaultOptions(t *testing.T) {
	o := dfs.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.True(t, o.Pruning)
	assert.Nil(t, o.OnOffer)
	assert.Nil(t, o.LowerBound)

	//nolint:staticcheck // SA1012
	dfs.WithContext(nil)(&o)
	assert.NotNil(t, o.Ctx)
}
