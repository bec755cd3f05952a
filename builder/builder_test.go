// File: builder_test.go
// Functional tests for every Constructor: counts, degrees between
// endpoints, idempotence and determinism under a seed.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

func degrees(t *testing.T, g *core.Graph, from, to string) int {
	t.Helper()
	res, err := bfs.ShortestPath(g, from, to)
	require.NoError(t, err)

	return res.Degrees()
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cons    []builder.Constructor
		want    core.Stats
		from    string
		to      string
		degrees int
	}{
		{
			name: "Chain(5)",
			cons: []builder.Constructor{builder.Chain(5)},
			want: core.Stats{People: 5, Movies: 4, Credits: 8, Names: 5},
			from: "p0", to: "p4", degrees: 4,
		},
		{
			name: "Ensemble(4)",
			cons: []builder.Constructor{builder.Ensemble(4)},
			want: core.Stats{People: 4, Movies: 1, Credits: 4, Names: 4},
			from: "p0", to: "p3", degrees: 1,
		},
		{
			name: "Chain(3)+Loners(5)",
			cons: []builder.Constructor{builder.Chain(3), builder.Loners(5)},
			want: core.Stats{People: 5, Movies: 2, Credits: 4, Names: 5},
			from: "p0", to: "p4", degrees: -1,
		},
		{
			name: "Chain(6)+Ensemble(6) shortcuts the chain",
			cons: []builder.Constructor{builder.Chain(6), builder.Ensemble(6)},
			want: core.Stats{People: 6, Movies: 6, Credits: 16, Names: 6},
			from: "p0", to: "p5", degrees: 1,
		},
		{
			name: "Chain(3) twice is idempotent",
			cons: []builder.Constructor{builder.Chain(3), builder.Chain(3)},
			want: core.Stats{People: 3, Movies: 2, Credits: 4, Names: 3},
			from: "p2", to: "p0", degrees: 2,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildCast(nil, tc.cons...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Stats())
			assert.Equal(t, tc.degrees, degrees(t, g, tc.from, tc.to))
		})
	}
}

func TestRandomCasts_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildCast([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomCasts(200, 80, 2, 5))
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	assert.Equal(t, a.Stats(), b.Stats())
	for _, id := range a.MovieIDs() {
		ma, _ := a.Movie(id)
		mb, ok := b.Movie(id)
		require.True(t, ok)
		assert.Equal(t, ma.Stars, mb.Stars)
		assert.GreaterOrEqual(t, len(ma.Stars), 2)
		assert.LessOrEqual(t, len(ma.Stars), 5)
	}
	assert.Equal(t, 200, a.Stats().People)
	assert.Equal(t, 80, a.Stats().Movies)
}

func TestRandomCasts_WithRand(t *testing.T) {
	g, err := builder.BuildCast([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.RandomCasts(3, 2, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Stats().Credits)
}

func TestBuilders_Errors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"Chain(1)", nil, builder.Chain(1), builder.ErrTooFewPeople},
		{"Ensemble(0)", nil, builder.Ensemble(0), builder.ErrTooFewPeople},
		{"Loners(0)", nil, builder.Loners(0), builder.ErrTooFewPeople},
		{"RandomCasts no movies", seeded, builder.RandomCasts(5, 0, 1, 2), builder.ErrTooFewPeople},
		{"RandomCasts lo>hi", seeded, builder.RandomCasts(5, 2, 3, 2), builder.ErrBadCastSize},
		{"RandomCasts hi>people", seeded, builder.RandomCasts(5, 2, 1, 6), builder.ErrBadCastSize},
		{"RandomCasts no rng", nil, builder.RandomCasts(5, 2, 1, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildCast(tc.opts, tc.con)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildCast([]builder.BuilderOption{
		builder.WithPersonIDs(func(i int) string { return string(rune('A' + i)) }),
		builder.WithMovieIDs(func(tag string, i int) string { return tag + "-film-" + string(rune('0'+i)) }),
		builder.WithNames(func(int) string { return "Same Name" }),
		builder.WithFirstYear(2000),
	}, builder.Chain(3))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.PeopleNamed("same name"))
	m, ok := g.Movie("c-film-1")
	require.True(t, ok)
	assert.Equal(t, 2001, m.Year)
	assert.Equal(t, []string{"B", "C"}, m.Stars)

	assert.Panics(t, func() { builder.WithPersonIDs(nil) })
	assert.Panics(t, func() { builder.WithMovieIDs(nil) })
	assert.Panics(t, func() { builder.WithNames(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestDefaultSchemes(t *testing.T) {
	assert.Equal(t, "p12", builder.DefaultPersonID(12))
	assert.Equal(t, "r3", builder.DefaultMovieID("r", 3))
	assert.Equal(t, "Person 7", builder.DefaultName(7))
}
