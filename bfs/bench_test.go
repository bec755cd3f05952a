package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// BenchmarkShortestPath_Chain measures search along a chain of N two-person movies.
func BenchmarkShortestPath_Chain(b *testing.B) {
	const N = 10000
	g, err := builder.BuildCast(nil, builder.Chain(N+1))
	if err != nil {
		b.Fatal(err)
	}
	target := builder.DefaultPersonID(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, "p0", target)
	}
}

// BenchmarkShortestPath_RandomCasts runs searches on a random dataset of
// 5000 people spread over 2000 movies of 2–8 stars.
func BenchmarkShortestPath_RandomCasts(b *testing.B) {
	g, err := builder.BuildCast([]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomCasts(5000, 2000, 2, 8))
	if err != nil {
		b.Fatal(err)
	}
	ids := g.PersonIDs()
	rng := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src, dst := ids[rng.Intn(len(ids))], ids[rng.Intn(len(ids))]
		_, _ = bfs.ShortestPath(g, src, dst)
	}
}

// BenchmarkNeighbors measures neighbor expansion for a prolific star.
func BenchmarkNeighbors(b *testing.B) {
	bld := core.NewBuilder()
	_ = bld.AddPerson(core.Person{ID: "hub"})
	for m := 0; m < 200; m++ {
		mid := fmt.Sprintf("m%d", m)
		_ = bld.AddMovie(core.Movie{ID: mid})
		_ = bld.AddStar("hub", mid)
		for s := 0; s < 10; s++ {
			pid := fmt.Sprintf("p%d_%d", m, s)
			_ = bld.AddPerson(core.Person{ID: pid})
			_ = bld.AddStar(pid, mid)
		}
	}
	g := bld.Build()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors("hub")
	}
}
