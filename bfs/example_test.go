package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
)

// ExampleShortestPath links two actors who never shared a movie through a
// third who appeared with both.
func ExampleShortestPath() {
	b := core.NewBuilder()
	for _, p := range []core.Person{
		{ID: "102", Name: "Kevin Bacon", BirthYear: 1958},
		{ID: "129", Name: "Tom Cruise", BirthYear: 1962},
		{ID: "158", Name: "Tom Hanks", BirthYear: 1956},
	} {
		_ = b.AddPerson(p)
	}
	_ = b.AddMovie(core.Movie{ID: "104257", Title: "A Few Good Men", Year: 1992})
	_ = b.AddMovie(core.Movie{ID: "112384", Title: "Apollo 13", Year: 1995})
	_ = b.AddStar("129", "104257")
	_ = b.AddStar("102", "104257")
	_ = b.AddStar("102", "112384")
	_ = b.AddStar("158", "112384")
	g := b.Build()

	res, err := bfs.ShortestPath(g, "129", "158")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Degrees())
	for _, s := range res.Steps {
		fmt.Println(s.MovieID, s.PersonID)
	}
	// Output:
	// connected 2
	// 104257 102
	// 112384 158
}

// ExampleShortestPath_depthLimit shows that a depth limit turns a far
// target into NoConnection.
func ExampleShortestPath_depthLimit() {
	b := core.NewBuilder()
	for i := 0; i < 5; i++ {
		_ = b.AddPerson(core.Person{ID: fmt.Sprintf("v%d", i)})
	}
	for i := 0; i < 4; i++ {
		m := fmt.Sprintf("m%d", i)
		_ = b.AddMovie(core.Movie{ID: m})
		_ = b.AddStar(fmt.Sprintf("v%d", i), m)
		_ = b.AddStar(fmt.Sprintf("v%d", i+1), m)
	}
	g := b.Build()

	res, _ := bfs.ShortestPath(g, "v0", "v4", bfs.WithMaxDepth(2))
	fmt.Println(res.Outcome)
	res, _ = bfs.ShortestPath(g, "v0", "v4")
	fmt.Println(res.Outcome, res.Degrees())
	// Output:
	// no_connection
	// connected 4
}
