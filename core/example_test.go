package core_test

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// ExampleGraph_Neighbors builds a two-movie cast graph and lists the
// co-star pairs of the person who links both movies.
func ExampleGraph_Neighbors() {
	b := core.NewBuilder()
	_ = b.AddPerson(core.Person{ID: "102", Name: "Kevin Bacon", BirthYear: 1958})
	_ = b.AddPerson(core.Person{ID: "129", Name: "Tom Cruise", BirthYear: 1962})
	_ = b.AddPerson(core.Person{ID: "193", Name: "Demi Moore", BirthYear: 1962})
	_ = b.AddMovie(core.Movie{ID: "104257", Title: "A Few Good Men", Year: 1992})
	_ = b.AddMovie(core.Movie{ID: "112384", Title: "Apollo 13", Year: 1995})
	_ = b.AddStar("102", "104257")
	_ = b.AddStar("129", "104257")
	_ = b.AddStar("193", "104257")
	_ = b.AddStar("102", "112384")
	// Unknown movie: rejected, graph unchanged.
	fmt.Println(b.AddStar("129", "999999") != nil)

	g := b.Build()
	nbrs, _ := g.Neighbors("102")
	for _, n := range nbrs {
		fmt.Println(n.MovieID, n.PersonID)
	}
	fmt.Println(g.PeopleNamed("kevin BACON"))
	// Output:
	// true
	// 104257 102
	// 104257 129
	// 104257 193
	// 112384 102
	// [102]
}
