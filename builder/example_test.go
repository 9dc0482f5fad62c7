package builder_test

import (
	"fmt"

	"github.com/katalvlaran/genregraph/builder"
	"github.com/katalvlaran/genregraph/core"
)

// ExampleStar builds a four-artist star and prints the hub's neighbors.
func ExampleStar() {
	records, _ := builder.Star(4, builder.WithLetterIDs())
	g, _ := core.Build(records)
	for _, n := range g.Neighbors("A") {
		fmt.Println(n.ID, n.Weight)
	}
	// Output:
	// B 1
	// C 1
	// D 1
}

// ExampleIslands shows the genres held by each island.
func ExampleIslands() {
	records, _ := builder.Islands(2, 2)
	for _, r := range records {
		fmt.Println(r.ID, r.Categories)
	}
	// Output:
	// a0 [g0]
	// a1 [g0]
	// a2 [g1]
	// a3 [g1]
}
