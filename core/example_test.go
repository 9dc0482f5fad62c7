package core_test

import (
	"fmt"

	"github.com/katalvlaran/genregraph/core"
)

// ExampleBuild links two artists that share the Rock genre; the Jazz artist stays isolated.
func ExampleBuild() {
	g, err := core.Build([]core.Record{
		{ID: "A", Categories: []string{"Rock", "Pop"}, Length: 1000},
		{ID: "B", Categories: []string{"Rock"}, Length: 500},
		{ID: "C", Categories: []string{"Jazz"}, Length: 2000},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(g.Neighbors("A"))
	fmt.Println(len(g.Neighbors("C")))
	fmt.Println(g.Stats().EntityLinks)
	// Output:
	// [{B 1}]
	// 0
	// 1
}

// ExampleWithCategoryNodes builds the mixed bipartite variant.
func ExampleWithCategoryNodes() {
	g, _ := core.Build([]core.Record{
		{ID: "A", Categories: []string{"Rock"}, Length: 1000},
	}, core.WithCategoryNodes("genre:"))

	fmt.Println(g.Nodes())
	fmt.Println(g.IsMember("A"), g.IsMember("genre:Rock"))
	// Output:
	// [A genre:Rock]
	// true false
}
