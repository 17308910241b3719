// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/antwalk/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors lists the neighborhood of a corner and of an
// interior cell of a 4×3 grid.
//
// Expected: 3 neighbors for the corner, 8 for the interior cell.
//
// Complexity: O(1)
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.NewGrid(4, 3)

	corner := g.Neighbors(gridgraph.Vertex{X: 0, Y: 0})
	fmt.Println("corner:", corner)
	fmt.Println("interior:", len(g.Neighbors(gridgraph.Vertex{X: 1, Y: 1})))

	// Output:
	// corner: [(1,0) (0,1) (1,1)]
	// interior: 8
}

////////////////////////////////////////////////////////////////////////////////
// Example: Index and StepCost
////////////////////////////////////////////////////////////////////////////////

// ExampleStepCost shows the row-major index of a vertex and the price of an
// orthogonal and a diagonal move.
func ExampleStepCost() {
	g, _ := gridgraph.NewGrid(4, 3)
	a := gridgraph.Vertex{X: 1, Y: 1}

	fmt.Println("index:", g.Index(a))
	fmt.Printf("orthogonal: %.4f\n", gridgraph.StepCost(a, gridgraph.Vertex{X: 2, Y: 1}))
	fmt.Printf("diagonal: %.4f\n", gridgraph.StepCost(a, gridgraph.Vertex{X: 2, Y: 2}))

	// Output:
	// index: 5
	// orthogonal: 1.0000
	// diagonal: 1.4142
}
