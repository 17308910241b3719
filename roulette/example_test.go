package roulette_test

import (
	"fmt"

	"github.com/katalvlaran/antwalk/roulette"
)

// ExampleNormalize shows the probability law a wheel spins with.
func ExampleNormalize() {
	wheel := []roulette.Candidate[string]{
		{Weight: 1, Item: "north"},
		{Weight: 3, Item: "east"},
	}
	for _, c := range roulette.Normalize(wheel) {
		fmt.Printf("%s %.2f\n", c.Item, c.Weight)
	}

	// Output:
	// north 0.25
	// east 0.75
}

// ExampleSelector_Spin demonstrates the dead-end signal of an empty wheel.
func ExampleSelector_Spin() {
	sel := roulette.NewSelector[string](roulette.WithSeed(1))

	_, ok := sel.Spin(nil)
	fmt.Println("selected:", ok)

	item, ok := sel.Spin([]roulette.Candidate[string]{{Weight: 2, Item: "only"}})
	fmt.Println("selected:", ok, item)

	// Output:
	// selected: false
	// selected: true only
}
