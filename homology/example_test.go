package homology_test

import (
	"fmt"

	"github.com/katalvlaran/birips/homology"
	"github.com/katalvlaran/birips/pointcloud"
)

// ExampleExtract finds the unit square's loop once its sides enter the
// filtration; the diagonals form a matching and add nothing.
func ExampleExtract() {
	c := pointcloud.Cloud{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, r := range []float64{0.5, 1, 1.5} {
		gens, err := homology.Extract(c, r)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(r, len(gens))
	}

	gens, _ := homology.Extract(c, 1)
	fmt.Println(gens[0])
	// Output:
	// 0.5 0
	// 1 1
	// 1.5 1
	// (0, 0) → (1, 0) → (1, 1) → (0, 1) → (0, 0)
}
