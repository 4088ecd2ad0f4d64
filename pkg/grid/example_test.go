package grid_test

import (
	"fmt"

	"github.com/matzehuels/arcgrid/pkg/grid"
)

func ExampleGrid_Set() {
	g, _ := grid.New(3, 3, grid.Background)
	_ = g.Set(grid.Coord{Row: 1, Col: 1}, 5)
	fmt.Println(g)
	// Output:
	// 000
	// 050
	// 000
}

func ExampleParse() {
	g := grid.MustParse(`
		120
		003`)
	fmt.Println(g.Height(), g.Width())
	fmt.Println(g.Ints())
	// Output:
	// 2 3
	// [[1 2 0] [0 0 3]]
}
