package replicate_test

import (
	"fmt"

	"github.com/matzehuels/arcgrid/pkg/grid"
	"github.com/matzehuels/arcgrid/pkg/objects"
	"github.com/matzehuels/arcgrid/pkg/replicate"
)

func ExampleReplicate() {
	// The green cell adopts the yellow marker's colour and repeats rightwards
	// every two columns.
	g := grid.MustParse("30400")
	obj := objects.Extract(g)[0]

	out, err := replicate.Replicate(g, obj)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: 30404
}
