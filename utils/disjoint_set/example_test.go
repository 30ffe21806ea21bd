package disjoint_set_test

import (
	"fmt"
	"log"

	"github.com/FrenchMajesty/unionfind/utils/disjoint_set"
)

// Example shows grouping elements and looking up their representatives
func Example() {
	set := disjoint_set.MakeSet([]int{1, 2, 3, 4})

	if err := disjoint_set.Union(set[0], set[1]); err != nil {
		log.Fatal(err)
	}
	if err := disjoint_set.Union(set[0], set[2]); err != nil {
		log.Fatal(err)
	}

	for _, n := range set {
		fmt.Printf("%d -> %d\n", n.Value(), disjoint_set.Find(n).Value())
	}
	fmt.Println("sets:", set[0].Forest().CountSets())

	// Output:
	// 1 -> 1
	// 2 -> 1
	// 3 -> 1
	// 4 -> 4
	// sets: 2
}

// Example shows rendering a forest for Graphviz
func ExampleExportText() {
	set := disjoint_set.MakeSet([]string{"A", "B", "C"})
	if err := disjoint_set.Union(set[1], set[2]); err != nil {
		log.Fatal(err)
	}

	fmt.Print(disjoint_set.ExportText("forest", set))

	// Output:
	// digraph forest {
	//   "A" -> "A";
	//   "B" -> "B";
	//   "B" -> "C";
	// }
}
