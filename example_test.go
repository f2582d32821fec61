package staticindex_test

import (
	"fmt"

	"github.com/hupe1980/staticindex"
)

func ExampleBPTree() {
	keys := []uint64{1, 3, 5, 7, 9, 11, 13, 15}

	tree, err := staticindex.BPTree().Order(2).Build()
	if err != nil {
		panic(err)
	}
	if err := tree.Build(keys); err != nil {
		panic(err)
	}

	pos, found := tree.Search(7)
	fmt.Println(pos, found)

	_, found = tree.Search(8)
	fmt.Println(found)
	// Output:
	// 3 true
	// false
}

func ExampleRMI() {
	keys := []uint64{1, 3, 5, 7, 9, 11, 13, 15}

	learned, err := staticindex.RMI().LeafCount(2).Build()
	if err != nil {
		panic(err)
	}
	if err := learned.Train(keys); err != nil {
		panic(err)
	}

	pos, found := learned.Search(7)
	fmt.Println(pos, found)
	// Output:
	// 3 true
}
