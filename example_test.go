package bitset_test

import (
	"fmt"

	"github.com/hupe1980/bitset"
)

func Example() {
	b := bitset.New()
	b.Add(1)
	b.Add(2)
	b.Add(10)

	fmt.Println(b.ToArray(), b.Cardinality())
	// Output: [1 2 10] 3
}

// ExampleOr demonstrates the allocating set algebra; neither operand is
// modified.
func ExampleOr() {
	a := bitset.Of(1, 2)
	b := bitset.Of(2, 3)

	fmt.Println(bitset.Or(a, b))
	fmt.Println(a, b)
	// Output:
	// {1,2,3}
	// {1,2} {2,3}
}

// ExampleBitSet_AndNotCardinality computes the size of a difference
// without materializing it.
func ExampleBitSet_AndNotCardinality() {
	a := bitset.Of(1, 2, 3, 10)
	b := bitset.Of(1, 2)

	fmt.Println(a.AndNotCardinality(b))
	// Output: 2
}

// ExampleBitSet_Iterator walks the members with a pull-style cursor.
func ExampleBitSet_Iterator() {
	it := bitset.Of(3, 64, 1000).Iterator()
	for it.HasNext() {
		fmt.Println(it.Next())
	}
	// Output:
	// 3
	// 64
	// 1000
}

// ExampleBitSet_All iterates with a range-over-func loop.
func ExampleBitSet_All() {
	for x := range bitset.Of(5, 6, 700).All() {
		fmt.Println(x)
	}
	// Output:
	// 5
	// 6
	// 700
}
