package bag_test

import (
	"fmt"

	"go.llib.dev/bagkit/pkg/bag"
	"go.llib.dev/bagkit/pkg/bag/bagstore"
	"go.llib.dev/bagkit/pkg/datastruct"
)

func ExampleNew() {
	b, err := bag.New(&datastruct.LinkedList[string]{})
	if err != nil {
		panic(err)
	}

	b.Insert("foo")
	b.Insert("bar")
	b.Insert("foo")

	fmt.Println(b.Len(), b.Count("foo"))
	// Output: 3 2
}

func ExampleBag_EraseValue() {
	b, err := bag.New(bagstore.NewOrderedMultiset(3, 1, 2, 1))
	if err != nil {
		panic(err)
	}

	b.EraseValue(1)

	fmt.Println(b.Slice())
	// Output: [2 3]
}

func ExampleBag_InsertAt() {
	b, err := bag.New(&datastruct.ForwardList[int]{})
	if err != nil {
		panic(err)
	}

	b.Insert(3)
	b.Insert(1)
	b.InsertAt(b.Find(3), 2)

	fmt.Println(b.Slice())
	// Output: [1 2 3]
}

func ExampleClassify() {
	fmt.Println(bag.Classify[int](bagstore.MakeDeque[int]()))
	// Output: native-insert,native-erase,contiguous,range-erase,native-back,native-size
}
