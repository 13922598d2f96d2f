// Package datastruct holds the node based containers that back a bag:
// a doubly linked LinkedList with bidirectional cursors,
// and a forward only ForwardList.
package datastruct

import "iter"

// Sequence is a container walked through positions of type P.
// End is the position one past the last element.
type Sequence[T any, P comparable] interface {
	Iterable[T]
	Begin() P
	End() P
	Next(pos P) P
	Value(pos P) T
}

// PositionalSequence inserts before a position and erases at it.
type PositionalSequence[T any, P comparable] interface {
	Sequence[T, P]
	Insert(pos P, v T) P
	Erase(pos P) P
}

// ForwardSequence can only link and unlink after a position.
// BeforeBegin is the position in front of the first element.
type ForwardSequence[T any, P comparable] interface {
	Sequence[T, P]
	BeforeBegin() P
	InsertAfter(pos P, v T) P
	EraseAfter(pos P) P
}

var (
	_ PositionalSequence[int, Cursor[int]]    = (*LinkedList[int])(nil)
	_ ForwardSequence[int, *ForwardElem[int]] = (*ForwardList[int])(nil)
)

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Slicer[T any] interface {
	// Slice returns the contents as a slice of T.
	Slice() []T
}
