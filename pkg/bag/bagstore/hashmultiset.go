package bagstore

import (
	list "github.com/bahlo/generic-list-go"
	"go.llib.dev/bagkit/pkg/bag"
)

// HashMultiset groups equal elements under a hash index.
// Equal elements are always next to each other in iteration order,
// but the order of the groups is unspecified.
// Positions are list elements, End is nil.
// The zero value is an empty HashMultiset ready to use.
type HashMultiset[T comparable] struct {
	chain  *list.List[T]
	groups map[T]*hashGroup[T]
}

type hashGroup[T any] struct {
	first, last *list.Element[T]
	n           int
}

var (
	_ bag.KeyedStore[int, *list.Element[int]]      = (*HashMultiset[int])(nil)
	_ bag.BackAccessor[*list.Element[int]]         = (*HashMultiset[int])(nil)
	_ bag.KeyedReferencer[int, *list.Element[int]] = (*HashMultiset[int])(nil)
	_ bag.Counter[int]                             = (*HashMultiset[int])(nil)
)

func MakeHashMultiset[T comparable](vs ...T) *HashMultiset[T] {
	var ms HashMultiset[T]
	for _, v := range vs {
		ms.Insert(nil, v)
	}
	return &ms
}

func (ms *HashMultiset[T]) init() {
	if ms.chain == nil {
		ms.chain = list.New[T]()
	}
	if ms.groups == nil {
		ms.groups = make(map[T]*hashGroup[T])
	}
}

func (ms *HashMultiset[T]) Begin() *list.Element[T] {
	ms.init()
	return ms.chain.Front()
}

func (ms *HashMultiset[T]) End() *list.Element[T] { return nil }

func (ms *HashMultiset[T]) Next(e *list.Element[T]) *list.Element[T] { return e.Next() }

func (ms *HashMultiset[T]) Value(e *list.Element[T]) T { return e.Value }

func (ms *HashMultiset[T]) UnsafeRef(e *list.Element[T]) *T { return &e.Value }

func (ms *HashMultiset[T]) Last() *list.Element[T] {
	ms.init()
	return ms.chain.Back()
}

func (ms *HashMultiset[T]) Len() int {
	ms.init()
	return ms.chain.Len()
}

// Insert adds v at the end of its group. pos is ignored.
// A value that is not equal to itself, like a float NaN, gets no group:
// it can be iterated and erased by position, but never found.
func (ms *HashMultiset[T]) Insert(_ *list.Element[T], v T) *list.Element[T] {
	ms.init()
	if v != v {
		return ms.chain.PushBack(v)
	}
	if g, ok := ms.groups[v]; ok {
		e := ms.chain.InsertAfter(v, g.last)
		g.last = e
		g.n++
		return e
	}
	e := ms.chain.PushBack(v)
	ms.groups[v] = &hashGroup[T]{first: e, last: e, n: 1}
	return e
}

func (ms *HashMultiset[T]) Erase(e *list.Element[T]) *list.Element[T] {
	ms.init()
	next := e.Next()
	g, ok := ms.groups[e.Value]
	if !ok {
		ms.chain.Remove(e)
		return next
	}
	g.n--
	switch {
	case g.n == 0:
		delete(ms.groups, e.Value)
	case e == g.first:
		g.first = e.Next()
	case e == g.last:
		g.last = e.Prev()
	}
	ms.chain.Remove(e)
	return next
}

func (ms *HashMultiset[T]) EraseRange(first, last *list.Element[T]) *list.Element[T] {
	for first != last {
		first = ms.Erase(first)
	}
	return last
}

// EqualRange returns the group of elements equal to v, or an empty range at End.
func (ms *HashMultiset[T]) EqualRange(v T) (first, last *list.Element[T]) {
	ms.init()
	g, ok := ms.groups[v]
	if !ok {
		return nil, nil
	}
	return g.first, g.last.Next()
}

func (ms *HashMultiset[T]) Find(v T) *list.Element[T] {
	ms.init()
	if g, ok := ms.groups[v]; ok {
		return g.first
	}
	return nil
}

// Count returns the number of elements equal to v in O(1).
func (ms *HashMultiset[T]) Count(v T) int {
	ms.init()
	if g, ok := ms.groups[v]; ok {
		return g.n
	}
	return 0
}
