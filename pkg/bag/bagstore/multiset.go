package bagstore

import (
	"cmp"

	"github.com/google/btree"
	"go.llib.dev/bagkit/pkg/bag"
)

const orderedDegree = 32

// OrderedMultiset keeps its elements sorted by a three-way comparison.
// Equivalent elements are kept in insertion order, after each other.
// Positions are entries, End is nil.
//
// Elements are keys, so they are only reachable for writing through UnsafeRef.
type OrderedMultiset[T any] struct {
	tree    *btree.BTreeG[*OrderedEntry[T]]
	compare func(a, b T) int
	seq     uint64
}

// OrderedEntry is a position in an OrderedMultiset.
type OrderedEntry[T any] struct {
	value T
	// seq tells apart equivalent values, zero is reserved for lookup pivots.
	seq uint64
}

func (e *OrderedEntry[T]) Value() T { return e.value }

var (
	_ bag.KeyedStore[int, *OrderedEntry[int]]      = (*OrderedMultiset[int])(nil)
	_ bag.BackAccessor[*OrderedEntry[int]]         = (*OrderedMultiset[int])(nil)
	_ bag.KeyedReferencer[int, *OrderedEntry[int]] = (*OrderedMultiset[int])(nil)
	_ bag.Counter[int]                             = (*OrderedMultiset[int])(nil)
)

func NewOrderedMultiset[T cmp.Ordered](vs ...T) *OrderedMultiset[T] {
	return NewOrderedMultisetFunc(cmp.Compare[T], vs...)
}

// NewOrderedMultisetFunc makes an OrderedMultiset that orders its elements with compare.
// compare must be a strict weak ordering, the same way as for slices.SortFunc.
func NewOrderedMultisetFunc[T any](compare func(a, b T) int, vs ...T) *OrderedMultiset[T] {
	ms := &OrderedMultiset[T]{compare: compare}
	ms.tree = btree.NewG(orderedDegree, ms.less)
	for _, v := range vs {
		ms.Insert(nil, v)
	}
	return ms
}

func (ms *OrderedMultiset[T]) less(a, b *OrderedEntry[T]) bool {
	if c := ms.compare(a.value, b.value); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (ms *OrderedMultiset[T]) Begin() *OrderedEntry[T] {
	e, _ := ms.tree.Min()
	return e
}

func (ms *OrderedMultiset[T]) End() *OrderedEntry[T] { return nil }

func (ms *OrderedMultiset[T]) Next(e *OrderedEntry[T]) *OrderedEntry[T] {
	var next *OrderedEntry[T]
	ms.tree.AscendGreaterOrEqual(e, func(item *OrderedEntry[T]) bool {
		if item == e {
			return true
		}
		next = item
		return false
	})
	return next
}

func (ms *OrderedMultiset[T]) Value(e *OrderedEntry[T]) T { return e.value }

func (ms *OrderedMultiset[T]) UnsafeRef(e *OrderedEntry[T]) *T { return &e.value }

func (ms *OrderedMultiset[T]) Last() *OrderedEntry[T] {
	e, _ := ms.tree.Max()
	return e
}

func (ms *OrderedMultiset[T]) Len() int { return ms.tree.Len() }

// Insert places v after the elements equivalent to it. pos is ignored.
func (ms *OrderedMultiset[T]) Insert(_ *OrderedEntry[T], v T) *OrderedEntry[T] {
	ms.seq++
	e := &OrderedEntry[T]{value: v, seq: ms.seq}
	ms.tree.ReplaceOrInsert(e)
	return e
}

func (ms *OrderedMultiset[T]) Erase(e *OrderedEntry[T]) *OrderedEntry[T] {
	next := ms.Next(e)
	ms.tree.Delete(e)
	return next
}

func (ms *OrderedMultiset[T]) EraseRange(first, last *OrderedEntry[T]) *OrderedEntry[T] {
	if first == last {
		return last
	}
	var doomed []*OrderedEntry[T]
	ms.tree.AscendGreaterOrEqual(first, func(item *OrderedEntry[T]) bool {
		if item == last {
			return false
		}
		doomed = append(doomed, item)
		return true
	})
	for _, e := range doomed {
		ms.tree.Delete(e)
	}
	return last
}

// EqualRange returns the half-open range of elements equivalent to v.
// When there is none, both ends point to where v would be inserted.
func (ms *OrderedMultiset[T]) EqualRange(v T) (first, last *OrderedEntry[T]) {
	var found bool
	ms.tree.AscendGreaterOrEqual(&OrderedEntry[T]{value: v}, func(item *OrderedEntry[T]) bool {
		if ms.compare(item.value, v) != 0 {
			last = item
			return false
		}
		if !found {
			first, found = item, true
		}
		return true
	})
	if !found {
		first = last
	}
	return first, last
}

func (ms *OrderedMultiset[T]) Find(v T) *OrderedEntry[T] {
	var found *OrderedEntry[T]
	ms.tree.AscendGreaterOrEqual(&OrderedEntry[T]{value: v}, func(item *OrderedEntry[T]) bool {
		if ms.compare(item.value, v) == 0 {
			found = item
		}
		return false
	})
	return found
}

// Count returns the number of elements equivalent to v.
func (ms *OrderedMultiset[T]) Count(v T) int {
	var n int
	ms.tree.AscendGreaterOrEqual(&OrderedEntry[T]{value: v}, func(item *OrderedEntry[T]) bool {
		if ms.compare(item.value, v) != 0 {
			return false
		}
		n++
		return true
	})
	return n
}
