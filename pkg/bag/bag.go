// Package bag implements a multiset container adapter.
//
// A Bag stores values without regard to order and allows duplicates.
// It owns a single backing store, and adapts the store's native primitives
// to one uniform operation set.
// Stores only need to support forward traversal (Store);
// every other primitive is optional and discovered from the store's method set.
// When a primitive is missing, the Bag falls back to an algorithm built from the ones that exist,
// for example a predecessor scan on a forward-only list.
//
// A Bag is not safe for concurrent use.
package bag

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrUnsupportedStore is returned when a store lacks the primitives needed to classify it.
	ErrUnsupportedStore errorkit.Error = "bag: unsupported backing store"
	// ErrNoReferenceAccess is the panic value of reference access on a store that can't hand out references.
	ErrNoReferenceAccess errorkit.Error = "bag: store has no reference access"
)

// Bag is a multiset of T over a backing store with positions of type C.
//
// Positions returned by the Bag are the store's own positions,
// so their invalidation rules are the store's rules.
// Node based stores keep positions valid until their element is erased,
// contiguous stores may invalidate positions after an erased or inserted index.
type Bag[T comparable, C comparable] struct {
	store Store[T, C]
	ops   dispatch[T, C]
}

// New takes ownership of store and returns a Bag over it.
// The store may already contain elements.
func New[T comparable, C comparable](store Store[T, C]) (*Bag[T, C], error) {
	ops, err := resolve(store)
	if err != nil {
		return nil, err
	}
	return &Bag[T, C]{store: store, ops: ops}, nil
}

// Insert adds v to the bag and returns its position.
// Where v ends up in the iteration order depends on the store.
func (b *Bag[T, C]) Insert(v T) C {
	return b.ops.insert(v)
}

// InsertAt adds v next to pos and returns its position.
// pos must be a valid position of this bag.
// On forward-only stores this needs an O(n) scan for the predecessor of pos.
func (b *Bag[T, C]) InsertAt(pos C, v T) C {
	return b.ops.insertAt(pos, v)
}

// Erase removes the element at pos,
// and returns the position of the element that follows, or End.
// pos must point to an element of this bag.
func (b *Bag[T, C]) Erase(pos C) C {
	return b.ops.erase(pos)
}

// EraseValue removes every element equal to v.
// It returns the position that follows the last removed element,
// or End when v was not present.
// Which element that is, is up to the store; keyed stores make no promise about it.
func (b *Bag[T, C]) EraseValue(v T) C {
	return b.ops.eraseValue(v)
}

// EraseRange removes the elements of the half-open range [first, last).
func (b *Bag[T, C]) EraseRange(first, last C) C {
	return b.ops.eraseRange(first, last)
}

// Find returns the position of an element equal to v, or End.
func (b *Bag[T, C]) Find(v T) C {
	return b.ops.find(v)
}

func (b *Bag[T, C]) Contains(v T) bool {
	return b.Find(v) != b.store.End()
}

// Count returns the number of elements equal to v.
func (b *Bag[T, C]) Count(v T) int {
	return b.ops.count(v)
}

// Front returns the first element in the store's iteration order.
// The bag must not be empty.
func (b *Bag[T, C]) Front() T {
	return b.store.Value(b.store.Begin())
}

// Back returns the last element in the store's iteration order.
// The bag must not be empty.
func (b *Bag[T, C]) Back() T {
	return b.store.Value(b.ops.last())
}

// FrontRef returns a pointer to the first element.
// The bag must not be empty.
//
// On keyed stores (see KeyedReferencer) the pointer aliases the store's key:
// it may only be used to change parts of the value that don't take part in ordering or hashing.
func (b *Bag[T, C]) FrontRef() *T {
	return b.ops.ref(b.store.Begin())
}

// BackRef returns a pointer to the last element.
// The same restrictions apply as for FrontRef.
func (b *Bag[T, C]) BackRef() *T {
	return b.ops.ref(b.ops.last())
}

// Ref returns a pointer to the element at pos.
// The same restrictions apply as for FrontRef.
func (b *Bag[T, C]) Ref(pos C) *T {
	return b.ops.ref(pos)
}

// Len returns the number of elements.
// It is O(n) on stores without a native size.
func (b *Bag[T, C]) Len() int {
	return b.ops.size()
}

func (b *Bag[T, C]) Empty() bool {
	return b.store.Begin() == b.store.End()
}

// Clear removes every element.
func (b *Bag[T, C]) Clear() {
	b.ops.eraseRange(b.store.Begin(), b.store.End())
}

// Swap exchanges the contents of two bags in O(1).
// Positions keep pointing to the same elements, which now belong to the other bag.
func (b *Bag[T, C]) Swap(oth *Bag[T, C]) {
	b.store, oth.store = oth.store, b.store
	b.ops, oth.ops = oth.ops, b.ops
}

func (b *Bag[T, C]) Begin() C { return b.store.Begin() }

func (b *Bag[T, C]) End() C { return b.store.End() }

func (b *Bag[T, C]) Next(pos C) C { return b.store.Next(pos) }

func (b *Bag[T, C]) Value(pos C) T { return b.store.Value(pos) }

// Iter iterates over every element once, in the store's order.
// The bag must not be modified during iteration.
func (b *Bag[T, C]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := b.store.Begin(); pos != b.store.End(); pos = b.store.Next(pos) {
			if !yield(b.store.Value(pos)) {
				return
			}
		}
	}
}

func (b *Bag[T, C]) Slice() []T {
	var vs []T
	for v := range b.Iter() {
		vs = append(vs, v)
	}
	return vs
}

// Capabilities returns the classification of the underlying store.
func (b *Bag[T, C]) Capabilities() Capabilities {
	return b.ops.caps
}

// Store gives access to the owned backing store.
// Mutating it directly is fine as long as the store's own rules are respected.
func (b *Bag[T, C]) Store() Store[T, C] {
	return b.store
}
