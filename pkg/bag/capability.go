package bag

import (
	"strings"
)

// Store is the minimal capability set every backing store has: forward traversal.
//
// C is the store's position type. End must return the same sentinel value on every call,
// so positions can be compared with ==.
// Everything else a Bag needs is discovered through the capability interfaces below.
type Store[T any, C comparable] interface {
	Begin() C
	End() C
	Next(pos C) C
	Value(pos C) T
}

// Inserter is a store with native positional insert.
// Insert adds v before pos and returns the position of the new element.
// Keyed stores may treat pos as a hint only.
type Inserter[T any, C comparable] interface {
	Insert(pos C, v T) C
}

// AfterInserter is a forward-only store that can only link new elements after an existing position.
type AfterInserter[T any, C comparable] interface {
	BeforeBegin() C
	InsertAfter(pos C, v T) C
}

// Eraser is a store that can erase by position and return the following position.
type Eraser[C comparable] interface {
	Erase(pos C) C
}

// AfterEraser is a forward-only store that can only erase the element after a position.
type AfterEraser[C comparable] interface {
	BeforeBegin() C
	EraseAfter(pos C) C
}

// Contiguous is an index addressed store where positions are int offsets,
// and End is the index past the last element.
// Erasure through Swap and PopBack is O(1), which a Bag can use since it promises no order.
type Contiguous interface {
	Len() int
	Swap(i, j int)
	PopBack()
}

// RangeEraser is a store that can erase a half-open range in one call.
type RangeEraser[C comparable] interface {
	EraseRange(first, last C) C
}

// FuncEraser is a store that can erase every matching element in a single in-place pass.
type FuncEraser[T any, C comparable] interface {
	EraseFunc(match func(T) bool) C
}

// EqualRanger is a keyed store that can locate the range of elements equivalent to a value
// without scanning.
type EqualRanger[T any, C comparable] interface {
	EqualRange(v T) (first, last C)
}

// Finder is a keyed store with a native lookup.
type Finder[T any, C comparable] interface {
	Find(v T) C
}

// BackAccessor is a store with native access to its last element.
// Last returns End when the store is empty.
type BackAccessor[C comparable] interface {
	Last() C
}

type Sizer interface {
	Len() int
}

// Counter is a keyed store that can count the elements equal to a value without scanning.
type Counter[T any] interface {
	Count(v T) int
}

// Referencer is a store whose elements can be modified in place.
type Referencer[T any, C comparable] interface {
	Ref(pos C) *T
}

// KeyedReferencer is a keyed store whose elements are immutable through normal access,
// because the value is also the ordering or hashing key.
//
// UnsafeRef still hands out a pointer to the stored value.
// Writing through it is only allowed when the write leaves the key untouched,
// for example a field that the store's comparison ignores.
// Changing the key corrupts the store.
type KeyedReferencer[T any, C comparable] interface {
	UnsafeRef(pos C) *T
}

// KeyedStore is the shape of the ordered and hashed multiset stores.
type KeyedStore[T any, C comparable] interface {
	Store[T, C]
	Inserter[T, C]
	Eraser[C]
	RangeEraser[C]
	EqualRanger[T, C]
	Finder[T, C]
	Sizer
}

// Capability is a native primitive that a store either has or lacks.
type Capability uint16

const (
	NativeInsert Capability = 1 << iota
	InsertAfter
	NativeErase
	EraseAfter
	ContiguousErase
	RangeErase
	FuncErase
	KeyedErase
	KeyedFind
	NativeBack
	NativeSize
	MutableRef
	KeyedRef
	NativeCount
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{NativeInsert, "native-insert"},
	{InsertAfter, "insert-after"},
	{NativeErase, "native-erase"},
	{EraseAfter, "erase-after"},
	{ContiguousErase, "contiguous"},
	{RangeErase, "range-erase"},
	{FuncErase, "func-erase"},
	{KeyedErase, "keyed-erase"},
	{KeyedFind, "keyed-find"},
	{NativeBack, "native-back"},
	{NativeSize, "native-size"},
	{MutableRef, "mutable-ref"},
	{KeyedRef, "keyed-ref"},
	{NativeCount, "native-count"},
}

// Capabilities is the classification of a store.
type Capabilities Capability

func (cs Capabilities) Has(c Capability) bool {
	return Capability(cs)&c == c
}

// List returns the names of the present capabilities in a fixed order.
func (cs Capabilities) List() []string {
	var names []string
	for _, cn := range capabilityNames {
		if cs.Has(cn.c) {
			names = append(names, cn.name)
		}
	}
	return names
}

func (cs Capabilities) String() string {
	return strings.Join(cs.List(), ",")
}

// Classify reports which capabilities a store has.
func Classify[T any, C comparable](s Store[T, C]) Capabilities {
	var cs Capability
	if _, ok := s.(Inserter[T, C]); ok {
		cs |= NativeInsert
	}
	if _, ok := s.(AfterInserter[T, C]); ok {
		cs |= InsertAfter
	}
	if _, ok := s.(Eraser[C]); ok {
		cs |= NativeErase
	}
	if _, ok := s.(AfterEraser[C]); ok {
		cs |= EraseAfter
	}
	if _, ok := s.(Contiguous); ok && isIndexed[C]() {
		cs |= ContiguousErase
	}
	if _, ok := s.(RangeEraser[C]); ok {
		cs |= RangeErase
	}
	if _, ok := s.(FuncEraser[T, C]); ok {
		cs |= FuncErase
	}
	if _, ok := s.(EqualRanger[T, C]); ok && cs&RangeErase != 0 {
		cs |= KeyedErase
	}
	if _, ok := s.(Finder[T, C]); ok {
		cs |= KeyedFind
	}
	if _, ok := s.(BackAccessor[C]); ok {
		cs |= NativeBack
	}
	if _, ok := s.(Sizer); ok {
		cs |= NativeSize
	}
	if _, ok := s.(Referencer[T, C]); ok {
		cs |= MutableRef
	}
	if _, ok := s.(KeyedReferencer[T, C]); ok {
		cs |= KeyedRef
	}
	if _, ok := s.(Counter[T]); ok {
		cs |= NativeCount
	}
	return Capabilities(cs)
}

func isIndexed[C comparable]() bool {
	var zero C
	_, ok := any(zero).(int)
	return ok
}
