// Package bagstore adapts builtin and third-party containers to the bag.Store capability interfaces.
package bagstore

import (
	"slices"

	"go.llib.dev/bagkit/pkg/bag"
)

// Vector is a contiguous slice backed store.
// Positions are indexes, End is the length.
// The zero value is an empty Vector ready to use.
type Vector[T any] struct {
	vs []T
}

var (
	_ bag.Store[int, int]      = (*Vector[int])(nil)
	_ bag.Inserter[int, int]   = (*Vector[int])(nil)
	_ bag.Contiguous           = (*Vector[int])(nil)
	_ bag.RangeEraser[int]     = (*Vector[int])(nil)
	_ bag.Referencer[int, int] = (*Vector[int])(nil)
)

// MakeVector takes ownership of vs.
func MakeVector[T any](vs ...T) *Vector[T] {
	return &Vector[T]{vs: vs}
}

func (v *Vector[T]) Begin() int { return 0 }

func (v *Vector[T]) End() int { return len(v.vs) }

func (v *Vector[T]) Next(i int) int { return i + 1 }

func (v *Vector[T]) Value(i int) T { return v.vs[i] }

func (v *Vector[T]) Ref(i int) *T { return &v.vs[i] }

func (v *Vector[T]) Len() int { return len(v.vs) }

func (v *Vector[T]) Last() int {
	if len(v.vs) == 0 {
		return v.End()
	}
	return len(v.vs) - 1
}

// Insert shifts the elements from i by one, and puts val to i.
func (v *Vector[T]) Insert(i int, val T) int {
	v.vs = slices.Insert(v.vs, i, val)
	return i
}

// Erase removes the element at i while keeping the order of the rest.
func (v *Vector[T]) Erase(i int) int {
	v.vs = slices.Delete(v.vs, i, i+1)
	return i
}

func (v *Vector[T]) EraseRange(first, last int) int {
	v.vs = slices.Delete(v.vs, first, last)
	return first
}

func (v *Vector[T]) Swap(i, j int) {
	v.vs[i], v.vs[j] = v.vs[j], v.vs[i]
}

func (v *Vector[T]) PopBack() {
	var zero T
	v.vs[len(v.vs)-1] = zero
	v.vs = v.vs[:len(v.vs)-1]
}

func (v *Vector[T]) Slice() []T {
	return slices.Clone(v.vs)
}
