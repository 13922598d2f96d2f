package bagstore

import (
	"github.com/gammazero/deque"
	"go.llib.dev/bagkit/pkg/bag"
)

// Deque is a ring buffer backed double-ended store.
// Positions are indexes, End is the length.
// The zero value is an empty Deque ready to use.
//
// The ring buffer hands out copies only, so Deque offers no reference access.
type Deque[T any] struct {
	q deque.Deque
}

var (
	_ bag.Store[int, int]    = (*Deque[int])(nil)
	_ bag.Inserter[int, int] = (*Deque[int])(nil)
	_ bag.Contiguous         = (*Deque[int])(nil)
	_ bag.RangeEraser[int]   = (*Deque[int])(nil)
)

func MakeDeque[T any](vs ...T) *Deque[T] {
	var d Deque[T]
	for _, v := range vs {
		d.q.PushBack(v)
	}
	return &d
}

func (d *Deque[T]) Begin() int { return 0 }

func (d *Deque[T]) End() int { return d.q.Len() }

func (d *Deque[T]) Next(i int) int { return i + 1 }

func (d *Deque[T]) Value(i int) T { return d.q.At(i).(T) }

func (d *Deque[T]) Len() int { return d.q.Len() }

func (d *Deque[T]) Last() int {
	if d.q.Len() == 0 {
		return d.End()
	}
	return d.q.Len() - 1
}

// Insert rotates i to the front, pushes v there, then rotates everything back in place.
func (d *Deque[T]) Insert(i int, v T) int {
	if i == d.q.Len() {
		d.q.PushBack(v)
		return i
	}
	d.q.Rotate(i)
	d.q.PushFront(v)
	d.q.Rotate(-i)
	return i
}

func (d *Deque[T]) Erase(i int) int {
	if i == d.q.Len()-1 {
		d.q.PopBack()
		return i
	}
	d.q.Rotate(i)
	d.q.PopFront()
	d.q.Rotate(-i)
	return i
}

func (d *Deque[T]) EraseRange(first, last int) int {
	if first == last {
		return last
	}
	d.q.Rotate(first)
	for n := last - first; 0 < n; n-- {
		d.q.PopFront()
	}
	d.q.Rotate(-first)
	return first
}

func (d *Deque[T]) Swap(i, j int) {
	vi, vj := d.q.At(i), d.q.At(j)
	d.q.Set(i, vj)
	d.q.Set(j, vi)
}

func (d *Deque[T]) PopBack() {
	d.q.PopBack()
}

func (d *Deque[T]) Slice() []T {
	vs := make([]T, 0, d.q.Len())
	for i := 0; i < d.q.Len(); i++ {
		vs = append(vs, d.q.At(i).(T))
	}
	return vs
}
