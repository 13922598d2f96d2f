package datastruct

import "iter"

// ForwardList is a singly linked list.
//
// It only moves forward: there is no size counter, no access to the last element,
// and new elements are linked in after an existing position.
// BeforeBegin is a sentinel position in front of the first element,
// which lets insertion and erasure work at the head as well.
//
// The zero value is an empty list ready to use. A ForwardList must not be copied after first use.
type ForwardList[T any] struct {
	head ForwardElem[T]
}

// ForwardElem is an element of a ForwardList.
// A nil *ForwardElem is the end sentinel.
type ForwardElem[T any] struct {
	data T
	next *ForwardElem[T]
}

// Value returns the element's value.
func (e *ForwardElem[T]) Value() T { return e.data }

// BeforeBegin returns the sentinel that precedes the first element.
// It can't be dereferenced.
func (fl *ForwardList[T]) BeforeBegin() *ForwardElem[T] { return &fl.head }

func (fl *ForwardList[T]) Begin() *ForwardElem[T] { return fl.head.next }

func (fl *ForwardList[T]) End() *ForwardElem[T] { return nil }

func (fl *ForwardList[T]) Next(e *ForwardElem[T]) *ForwardElem[T] { return e.next }

func (fl *ForwardList[T]) Value(e *ForwardElem[T]) T { return e.data }

func (fl *ForwardList[T]) Ref(e *ForwardElem[T]) *T { return &e.data }

// InsertAfter links v in after pos, and returns the new element.
func (fl *ForwardList[T]) InsertAfter(pos *ForwardElem[T], v T) *ForwardElem[T] {
	elem := &ForwardElem[T]{data: v, next: pos.next}
	pos.next = elem
	return elem
}

// EraseAfter unlinks the element following pos,
// and returns the element that now follows pos.
// pos must have a successor.
func (fl *ForwardList[T]) EraseAfter(pos *ForwardElem[T]) *ForwardElem[T] {
	erased := pos.next
	pos.next = erased.next
	erased.next = nil
	return pos.next
}

func (fl *ForwardList[T]) PushFront(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		fl.InsertAfter(fl.BeforeBegin(), vs[i])
	}
}

// Empty reports whether the list has no elements.
func (fl *ForwardList[T]) Empty() bool { return fl.head.next == nil }

func (fl *ForwardList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := fl.head.next; e != nil; e = e.next {
			if !yield(e.data) {
				return
			}
		}
	}
}

func (fl *ForwardList[T]) Slice() []T {
	var vs []T
	for v := range fl.Iter() {
		vs = append(vs, v)
	}
	return vs
}
