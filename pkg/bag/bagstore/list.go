package bagstore

import (
	list "github.com/bahlo/generic-list-go"
	"go.llib.dev/bagkit/pkg/bag"
)

// List is a node based store with native access to both ends.
// Positions are list elements, End is nil.
// The zero value is an empty List ready to use.
type List[T any] struct {
	l *list.List[T]
}

var (
	_ bag.Store[int, *list.Element[int]]      = (*List[int])(nil)
	_ bag.Inserter[int, *list.Element[int]]   = (*List[int])(nil)
	_ bag.Eraser[*list.Element[int]]          = (*List[int])(nil)
	_ bag.BackAccessor[*list.Element[int]]    = (*List[int])(nil)
	_ bag.Referencer[int, *list.Element[int]] = (*List[int])(nil)
)

func MakeList[T any](vs ...T) *List[T] {
	var l List[T]
	for _, v := range vs {
		l.list().PushBack(v)
	}
	return &l
}

func (l *List[T]) list() *list.List[T] {
	if l.l == nil {
		l.l = list.New[T]()
	}
	return l.l
}

func (l *List[T]) Begin() *list.Element[T] { return l.list().Front() }

func (l *List[T]) End() *list.Element[T] { return nil }

func (l *List[T]) Next(e *list.Element[T]) *list.Element[T] { return e.Next() }

func (l *List[T]) Value(e *list.Element[T]) T { return e.Value }

func (l *List[T]) Ref(e *list.Element[T]) *T { return &e.Value }

func (l *List[T]) Last() *list.Element[T] { return l.list().Back() }

func (l *List[T]) Len() int { return l.list().Len() }

func (l *List[T]) Insert(pos *list.Element[T], v T) *list.Element[T] {
	if pos == nil {
		return l.list().PushBack(v)
	}
	return l.list().InsertBefore(v, pos)
}

func (l *List[T]) Erase(e *list.Element[T]) *list.Element[T] {
	next := e.Next()
	l.list().Remove(e)
	return next
}
