package datastruct

import (
	"iter"

	"go.llib.dev/frameless/pkg/slicekit"
)

// LinkedList is a doubly linked list.
//
// The zero value is an empty list ready to use.
// Every element is owned by the list, and positions are handed out as Cursor values.
// Insertion and erasure never invalidate cursors of other elements.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

var _ PositionalSequence[any, Cursor[any]] = (*LinkedList[any])(nil)

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// Backward iterates from the tail towards the head.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Slice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) *llElem[T] {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		newNode.linkAfter(ll.tail)
		ll.tail = newNode
	}
	ll.length++
	return newNode
}

// Prepend adds an element to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) *llElem[T] {
	newHead := &llElem[T]{data: v}
	if ll.head == nil {
		ll.tail = newHead
	} else {
		newHead.linkBefore(ll.head)
	}
	ll.head = newHead
	ll.length++
	return newHead
}

// Len returns the length of elements in the list
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.remove(first)
	return first.data, true
}

func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail == nil {
		var zero T
		return zero, false
	}
	last := ll.tail
	ll.remove(last)
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	var i int
	for v := range ll.Iter() {
		if i == index {
			return v, true
		}
		i++
	}
	var zero T
	return zero, false
}

// Front returns the first element.
// The list must not be empty.
func (ll *LinkedList[T]) Front() T { return ll.head.data }

// Back returns the last element.
// The list must not be empty.
func (ll *LinkedList[T]) Back() T { return ll.tail.data }

// Begin returns a cursor to the first element, or End when the list is empty.
func (ll *LinkedList[T]) Begin() Cursor[T] { return Cursor[T]{node: ll.head} }

// End returns the forward end sentinel.
func (ll *LinkedList[T]) End() Cursor[T] { return Cursor[T]{} }

// RBegin returns a reverse cursor to the last element, or REnd when the list is empty.
func (ll *LinkedList[T]) RBegin() Cursor[T] { return Cursor[T]{node: ll.tail, reverse: true} }

// REnd returns the reverse end sentinel, the position before the head.
func (ll *LinkedList[T]) REnd() Cursor[T] { return Cursor[T]{reverse: true} }

func (ll *LinkedList[T]) CBegin() ConstCursor[T] { return ll.Begin().Const() }

func (ll *LinkedList[T]) CEnd() ConstCursor[T] { return ll.End().Const() }

func (ll *LinkedList[T]) CRBegin() ConstCursor[T] { return ll.RBegin().Const() }

func (ll *LinkedList[T]) CREnd() ConstCursor[T] { return ll.REnd().Const() }

// Last returns a cursor to the last element, or End when the list is empty.
func (ll *LinkedList[T]) Last() Cursor[T] {
	if ll.tail == nil {
		return ll.End()
	}
	return Cursor[T]{node: ll.tail}
}

func (ll *LinkedList[T]) Next(c Cursor[T]) Cursor[T] { return c.Next() }

func (ll *LinkedList[T]) Value(c Cursor[T]) T { return c.Value() }

func (ll *LinkedList[T]) Ref(c Cursor[T]) *T { return c.Ref() }

// Insert adds v before the element at pos, and returns a cursor to the new element.
// Inserting at End appends to the list.
// The returned cursor has the direction of pos.
func (ll *LinkedList[T]) Insert(pos Cursor[T], v T) Cursor[T] {
	var node *llElem[T]
	switch {
	case pos.node == nil:
		node = ll.append(v)
	case pos.node == ll.head:
		node = ll.prepend(v)
	default:
		node = &llElem[T]{data: v}
		node.linkBefore(pos.node)
		ll.length++
	}
	return Cursor[T]{node: node, reverse: pos.reverse}
}

// Erase removes the element at pos and returns the cursor that follows it in the direction of pos.
// pos must point to an element of this list.
func (ll *LinkedList[T]) Erase(pos Cursor[T]) Cursor[T] {
	next := pos.Next()
	ll.remove(pos.node)
	return next
}

func (ll *LinkedList[T]) remove(node *llElem[T]) {
	if node == ll.head {
		ll.head = node.next
	}
	if node == ll.tail {
		ll.tail = node.prev
	}
	node.unlink()
	ll.length--
}

// EraseFunc removes every element that matches in a single pass.
// It returns a cursor to the element that followed the last removed element,
// or End when nothing was removed.
func (ll *LinkedList[T]) EraseFunc(match func(T) bool) Cursor[T] {
	var (
		after   = ll.End()
		current = ll.head
	)
	for current != nil {
		next := current.next
		if match(current.data) {
			ll.remove(current)
			after = Cursor[T]{node: next}
		}
		current = next
	}
	return after
}

// EraseRange removes the elements of the half-open range [first, last).
// The surrounding elements are reconnected at once, then the removed elements are released one by one.
// Both cursors must be forward cursors of this list, and last must be reachable from first.
func (ll *LinkedList[T]) EraseRange(first, last Cursor[T]) Cursor[T] {
	if first.node == last.node {
		return last
	}
	var before = first.node.prev
	if before == nil {
		ll.head = last.node
	} else {
		before.next = last.node
	}
	if last.node == nil {
		ll.tail = before
	} else {
		last.node.prev = before
	}
	for current := first.node; current != last.node; {
		next := current.next
		current.release()
		ll.length--
		current = next
	}
	return last
}

// Clear removes every element from the list.
func (ll *LinkedList[T]) Clear() {
	for current := ll.head; current != nil; {
		next := current.next
		current.release()
		current = next
	}
	ll.head = nil
	ll.tail = nil
	ll.length = 0
}

// Swap exchanges the contents of two lists without touching their elements.
// Cursors keep pointing to the same elements, which now belong to the other list.
func (ll *LinkedList[T]) Swap(oth *LinkedList[T]) {
	ll.head, oth.head = oth.head, ll.head
	ll.tail, oth.tail = oth.tail, ll.tail
	ll.length, oth.length = oth.length, ll.length
}
