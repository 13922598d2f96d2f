package datastruct

// Cursor is a position in a LinkedList.
//
// A Cursor points to an element, or to nothing, which is the end sentinel of its direction.
// The zero value is the end sentinel of a forward traversal.
// Cursors are plain values: they can be copied, swapped and compared with ==,
// and two cursors are equal when they point to the same element in the same direction.
//
// A Cursor doesn't own its element.
// It stays valid while other elements are inserted or erased,
// and becomes invalid once its own element is erased from the list.
type Cursor[T any] struct {
	node    *llElem[T]
	reverse bool
}

// Next moves the cursor one step in its direction.
// Calling Next on an end sentinel is undefined behaviour.
func (c Cursor[T]) Next() Cursor[T] {
	if c.reverse {
		return Cursor[T]{node: c.node.prev, reverse: true}
	}
	return Cursor[T]{node: c.node.next}
}

// Prev moves the cursor one step against its direction.
// Cursors don't know their list, so Prev on an end sentinel is undefined behaviour.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.reverse {
		return Cursor[T]{node: c.node.next, reverse: true}
	}
	return Cursor[T]{node: c.node.prev}
}

// Value returns the element's value.
func (c Cursor[T]) Value() T {
	return c.node.data
}

// Ref returns a pointer to the element's value, which can be used to modify it in place.
func (c Cursor[T]) Ref() *T {
	return &c.node.data
}

// Set replaces the element's value.
func (c Cursor[T]) Set(v T) {
	c.node.data = v
}

// IsEnd reports whether the cursor is an end sentinel.
func (c Cursor[T]) IsEnd() bool {
	return c.node == nil
}

// IsReverse reports whether the cursor moves from the tail towards the head.
func (c Cursor[T]) IsReverse() bool {
	return c.reverse
}

// Reverse returns a cursor to the same element that moves in the opposite direction.
func (c Cursor[T]) Reverse() Cursor[T] {
	return Cursor[T]{node: c.node, reverse: !c.reverse}
}

// Const returns a read-only view of the cursor.
func (c Cursor[T]) Const() ConstCursor[T] {
	return ConstCursor[T]{c: c}
}

// ConstCursor is a Cursor that can't modify the element it points to.
// It has the same direction, equality and validity rules as Cursor.
type ConstCursor[T any] struct {
	c Cursor[T]
}

func (c ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c: c.c.Next()} }

func (c ConstCursor[T]) Prev() ConstCursor[T] { return ConstCursor[T]{c: c.c.Prev()} }

func (c ConstCursor[T]) Value() T { return c.c.Value() }

func (c ConstCursor[T]) IsEnd() bool { return c.c.IsEnd() }

func (c ConstCursor[T]) IsReverse() bool { return c.c.reverse }

func (c ConstCursor[T]) Reverse() ConstCursor[T] { return ConstCursor[T]{c: c.c.Reverse()} }

// Mutable converts the ConstCursor back into a Cursor.
//
// It exists for algorithms that work with a single cursor type.
// Use it only when the caller is allowed to modify the underlying list.
func (c ConstCursor[T]) Mutable() Cursor[T] {
	return c.c
}
