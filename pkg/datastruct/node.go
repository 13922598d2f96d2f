package datastruct

// llElem is a single link of a LinkedList chain.
// The list that linked it in is its only owner.
type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

// linkBefore splices e into the chain right before mark.
// mark must be part of a chain, e must be detached.
func (e *llElem[T]) linkBefore(mark *llElem[T]) {
	e.prev = mark.prev
	e.next = mark
	if mark.prev != nil {
		mark.prev.next = e
	}
	mark.prev = e
}

// linkAfter splices e into the chain right after mark.
func (e *llElem[T]) linkAfter(mark *llElem[T]) {
	e.prev = mark
	e.next = mark.next
	if mark.next != nil {
		mark.next.prev = e
	}
	mark.next = e
}

// unlink reconnects the neighbours of e and detaches e from the chain.
func (e *llElem[T]) unlink() {
	if e.prev != nil {
		e.prev.next = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.release()
}

// release drops the links of a node that is no longer part of a chain,
// so a stale cursor can't walk back into live nodes.
func (e *llElem[T]) release() {
	e.prev = nil
	e.next = nil
}
