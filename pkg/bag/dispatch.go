package bag

// dispatch holds the algorithm chosen for each uniform operation.
// It is resolved once, when the Bag takes ownership of its store.
type dispatch[T comparable, C comparable] struct {
	caps       Capabilities
	insert     func(v T) C
	insertAt   func(pos C, v T) C
	erase      func(pos C) C
	eraseValue func(v T) C
	eraseRange func(first, last C) C
	find       func(v T) C
	last       func() C
	size       func() int
	count      func(v T) int
	ref        func(pos C) *T
}

func resolve[T comparable, C comparable](s Store[T, C]) (dispatch[T, C], error) {
	d := dispatch[T, C]{caps: Classify(s)}

	switch {
	case d.caps.Has(NativeInsert):
		in := s.(Inserter[T, C])
		d.insert = func(v T) C { return in.Insert(s.End(), v) }
		d.insertAt = in.Insert
	case d.caps.Has(InsertAfter):
		in := s.(AfterInserter[T, C])
		d.insert = func(v T) C { return in.InsertAfter(in.BeforeBegin(), v) }
		d.insertAt = insertAtByPredecessorScan(s, in)
	default:
		return d, ErrUnsupportedStore.F("%T has no insertion primitive", s)
	}

	switch {
	case d.caps.Has(ContiguousErase):
		cs := s.(Contiguous)
		d.erase = eraseBySwapPop(s, cs)
		d.eraseRange = eraseRangeBySwapPop(s, cs)
	case d.caps.Has(NativeErase):
		er := s.(Eraser[C])
		d.erase = er.Erase
		if d.caps.Has(RangeErase) {
			d.eraseRange = s.(RangeEraser[C]).EraseRange
		} else {
			d.eraseRange = eraseRangeByStepping(er)
		}
	case d.caps.Has(EraseAfter):
		er := s.(AfterEraser[C])
		d.erase = eraseByPredecessorScan(s, er)
		d.eraseRange = eraseRangeAfterPredecessor(s, er)
	default:
		return d, ErrUnsupportedStore.F("%T has no erase primitive", s)
	}

	switch {
	case d.caps.Has(KeyedErase):
		d.eraseValue = eraseValueByEqualRange(s, s.(EqualRanger[T, C]), s.(RangeEraser[C]))
	case d.caps.Has(ContiguousErase):
		d.eraseValue = eraseValueBySwapPop(s, s.(Contiguous))
	case d.caps.Has(FuncErase):
		fe := s.(FuncEraser[T, C])
		d.eraseValue = func(v T) C {
			return fe.EraseFunc(func(e T) bool { return e == v })
		}
	case d.caps.Has(NativeErase):
		d.eraseValue = eraseValueByScan(s, s.(Eraser[C]))
	default:
		d.eraseValue = eraseValueByPredecessorScan(s, s.(AfterEraser[C]))
	}

	if d.caps.Has(KeyedFind) {
		d.find = s.(Finder[T, C]).Find
	} else {
		d.find = func(v T) C { return findByScan(s, v) }
	}

	if d.caps.Has(NativeBack) {
		d.last = s.(BackAccessor[C]).Last
	} else {
		d.last = func() C { return lastByScan(s) }
	}

	if d.caps.Has(NativeSize) {
		d.size = s.(Sizer).Len
	} else {
		d.size = func() int { return sizeByScan(s) }
	}

	if d.caps.Has(NativeCount) {
		d.count = s.(Counter[T]).Count
	} else {
		d.count = func(v T) int { return countByScan(s, v) }
	}

	switch {
	case d.caps.Has(MutableRef):
		d.ref = s.(Referencer[T, C]).Ref
	case d.caps.Has(KeyedRef):
		d.ref = s.(KeyedReferencer[T, C]).UnsafeRef
	default:
		d.ref = func(C) *T {
			panic(ErrNoReferenceAccess.F("%T", s))
		}
	}

	return d, nil
}

// predecessorOf walks from BeforeBegin to find the position that precedes pos.
// For the End position, it is the last element.
func predecessorOf[T any, C comparable](s Store[T, C], beforeBegin C, pos C) C {
	var prev = beforeBegin
	for cur := s.Begin(); cur != pos; cur = s.Next(cur) {
		prev = cur
	}
	return prev
}

func insertAtByPredecessorScan[T any, C comparable](s Store[T, C], in AfterInserter[T, C]) func(pos C, v T) C {
	return func(pos C, v T) C {
		return in.InsertAfter(predecessorOf(s, in.BeforeBegin(), pos), v)
	}
}

func eraseByPredecessorScan[T any, C comparable](s Store[T, C], er AfterEraser[C]) func(pos C) C {
	return func(pos C) C {
		return er.EraseAfter(predecessorOf(s, er.BeforeBegin(), pos))
	}
}

func eraseRangeAfterPredecessor[T any, C comparable](s Store[T, C], er AfterEraser[C]) func(first, last C) C {
	return func(first, last C) C {
		if first == last {
			return last
		}
		prev := predecessorOf(s, er.BeforeBegin(), first)
		for next := s.Next(prev); next != last; {
			next = er.EraseAfter(prev)
		}
		return last
	}
}

func eraseRangeByStepping[C comparable](er Eraser[C]) func(first, last C) C {
	return func(first, last C) C {
		for first != last {
			first = er.Erase(first)
		}
		return last
	}
}

// eraseBySwapPop moves the last element into the erased slot,
// so nothing after the erased index has to shift.
// The returned index holds the element that wasn't visited yet.
func eraseBySwapPop[T any, C comparable](s Store[T, C], cs Contiguous) func(pos C) C {
	return func(pos C) C {
		i := toIndex(pos)
		if last := cs.Len() - 1; i != last {
			cs.Swap(i, last)
		}
		cs.PopBack()
		if cs.Len() <= i {
			return s.End()
		}
		return pos
	}
}

// eraseRangeBySwapPop fills [first, last) with elements taken from the back,
// then pops the erased ones that ended up at the tail.
func eraseRangeBySwapPop[T any, C comparable](s Store[T, C], cs Contiguous) func(first, last C) C {
	return func(first, last C) C {
		var (
			i, j = toIndex(first), toIndex(last)
			k    = j - i
			n    = cs.Len()
		)
		if k <= 0 {
			return last
		}
		for m := 0; m < min(k, n-j); m++ {
			cs.Swap(i+m, n-1-m)
		}
		for range k {
			cs.PopBack()
		}
		if cs.Len() <= i {
			return s.End()
		}
		return first
	}
}

func eraseValueBySwapPop[T comparable, C comparable](s Store[T, C], cs Contiguous) func(v T) C {
	return func(v T) C {
		var (
			after   = s.End()
			removed bool
		)
		for i := 0; i < cs.Len(); {
			if s.Value(fromIndex[C](i)) != v {
				i++
				continue
			}
			// equal values at the back would be swapped right back into the slot
			for last := cs.Len() - 1; i < last && s.Value(fromIndex[C](last)) == v; last-- {
				cs.PopBack()
			}
			if last := cs.Len() - 1; i != last {
				cs.Swap(i, last)
			}
			cs.PopBack()
			removed = true
			if i < cs.Len() {
				after = fromIndex[C](i)
			} else {
				after = s.End()
			}
		}
		if !removed {
			return s.End()
		}
		return after
	}
}

func eraseValueByEqualRange[T any, C comparable](s Store[T, C], er EqualRanger[T, C], rr RangeEraser[C]) func(v T) C {
	return func(v T) C {
		first, last := er.EqualRange(v)
		if first == last {
			return s.End()
		}
		return rr.EraseRange(first, last)
	}
}

func eraseValueByScan[T comparable, C comparable](s Store[T, C], er Eraser[C]) func(v T) C {
	return func(v T) C {
		var after = s.End()
		for cur := s.Begin(); cur != s.End(); {
			if s.Value(cur) == v {
				cur = er.Erase(cur)
				after = cur
				continue
			}
			cur = s.Next(cur)
		}
		return after
	}
}

func eraseValueByPredecessorScan[T comparable, C comparable](s Store[T, C], er AfterEraser[C]) func(v T) C {
	return func(v T) C {
		var (
			after = s.End()
			prev  = er.BeforeBegin()
		)
		for cur := s.Next(prev); cur != s.End(); {
			if s.Value(cur) == v {
				cur = er.EraseAfter(prev)
				after = cur
				continue
			}
			prev = cur
			cur = s.Next(cur)
		}
		return after
	}
}

func findByScan[T comparable, C comparable](s Store[T, C], v T) C {
	for cur := s.Begin(); cur != s.End(); cur = s.Next(cur) {
		if s.Value(cur) == v {
			return cur
		}
	}
	return s.End()
}

func lastByScan[T any, C comparable](s Store[T, C]) C {
	var last = s.End()
	for cur := s.Begin(); cur != s.End(); cur = s.Next(cur) {
		last = cur
	}
	return last
}

func sizeByScan[T any, C comparable](s Store[T, C]) int {
	var n int
	for cur := s.Begin(); cur != s.End(); cur = s.Next(cur) {
		n++
	}
	return n
}

func countByScan[T comparable, C comparable](s Store[T, C], v T) int {
	var n int
	for cur := s.Begin(); cur != s.End(); cur = s.Next(cur) {
		if s.Value(cur) == v {
			n++
		}
	}
	return n
}

func toIndex[C comparable](pos C) int {
	return any(pos).(int)
}

func fromIndex[C comparable](i int) C {
	return any(i).(C)
}
