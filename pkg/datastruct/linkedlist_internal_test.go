package datastruct

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// checkChain asserts the head, tail and length bookkeeping against the actual chain.
func checkChain[T any](tb testing.TB, ll *LinkedList[T]) {
	tb.Helper()
	if ll.head == nil || ll.tail == nil || ll.length == 0 {
		assert.True(tb, ll.head == nil && ll.tail == nil && ll.length == 0,
			"head, tail and length must agree on emptiness")
		return
	}
	assert.True(tb, ll.head.prev == nil)
	assert.True(tb, ll.tail.next == nil)

	var (
		n    int
		prev *llElem[T]
	)
	for e := ll.head; e != nil; e = e.next {
		assert.True(tb, e.prev == prev, "prev link is broken")
		prev = e
		n++
	}
	assert.True(tb, prev == ll.tail)
	assert.Equal(tb, ll.length, n)
}

func TestLinkedList_chainInvariant(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	var ll LinkedList[int]
	checkChain(t, &ll)

	for i := 0; i < 256; i++ {
		switch rnd.IntN(7) {
		case 0:
			ll.Append(rnd.IntN(4))
		case 1:
			ll.Prepend(rnd.IntN(4))
		case 2:
			var pos = ll.Begin()
			for n := rnd.IntN(ll.Len() + 1); 0 < n && !pos.IsEnd(); n-- {
				pos = pos.Next()
			}
			ll.Insert(pos, rnd.IntN(4))
		case 3:
			if ll.Len() == 0 {
				continue
			}
			var pos = ll.Begin()
			for n := rnd.IntN(ll.Len()); 0 < n; n-- {
				pos = pos.Next()
			}
			ll.Erase(pos)
		case 4:
			v := rnd.IntN(4)
			ll.EraseFunc(func(e int) bool { return e == v })
		case 5:
			if ll.Len() < 2 {
				continue
			}
			first := ll.Begin().Next()
			ll.EraseRange(first, first.Next())
		case 6:
			ll.Pop()
		}
		checkChain(t, &ll)
	}

	ll.Clear()
	checkChain(t, &ll)
}

func TestLinkedList_erasedNodeIsReleased(t *testing.T) {
	var ll LinkedList[int]
	ll.Append(1, 2, 3)

	mid := ll.Begin().Next()
	ll.Erase(mid)

	assert.True(t, mid.node.prev == nil)
	assert.True(t, mid.node.next == nil)
	assert.Equal(t, 3, ll.head.next.data)
	checkChain(t, &ll)
}
