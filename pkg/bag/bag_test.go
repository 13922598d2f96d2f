package bag_test

import (
	"math"
	"testing"

	list "github.com/bahlo/generic-list-go"
	"go.llib.dev/bagkit/pkg/bag"
	"go.llib.dev/bagkit/pkg/bag/bagcontract"
	"go.llib.dev/bagkit/pkg/bag/bagstore"
	"go.llib.dev/bagkit/pkg/datastruct"
	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestBag(t *testing.T) {
	s := testcase.NewSpec(t)

	b := let.Var(s, func(t *testcase.T) *bag.Bag[int, datastruct.Cursor[int]] {
		return must.Must(bag.New[int](&datastruct.LinkedList[int]{}))
	})

	s.When("1, 2 and 3 are inserted", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			b.Get(t).Insert(1)
			b.Get(t).Insert(2)
			b.Get(t).Insert(3)
		})

		s.Then("front is the first and back is the last inserted value", func(t *testcase.T) {
			assert.Equal(t, 1, b.Get(t).Front())
			assert.Equal(t, 3, b.Get(t).Back())
			assert.Equal(t, 3, b.Get(t).Len())
		})

		s.And("2 is erased by value", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				b.Get(t).EraseValue(2)
			})

			s.Then("only 1 and 3 remain", func(t *testcase.T) {
				assert.Equal(t, 2, b.Get(t).Len())
				assert.True(t, b.Get(t).Find(2) == b.Get(t).End())
				assert.ContainsExactly(t, []int{1, 3}, b.Get(t).Slice())
			})
		})
	})

	s.When("a value is inserted several times", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			for _, v := range []int{2, 2, 2, 5, 6} {
				b.Get(t).Insert(v)
			}
		})

		s.Then("every copy is counted", func(t *testcase.T) {
			assert.Equal(t, 5, b.Get(t).Len())
			assert.Equal(t, 3, b.Get(t).Count(2))
		})

		s.Then("erasing the value removes every copy", func(t *testcase.T) {
			b.Get(t).EraseValue(2)

			assert.Equal(t, 2, b.Get(t).Len())
			assert.ContainsExactly(t, []int{5, 6}, b.Get(t).Slice())
		})
	})

	s.Describe("#Empty", func(s *testcase.Spec) {
		s.Then("a new bag is empty", func(t *testcase.T) {
			assert.True(t, b.Get(t).Empty())
		})

		s.Then("a bag with an element is not empty", func(t *testcase.T) {
			b.Get(t).Insert(t.Random.Int())
			assert.False(t, b.Get(t).Empty())
		})
	})

	s.Describe("#FrontRef", func(s *testcase.Spec) {
		s.Then("the front can be modified in place", func(t *testcase.T) {
			b.Get(t).Insert(1)
			b.Get(t).Insert(2)

			*b.Get(t).FrontRef() = 42
			*b.Get(t).BackRef() = 24

			assert.Equal(t, []int{42, 24}, b.Get(t).Slice())
		})
	})

	s.Describe("#Store", func(s *testcase.Spec) {
		s.Then("the owned store is returned", func(t *testcase.T) {
			b.Get(t).Insert(7)
			ll, ok := b.Get(t).Store().(*datastruct.LinkedList[int])
			assert.True(t, ok)
			assert.Equal(t, []int{7}, ll.Slice())
		})
	})
}

func TestNew(t *testing.T) {
	t.Run("existing elements are adopted", func(t *testing.T) {
		b, err := bag.New(bagstore.MakeVector(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, 3, b.Len())
	})

	t.Run("store without insertion is rejected", func(t *testing.T) {
		_, err := bag.New[int, int](readOnlyStore{})
		assert.ErrorIs(t, err, bag.ErrUnsupportedStore)
	})

	t.Run("contiguous store needs no range erase of its own", func(t *testing.T) {
		b, err := bag.New[int, int](&pushOnlyStore{})
		assert.NoError(t, err)
		assert.False(t, b.Capabilities().Has(bag.RangeErase))

		for v := range 4 {
			b.Insert(v)
		}
		assert.True(t, b.EraseRange(b.Begin(), b.End()) == b.End())
		assert.True(t, b.Empty())
	})
}

func TestBag_FrontRef_withoutReferenceAccess(t *testing.T) {
	b := must.Must(bag.New(bagstore.MakeDeque(1)))

	out := assert.Panic(t, func() { b.FrontRef() })
	err, ok := out.(error)
	assert.True(t, ok)
	assert.ErrorIs(t, err, bag.ErrNoReferenceAccess)
}

func TestBag_UnsafeRef_onKeyedStore(t *testing.T) {
	type item struct {
		Key  int
		Note string
	}
	ms := bagstore.NewOrderedMultisetFunc(func(a, b item) int { return a.Key - b.Key })
	b := must.Must(bag.New(ms))
	b.Insert(item{Key: 2})
	b.Insert(item{Key: 1})

	// Note takes no part in the ordering, so it may change in place
	b.FrontRef().Note = "first"

	assert.Equal(t, item{Key: 1, Note: "first"}, b.Front())
	assert.Equal(t, 2, b.Back().Key)
}

func TestBag_hashedNaN(t *testing.T) {
	b := must.Must(bag.New(bagstore.MakeHashMultiset[float64]()))
	b.Insert(math.NaN())
	b.Insert(1)
	b.Insert(math.NaN())

	b.Erase(b.Begin())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 1, b.Count(1))
	assert.True(t, b.EraseValue(math.NaN()) == b.End())
	assert.Equal(t, 2, b.Len())

	b.Clear()
	assert.True(t, b.Empty())
}

func TestBag_Swap(t *testing.T) {
	a := must.Must(bag.New(bagstore.MakeList(1, 2)))
	b := must.Must(bag.New(bagstore.MakeList(3)))
	pos := a.Begin()

	a.Swap(b)

	assert.Equal(t, []int{3}, a.Slice())
	assert.Equal(t, []int{1, 2}, b.Slice())
	assert.Equal(t, 1, b.Value(pos))
}

func TestBag_forwardOnlyStore(t *testing.T) {
	b := must.Must(bag.New(&datastruct.ForwardList[int]{}))
	for _, v := range []int{1, 2, 3, 2} {
		b.Insert(v)
	}

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 2, b.Front())
	assert.Equal(t, 1, b.Back())

	pos := b.InsertAt(b.Find(3), 9)
	assert.Equal(t, 9, b.Value(pos))
	assert.Equal(t, 3, b.Value(b.Next(pos)))

	b.EraseValue(2)
	assert.ContainsExactly(t, []int{1, 3, 9}, b.Slice())

	next := b.Erase(b.Find(9))
	assert.Equal(t, 3, b.Value(next))
	assert.Equal(t, []int{3, 1}, b.Slice())
}

func TestBag_contiguousEraseValue(t *testing.T) {
	b := must.Must(bag.New(bagstore.MakeVector(2, 1, 2, 3, 2, 2)))

	b.EraseValue(2)

	assert.ContainsExactly(t, []int{1, 3}, b.Slice())
	assert.Equal(t, 2, b.Len())
}

func TestBag_contiguousEraseRange(t *testing.T) {
	for _, tc := range []struct {
		name        string
		first, last int
		exp         []int
		next        int
	}{
		{name: "the tail fills the hole", first: 0, last: 2, exp: []int{6, 5, 3, 4}, next: 0},
		{name: "range overlapping the tail", first: 1, last: 4, exp: []int{1, 6, 5}, next: 1},
		{name: "suffix", first: 4, last: 6, exp: []int{1, 2, 3, 4}, next: 4},
		{name: "empty range", first: 3, last: 3, exp: []int{1, 2, 3, 4, 5, 6}, next: 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := must.Must(bag.New(bagstore.MakeVector(1, 2, 3, 4, 5, 6)))

			next := b.EraseRange(tc.first, tc.last)

			assert.Equal(t, tc.exp, b.Slice())
			assert.Equal(t, tc.next, next)
		})
	}

	t.Run("deque", func(t *testing.T) {
		b := must.Must(bag.New(bagstore.MakeDeque(1, 2, 3, 4, 5)))

		assert.True(t, b.EraseRange(0, 5) == b.End())
		assert.True(t, b.Empty())
	})
}

func TestBag_contract(t *testing.T) {
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, datastruct.Cursor[int]] {
		return &datastruct.LinkedList[int]{}
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, *datastruct.ForwardElem[int]] {
		return &datastruct.ForwardList[int]{}
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, int] {
		return bagstore.MakeVector[int]()
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, int] {
		return bagstore.MakeDeque[int]()
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, *list.Element[int]] {
		return bagstore.MakeList[int]()
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[int, *bagstore.OrderedEntry[int]] {
		return bagstore.NewOrderedMultiset[int]()
	}).Test(t)
	bagcontract.Bag(func(tb testing.TB) bag.Store[string, *list.Element[string]] {
		return bagstore.MakeHashMultiset[string]()
	}).Test(t)
}

type readOnlyStore struct{}

func (readOnlyStore) Begin() int     { return 0 }
func (readOnlyStore) End() int       { return 0 }
func (readOnlyStore) Next(i int) int { return i + 1 }
func (readOnlyStore) Value(int) int  { return 0 }

type pushOnlyStore struct{ vs []int }

func (s *pushOnlyStore) Begin() int              { return 0 }
func (s *pushOnlyStore) End() int                { return len(s.vs) }
func (s *pushOnlyStore) Next(i int) int          { return i + 1 }
func (s *pushOnlyStore) Value(i int) int         { return s.vs[i] }
func (s *pushOnlyStore) Insert(i int, v int) int { s.vs = append(s.vs, v); return len(s.vs) - 1 }
func (s *pushOnlyStore) Len() int                { return len(s.vs) }
func (s *pushOnlyStore) Swap(i, j int)           { s.vs[i], s.vs[j] = s.vs[j], s.vs[i] }
func (s *pushOnlyStore) PopBack()                { s.vs = s.vs[:len(s.vs)-1] }
