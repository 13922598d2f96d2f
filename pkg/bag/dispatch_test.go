package bag_test

import (
	"testing"

	list "github.com/bahlo/generic-list-go"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.llib.dev/bagkit/pkg/bag"
	"go.llib.dev/bagkit/pkg/bag/bagstore"
	"go.llib.dev/bagkit/pkg/bag/internal/bagmock"
	"go.llib.dev/bagkit/pkg/datastruct"
	"go.llib.dev/frameless/pkg/must"
	"pgregory.net/rapid"
)

func TestBag_keyedStoreDispatch(t *testing.T) {
	const end = 100

	t.Run("EraseValue uses the equal range instead of scanning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := bagmock.NewMockKeyedStore(ctrl)
		store.EXPECT().End().Return(end).AnyTimes()
		gomock.InOrder(
			store.EXPECT().EqualRange(5).Return(2, 4),
			store.EXPECT().EraseRange(2, 4).Return(4),
		)

		b := must.Must(bag.New[int, int](store))

		if got := b.EraseValue(5); got != 4 {
			t.Fatalf("expected the end of the erased range, got %d", got)
		}
	})

	t.Run("EraseValue of an absent value returns End without erasing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := bagmock.NewMockKeyedStore(ctrl)
		store.EXPECT().End().Return(end).AnyTimes()
		store.EXPECT().EqualRange(5).Return(7, 7)

		b := must.Must(bag.New[int, int](store))

		if got := b.EraseValue(5); got != end {
			t.Fatalf("expected End, got %d", got)
		}
	})

	t.Run("Find and Len use the native primitives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := bagmock.NewMockKeyedStore(ctrl)
		store.EXPECT().Find(3).Return(1)
		store.EXPECT().Len().Return(42)

		b := must.Must(bag.New[int, int](store))

		if got := b.Find(3); got != 1 {
			t.Fatalf("unexpected Find result: %d", got)
		}
		if got := b.Len(); got != 42 {
			t.Fatalf("unexpected Len result: %d", got)
		}
	})

	t.Run("Insert passes End as the hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := bagmock.NewMockKeyedStore(ctrl)
		store.EXPECT().End().Return(end).AnyTimes()
		store.EXPECT().Insert(end, 9).Return(3)

		b := must.Must(bag.New[int, int](store))

		if got := b.Insert(9); got != 3 {
			t.Fatalf("unexpected Insert result: %d", got)
		}
	})
}

// modelCheck runs random operations on a bag and a count map side by side,
// and compares the two after each step.
func modelCheck[C comparable](t *testing.T, mk func() bag.Store[int, C]) {
	rapid.Check(t, func(rt *rapid.T) {
		var (
			b     = must.Must(bag.New(mk()))
			model = map[int]int{}
			value = rapid.IntRange(0, 5)
		)
		rt.Repeat(map[string]func(*rapid.T){
			"insert": func(rt *rapid.T) {
				v := value.Draw(rt, "v")
				b.Insert(v)
				model[v]++
			},
			"eraseValue": func(rt *rapid.T) {
				v := value.Draw(rt, "v")
				if got := b.EraseValue(v); model[v] == 0 && got != b.End() {
					rt.Fatalf("erasing absent %d should return End", v)
				}
				delete(model, v)
			},
			"eraseFront": func(rt *rapid.T) {
				if b.Empty() {
					rt.Skip("empty")
				}
				model[b.Front()]--
				b.Erase(b.Begin())
			},
			"eraseFound": func(rt *rapid.T) {
				v := value.Draw(rt, "v")
				pos := b.Find(v)
				if pos == b.End() {
					if model[v] != 0 {
						rt.Fatalf("%d is in the bag %d times but was not found", v, model[v])
					}
					rt.Skip("absent")
				}
				b.Erase(pos)
				model[v]--
			},
			"": func(rt *rapid.T) {
				var exp []int
				for v, n := range model {
					for range n {
						exp = append(exp, v)
					}
				}
				if b.Len() != len(exp) {
					rt.Fatalf("size mismatch: bag has %d, model has %d", b.Len(), len(exp))
				}
				for v := range 6 {
					if b.Count(v) != model[v] {
						rt.Fatalf("count of %d: bag has %d, model has %d", v, b.Count(v), model[v])
					}
				}
				if diff := cmp.Diff(exp, b.Slice(), cmpopts.SortSlices(func(a, b int) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
					rt.Fatalf("contents mismatch (-model +bag):\n%s", diff)
				}
			},
		})
	})
}

func TestBag_model(t *testing.T) {
	t.Run("linked list", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, datastruct.Cursor[int]] { return &datastruct.LinkedList[int]{} })
	})
	t.Run("forward list", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, *datastruct.ForwardElem[int]] { return &datastruct.ForwardList[int]{} })
	})
	t.Run("vector", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, int] { return bagstore.MakeVector[int]() })
	})
	t.Run("deque", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, int] { return bagstore.MakeDeque[int]() })
	})
	t.Run("list", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, *list.Element[int]] { return bagstore.MakeList[int]() })
	})
	t.Run("ordered multiset", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, *bagstore.OrderedEntry[int]] { return bagstore.NewOrderedMultiset[int]() })
	})
	t.Run("hash multiset", func(t *testing.T) {
		modelCheck(t, func() bag.Store[int, *list.Element[int]] { return bagstore.MakeHashMultiset[int]() })
	})
}
