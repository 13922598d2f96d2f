// Package bagcontract is the behaviour every backing store must show once it is wrapped by a bag.Bag.
package bagcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/bagkit/pkg/bag"
	"go.llib.dev/frameless/pkg/must"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

// Bag returns the contract of a bag.Bag over the stores made by mk.
// mk must return an empty store on every call.
func Bag[T comparable, C comparable](mk contract.Make[bag.Store[T, C]], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	subject := let.Var(s, func(t *testcase.T) *bag.Bag[T, C] {
		return must.Must(bag.New(mk(t)))
	})

	// distinct makes n values where no two are equal
	distinct := func(t *testcase.T, n int) []T {
		return random.Slice(n, func() T { return c.makeT(t) }, random.UniqueValues)
	}

	s.Test("a new bag is empty", func(t *testcase.T) {
		b := subject.Get(t)
		assert.True(t, b.Empty())
		assert.Equal(t, 0, b.Len())
		assert.True(t, b.Begin() == b.End())
		assert.Empty(t, b.Slice())
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		values := let.Var(s, func(t *testcase.T) []T {
			return random.Slice(t.Random.IntBetween(1, 12), func() T { return c.makeT(t) })
		})
		act := let.Act0(func(t *testcase.T) {
			for _, v := range values.Get(t) {
				subject.Get(t).Insert(v)
			}
		})

		s.Then("size grows by one per insert", func(t *testcase.T) {
			act(t)

			assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
			assert.False(t, subject.Get(t).Empty())
		})

		s.Then("traversal yields every inserted element exactly once", func(t *testcase.T) {
			act(t)

			assert.ContainsExactly(t, values.Get(t), subject.Get(t).Slice())
		})

		s.Then("the returned position points to the inserted value", func(t *testcase.T) {
			v := c.makeT(t)
			pos := subject.Get(t).Insert(v)

			assert.Equal(t, v, subject.Get(t).Value(pos))
		})

		s.Then("front and back are elements of the bag", func(t *testcase.T) {
			act(t)

			assert.Contains(t, values.Get(t), subject.Get(t).Front())
			assert.Contains(t, values.Get(t), subject.Get(t).Back())
		})
	})

	s.Describe("#InsertAt", func(s *testcase.Spec) {
		s.Then("the value is added next to the given position", func(t *testcase.T) {
			vs := distinct(t, t.Random.IntBetween(2, 7))
			b := subject.Get(t)
			for _, v := range vs {
				b.Insert(v)
			}
			v := random.Unique(func() T { return c.makeT(t) }, vs...)

			pos := b.Find(vs[t.Random.IntN(len(vs))])
			got := b.InsertAt(pos, v)

			assert.Equal(t, v, b.Value(got))
			assert.Equal(t, len(vs)+1, b.Len())
			assert.ContainsExactly(t, append(vs, v), b.Slice())
		})

		s.Then("End appends to an empty bag", func(t *testcase.T) {
			v := c.makeT(t)
			b := subject.Get(t)
			b.InsertAt(b.End(), v)
			assert.Equal(t, []T{v}, b.Slice())
		})
	})

	s.Describe("#Erase", func(s *testcase.Spec) {
		s.Then("one element is removed", func(t *testcase.T) {
			vs := distinct(t, t.Random.IntBetween(1, 7))
			b := subject.Get(t)
			for _, v := range vs {
				b.Insert(v)
			}

			i := t.Random.IntN(len(vs))
			b.Erase(b.Find(vs[i]))

			exp := append(append([]T{}, vs[:i]...), vs[i+1:]...)
			assert.Equal(t, len(exp), b.Len())
			assert.ContainsExactly(t, exp, b.Slice())
			assert.True(t, b.Find(vs[i]) == b.End())
		})

		s.Then("erasing by the returned positions drains the bag", func(t *testcase.T) {
			b := subject.Get(t)
			for _, v := range distinct(t, t.Random.IntBetween(1, 7)) {
				b.Insert(v)
			}
			for pos := b.Begin(); pos != b.End(); {
				pos = b.Erase(pos)
			}
			assert.True(t, b.Empty())
			assert.Equal(t, 0, b.Len())
		})
	})

	s.Describe("#EraseValue", func(s *testcase.Spec) {
		var (
			target = let.Var(s, func(t *testcase.T) T {
				return c.makeT(t)
			})
			copies = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntBetween(1, 4)
			})
			others = let.Var(s, func(t *testcase.T) []T {
				n := t.Random.IntBetween(0, 6)
				vs := make([]T, 0, n)
				for range n {
					vs = append(vs, random.Unique(func() T { return c.makeT(t) }, target.Get(t)))
				}
				return vs
			})
		)
		s.Before(func(t *testcase.T) {
			var vs []T
			vs = append(vs, others.Get(t)...)
			for range copies.Get(t) {
				vs = append(vs, target.Get(t))
			}
			for i := len(vs) - 1; 0 < i; i-- {
				j := t.Random.IntN(i + 1)
				vs[i], vs[j] = vs[j], vs[i]
			}
			for _, v := range vs {
				subject.Get(t).Insert(v)
			}
		})
		act := let.Act(func(t *testcase.T) C {
			return subject.Get(t).EraseValue(target.Get(t))
		})

		s.Then("every equal element is removed", func(t *testcase.T) {
			act(t)

			b := subject.Get(t)
			assert.True(t, b.Find(target.Get(t)) == b.End())
			assert.False(t, b.Contains(target.Get(t)))
			assert.Equal(t, 0, b.Count(target.Get(t)))
		})

		s.Then("size drops by the number of equal elements", func(t *testcase.T) {
			before := subject.Get(t).Len()
			assert.Equal(t, copies.Get(t), subject.Get(t).Count(target.Get(t)))

			act(t)

			assert.Equal(t, before-copies.Get(t), subject.Get(t).Len())
		})

		s.Then("other elements are kept", func(t *testcase.T) {
			act(t)

			assert.ContainsExactly(t, others.Get(t), subject.Get(t).Slice())
		})

		s.When("the value is not in the bag", func(s *testcase.Spec) {
			copies.LetValue(s, 0)

			s.Then("End is returned and nothing changes", func(t *testcase.T) {
				before := subject.Get(t).Slice()

				got := act(t)

				assert.True(t, got == subject.Get(t).End())
				assert.ContainsExactly(t, before, subject.Get(t).Slice())
			})
		})
	})

	s.Describe("#EraseRange", func(s *testcase.Spec) {
		s.Then("the full range empties the bag", func(t *testcase.T) {
			b := subject.Get(t)
			for _, v := range random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeT(t) }) {
				b.Insert(v)
			}
			got := b.EraseRange(b.Begin(), b.End())

			assert.True(t, got == b.End())
			assert.True(t, b.Empty())
		})

		s.Then("an empty range removes nothing", func(t *testcase.T) {
			b := subject.Get(t)
			vs := random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeT(t) })
			for _, v := range vs {
				b.Insert(v)
			}
			b.EraseRange(b.Begin(), b.Begin())

			assert.Equal(t, len(vs), b.Len())
		})

		s.Then("a prefix range removes the elements it spans", func(t *testcase.T) {
			b := subject.Get(t)
			vs := random.Slice(t.Random.IntBetween(2, 7), func() T { return c.makeT(t) })
			for _, v := range vs {
				b.Insert(v)
			}
			all := b.Slice()
			last := b.Next(b.Begin())
			b.EraseRange(b.Begin(), last)

			assert.Equal(t, len(vs)-1, b.Len())
			assert.ContainsExactly(t, all[1:], b.Slice())
		})
	})

	s.Describe("#Find", func(s *testcase.Spec) {
		s.Then("present values are found", func(t *testcase.T) {
			vs := distinct(t, t.Random.IntBetween(1, 7))
			b := subject.Get(t)
			for _, v := range vs {
				b.Insert(v)
			}
			v := vs[t.Random.IntN(len(vs))]
			pos := b.Find(v)

			assert.False(t, pos == b.End())
			assert.Equal(t, v, b.Value(pos))
			assert.True(t, b.Contains(v))
		})

		s.Then("absent values are reported with End", func(t *testcase.T) {
			vs := distinct(t, t.Random.IntBetween(0, 7))
			b := subject.Get(t)
			for _, v := range vs {
				b.Insert(v)
			}
			v := random.Unique(func() T { return c.makeT(t) }, vs...)

			assert.True(t, b.Find(v) == b.End())
			assert.False(t, b.Contains(v))
		})
	})

	s.Describe("#Front and #Back", func(s *testcase.Spec) {
		s.Then("a single element is both front and back", func(t *testcase.T) {
			v := c.makeT(t)
			subject.Get(t).Insert(v)

			assert.Equal(t, v, subject.Get(t).Front())
			assert.Equal(t, v, subject.Get(t).Back())
		})

		s.Then("front and back match the ends of the traversal", func(t *testcase.T) {
			b := subject.Get(t)
			for _, v := range random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeT(t) }) {
				b.Insert(v)
			}
			vs := b.Slice()

			assert.Equal(t, vs[0], b.Front())
			assert.Equal(t, vs[len(vs)-1], b.Back())
		})
	})

	s.Describe("#Swap", func(s *testcase.Spec) {
		oth := let.Var(s, func(t *testcase.T) *bag.Bag[T, C] {
			return must.Must(bag.New(mk(t)))
		})

		s.Then("contents are exchanged, and swapping back restores them", func(t *testcase.T) {
			a, b := subject.Get(t), oth.Get(t)
			avs := random.Slice(t.Random.IntBetween(0, 5), func() T { return c.makeT(t) })
			bvs := random.Slice(t.Random.IntBetween(0, 5), func() T { return c.makeT(t) })
			for _, v := range avs {
				a.Insert(v)
			}
			for _, v := range bvs {
				b.Insert(v)
			}

			a.Swap(b)
			assert.ContainsExactly(t, bvs, a.Slice())
			assert.ContainsExactly(t, avs, b.Slice())
			assert.Equal(t, len(bvs), a.Len())

			a.Swap(b)
			assert.ContainsExactly(t, avs, a.Slice())
			assert.ContainsExactly(t, bvs, b.Slice())
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		s.Then("every element is removed and the bag stays usable", func(t *testcase.T) {
			b := subject.Get(t)
			for _, v := range random.Slice(t.Random.IntBetween(1, 7), func() T { return c.makeT(t) }) {
				b.Insert(v)
			}
			b.Clear()
			assert.True(t, b.Empty())

			v := c.makeT(t)
			b.Insert(v)
			assert.Equal(t, []T{v}, b.Slice())
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		s.Then("iteration matches positional traversal", func(t *testcase.T) {
			b := subject.Get(t)
			for _, v := range random.Slice(t.Random.IntBetween(0, 7), func() T { return c.makeT(t) }) {
				b.Insert(v)
			}
			var got []T
			for pos := b.Begin(); pos != b.End(); pos = b.Next(pos) {
				got = append(got, b.Value(pos))
			}
			assert.Equal(t, got, b.Slice())
		})
	})

	return s.AsSuite(fmt.Sprintf("Bag[%s]", reflectkit.TypeOf[T]().String()))
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeElem makes a random element.
	// It must be able to make distinct values.
	MakeElem func(testing.TB) T
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c Config[T]) makeT(tb testing.TB) T {
	return zerokit.Coalesce(c.MakeElem, makeRandom[T])(tb)
}

func makeRandom[T any](tb testing.TB) T {
	var zero T
	return testcase.ToT(&tb).Random.Make(zero).(T)
}
