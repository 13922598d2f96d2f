// Package datastructcontract holds reusable test suites for the node based containers.
package datastructcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/bagkit/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// PositionalSequence checks a sequence that inserts before a position and erases at it.
// Positions of untouched elements must stay valid across Insert and Erase.
func PositionalSequence[T any, P comparable](mk contract.Make[datastruct.PositionalSequence[T, P]], opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	fill := func(t *testcase.T, seq datastruct.PositionalSequence[T, P]) []T {
		vs := c.makeSlice(t)
		for _, v := range vs {
			pos := seq.Insert(seq.End(), v)
			assert.Equal(t, v, seq.Value(pos))
		}
		return vs
	}

	s.Test("an empty sequence begins at End", func(t *testcase.T) {
		seq := mk(t)
		assert.True(t, seq.Begin() == seq.End())
		assert.Empty(t, iterkit.Collect(seq.Iter()))
	})

	s.Test("Insert at End appends", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)

		assert.Equal(t, vs, walk[T, P](seq))
		assert.Equal(t, vs, iterkit.Collect(seq.Iter()))
	})

	s.Test("Insert puts the value before the position", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)
		at := nth[T, P](seq, t.Random.IntN(len(vs)))
		v := c.MakeElem(t)

		got := seq.Insert(at, v)

		assert.Equal(t, v, seq.Value(got))
		assert.True(t, seq.Next(got) == at)
		assert.Equal(t, len(vs)+1, len(walk[T, P](seq)))
	})

	s.Test("Insert at Begin becomes the new Begin", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)
		v := c.MakeElem(t)

		got := seq.Insert(seq.Begin(), v)

		assert.True(t, got == seq.Begin())
		assert.Equal(t, v, seq.Value(seq.Begin()))
	})

	s.Test("Erase returns the position that followed", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)
		i := t.Random.IntN(len(vs))
		at := nth[T, P](seq, i)
		follower := seq.Next(at)

		got := seq.Erase(at)

		assert.True(t, got == follower)
		assert.Equal(t, without(vs, i), walk[T, P](seq))
	})

	s.Test("erasing every element from Begin leaves it empty", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)

		for pos := seq.Begin(); pos != seq.End(); {
			pos = seq.Erase(pos)
		}
		assert.True(t, seq.Begin() == seq.End())
	})

	s.Test("positions of other elements stay valid", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)
		kept := nth[T, P](seq, len(vs)-1)

		seq.Insert(seq.Begin(), c.MakeElem(t))
		seq.Erase(seq.Begin())
		if 1 < len(vs) {
			seq.Erase(seq.Begin())
		}

		assert.Equal(t, vs[len(vs)-1], seq.Value(kept))
		assert.True(t, seq.Next(kept) == seq.End())
	})

	s.Test("Iter can stop early", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)
		assertIterStops(t, seq)
	})

	return s.AsSuite(fmt.Sprintf("PositionalSequence[%s]", reflectkit.TypeOf[T]().String()))
}

// ForwardSequence checks a sequence that can only link and unlink after a position.
func ForwardSequence[T any, P comparable](mk contract.Make[datastruct.ForwardSequence[T, P]], opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	fill := func(t *testcase.T, seq datastruct.ForwardSequence[T, P]) []T {
		vs := c.makeSlice(t)
		pos := seq.BeforeBegin()
		for _, v := range vs {
			pos = seq.InsertAfter(pos, v)
			assert.Equal(t, v, seq.Value(pos))
		}
		return vs
	}

	s.Test("an empty sequence begins at End", func(t *testcase.T) {
		seq := mk(t)
		assert.True(t, seq.Begin() == seq.End())
		assert.True(t, seq.Next(seq.BeforeBegin()) == seq.End())
		assert.Empty(t, iterkit.Collect(seq.Iter()))
	})

	s.Test("InsertAfter links the value in after the position", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)

		assert.Equal(t, vs, walk[T, P](seq))
		assert.Equal(t, vs, iterkit.Collect(seq.Iter()))
	})

	s.Test("InsertAfter BeforeBegin becomes the new Begin", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)
		v := c.MakeElem(t)

		got := seq.InsertAfter(seq.BeforeBegin(), v)

		assert.True(t, got == seq.Begin())
		assert.Equal(t, v, seq.Value(seq.Begin()))
	})

	s.Test("EraseAfter returns the position that now follows", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)
		i := t.Random.IntN(len(vs))
		prev := seq.BeforeBegin()
		if 0 < i {
			prev = nth[T, P](seq, i-1)
		}
		follower := seq.Next(seq.Next(prev))

		got := seq.EraseAfter(prev)

		assert.True(t, got == follower)
		assert.True(t, seq.Next(prev) == follower)
		assert.Equal(t, without(vs, i), walk[T, P](seq))
	})

	s.Test("erasing after BeforeBegin until End leaves it empty", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)

		for seq.Begin() != seq.End() {
			seq.EraseAfter(seq.BeforeBegin())
		}
		assert.Empty(t, walk[T, P](seq))
	})

	s.Test("positions of other elements stay valid", func(t *testcase.T) {
		seq := mk(t)
		vs := fill(t, seq)
		kept := nth[T, P](seq, len(vs)-1)

		seq.InsertAfter(seq.BeforeBegin(), c.MakeElem(t))
		seq.EraseAfter(seq.BeforeBegin())
		if 1 < len(vs) {
			seq.EraseAfter(seq.BeforeBegin())
		}

		assert.Equal(t, vs[len(vs)-1], seq.Value(kept))
		assert.True(t, seq.Next(kept) == seq.End())
	})

	s.Test("Iter can stop early", func(t *testcase.T) {
		seq := mk(t)
		fill(t, seq)
		assertIterStops(t, seq)
	})

	return s.AsSuite(fmt.Sprintf("ForwardSequence[%s]", reflectkit.TypeOf[T]().String()))
}

func walk[T any, P comparable](seq datastruct.Sequence[T, P]) []T {
	var vs []T
	for pos := seq.Begin(); pos != seq.End(); pos = seq.Next(pos) {
		vs = append(vs, seq.Value(pos))
	}
	return vs
}

func nth[T any, P comparable](seq datastruct.Sequence[T, P], n int) P {
	pos := seq.Begin()
	for range n {
		pos = seq.Next(pos)
	}
	return pos
}

func without[T any](vs []T, i int) []T {
	var out = make([]T, 0, len(vs)-1)
	out = append(out, vs[:i]...)
	return append(out, vs[i+1:]...)
}

func assertIterStops[T any](t *testcase.T, seq datastruct.Iterable[T]) {
	var n int
	for range seq.Iter() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

type SequenceOption[T any] interface {
	option.Option[SequenceConfig[T]]
}

type SequenceConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ SequenceOption[any] = SequenceConfig[any]{}

func (c SequenceConfig[T]) Configure(o *SequenceConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c *SequenceConfig[T]) Init() {
	c.MakeElem = zerokit.Coalesce(c.MakeElem, makeRandom[T])
}

func (c SequenceConfig[T]) makeSlice(t *testcase.T) []T {
	return random.Slice(t.Random.IntBetween(1, 7), func() T { return c.MakeElem(t) })
}

func makeRandom[T any](tb testing.TB) T {
	var zero T
	return testcase.ToT(&tb).Random.Make(zero).(T)
}
