package bagstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/bagkit/pkg/bag/bagstore"
)

func TestDeque_Insert(t *testing.T) {
	for _, tc := range []struct {
		name string
		at   int
		exp  []int
	}{
		{name: "front", at: 0, exp: []int{9, 1, 2, 3, 4}},
		{name: "middle", at: 2, exp: []int{1, 2, 9, 3, 4}},
		{name: "before last", at: 3, exp: []int{1, 2, 3, 9, 4}},
		{name: "end", at: 4, exp: []int{1, 2, 3, 4, 9}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := bagstore.MakeDeque(1, 2, 3, 4)

			pos := d.Insert(tc.at, 9)

			require.Equal(t, tc.at, pos)
			require.Equal(t, 9, d.Value(pos))
			require.Equal(t, tc.exp, d.Slice())
		})
	}
}

func TestDeque_Erase(t *testing.T) {
	for _, tc := range []struct {
		name string
		at   int
		exp  []int
	}{
		{name: "front", at: 0, exp: []int{2, 3, 4}},
		{name: "middle", at: 1, exp: []int{1, 3, 4}},
		{name: "last", at: 3, exp: []int{1, 2, 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := bagstore.MakeDeque(1, 2, 3, 4)

			next := d.Erase(tc.at)

			require.Equal(t, tc.at, next)
			require.Equal(t, tc.exp, d.Slice())
		})
	}

	t.Run("the only element", func(t *testing.T) {
		d := bagstore.MakeDeque(1)
		next := d.Erase(0)
		require.Equal(t, d.End(), next)
		require.Equal(t, 0, d.Len())
	})
}

func TestDeque_EraseRange(t *testing.T) {
	for _, tc := range []struct {
		name        string
		first, last int
		exp         []int
	}{
		{name: "empty range", first: 2, last: 2, exp: []int{1, 2, 3, 4, 5}},
		{name: "prefix", first: 0, last: 2, exp: []int{3, 4, 5}},
		{name: "middle", first: 1, last: 4, exp: []int{1, 5}},
		{name: "suffix", first: 3, last: 5, exp: []int{1, 2, 3}},
		{name: "everything", first: 0, last: 5, exp: []int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := bagstore.MakeDeque(1, 2, 3, 4, 5)

			d.EraseRange(tc.first, tc.last)

			require.Equal(t, tc.exp, d.Slice())
		})
	}
}

func TestDeque_zeroValue(t *testing.T) {
	var d bagstore.Deque[string]
	require.Equal(t, d.Begin(), d.End())
	require.Equal(t, d.End(), d.Last())

	d.Insert(d.End(), "foo")
	d.Insert(0, "bar")

	require.Equal(t, []string{"bar", "foo"}, d.Slice())
	require.Equal(t, 1, d.Last())

	d.Swap(0, 1)
	d.PopBack()
	require.Equal(t, []string{"foo"}, d.Slice())
}
