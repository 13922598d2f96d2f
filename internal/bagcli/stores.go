package bagcli

import (
	"slices"

	list "github.com/bahlo/generic-list-go"
	"go.llib.dev/bagkit/pkg/bag"
	"go.llib.dev/bagkit/pkg/bag/bagstore"
	"go.llib.dev/bagkit/pkg/datastruct"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrUnknownStore errorkit.Error = "unknown store kind"
	ErrInvalidValue errorkit.Error = "invalid value"
)

const DefaultStore = "linkedlist"

// Session is a Bag of ints with its position type erased,
// so the commands can work with any store kind.
type Session interface {
	Add(v int)
	AddFront(v int)
	Remove(v int) (removed int)
	Len() int
	Empty() bool
	Front() int
	Back() int
	Slice() []int
	Capabilities() bag.Capabilities
}

type StoreKind struct {
	Name    string
	Summary string
	Open    func() (Session, error)
}

var storeKinds = []StoreKind{
	{
		Name:    "linkedlist",
		Summary: "doubly linked list with stable cursors",
		Open:    opener(func() bag.Store[int, datastruct.Cursor[int]] { return &datastruct.LinkedList[int]{} }),
	},
	{
		Name:    "forwardlist",
		Summary: "singly linked list, forward traversal only",
		Open:    opener(func() bag.Store[int, *datastruct.ForwardElem[int]] { return &datastruct.ForwardList[int]{} }),
	},
	{
		Name:    "vector",
		Summary: "contiguous slice",
		Open:    opener(func() bag.Store[int, int] { return bagstore.MakeVector[int]() }),
	},
	{
		Name:    "deque",
		Summary: "ring buffer",
		Open:    opener(func() bag.Store[int, int] { return bagstore.MakeDeque[int]() }),
	},
	{
		Name:    "list",
		Summary: "node list",
		Open:    opener(func() bag.Store[int, *list.Element[int]] { return bagstore.MakeList[int]() }),
	},
	{
		Name:    "ordered",
		Summary: "ordered multiset over a B-tree",
		Open:    opener(func() bag.Store[int, *bagstore.OrderedEntry[int]] { return bagstore.NewOrderedMultiset[int]() }),
	},
	{
		Name:    "hashed",
		Summary: "hashed multiset",
		Open:    opener(func() bag.Store[int, *list.Element[int]] { return bagstore.MakeHashMultiset[int]() }),
	},
}

func StoreKinds() []StoreKind {
	return slices.Clone(storeKinds)
}

func LookupStore(name string) (StoreKind, bool) {
	i := slices.IndexFunc(storeKinds, func(k StoreKind) bool { return k.Name == name })
	if i < 0 {
		return StoreKind{}, false
	}
	return storeKinds[i], true
}

func Open(name string) (Session, error) {
	kind, ok := LookupStore(name)
	if !ok {
		return nil, ErrUnknownStore.F("%q", name)
	}
	return kind.Open()
}

func opener[C comparable](mk func() bag.Store[int, C]) func() (Session, error) {
	return func() (Session, error) {
		b, err := bag.New(mk())
		if err != nil {
			return nil, err
		}
		return session[C]{Bag: b}, nil
	}
}

type session[C comparable] struct {
	*bag.Bag[int, C]
}

func (s session[C]) Add(v int) { s.Insert(v) }

func (s session[C]) AddFront(v int) { s.InsertAt(s.Begin(), v) }

func (s session[C]) Remove(v int) int {
	n := s.Len()
	s.EraseValue(v)
	return n - s.Len()
}
