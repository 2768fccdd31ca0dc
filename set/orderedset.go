package set

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/denismitr/orderedset/orderedmap"
	"github.com/pkg/errors"
)

// OrderedSet is a set that remembers insertion order. Adding an element that
// is already present changes nothing; discarding an element and adding it
// again puts it at the end.
//
// Membership lives in an ordered map whose values are unused, so Has,
// Add and Discard are all O(1).
type OrderedSet[T comparable] struct {
	om *orderedmap.OrderedMap[T, struct{}]
}

var _ Mutable[int] = (*OrderedSet[int])(nil)

// NewOrderedSet returns a set holding items in the order given, duplicates
// dropped.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		om: orderedmap.New[T, struct{}](),
	}
	s.InsertSlice(items)
	return s
}

// FromSlices builds a set from the sources left to right. The first
// occurrence of an element fixes its position.
func FromSlices[T comparable](sources ...[]T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	for _, src := range sources {
		s.InsertSlice(src)
	}
	return s
}

// FromSeq is FromSlices for lazy sequences.
func FromSeq[T comparable](sources ...iter.Seq[T]) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	for _, src := range sources {
		for v := range src {
			s.Add(v)
		}
	}
	return s
}

func (s *OrderedSet[T]) Add(item T) (modified bool) {
	return s.om.SetNX(item, struct{}{})
}

// Discard removes item if present. A missing item is not an error.
func (s *OrderedSet[T]) Discard(item T) (removed bool) {
	_, removed = s.om.HasRemove(item)
	return removed
}

// Remove is the strict form of Discard.
func (s *OrderedSet[T]) Remove(item T) error {
	if !s.Discard(item) {
		return errors.Wrapf(ErrNotFound, "remove %#v", item)
	}

	return nil
}

// Pop removes and returns the oldest element.
func (s *OrderedSet[T]) Pop() (T, error) {
	item, _, ok := s.om.Front()
	if !ok {
		return item, errors.Wrap(ErrEmpty, "pop")
	}

	s.om.Remove(item)
	return item, nil
}

func (s *OrderedSet[T]) MoveToEnd(item T) error {
	if !s.om.MoveToBack(item) {
		return errors.Wrapf(ErrNotFound, "move %#v to end", item)
	}

	return nil
}

func (s *OrderedSet[T]) Has(item T) bool {
	return s.om.Has(item)
}

func (s *OrderedSet[T]) Len() int {
	return s.om.Len()
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return s.om.Len() == 0
}

func (s *OrderedSet[T]) Clear() {
	s.om.Clear()
}

// All yields the elements in order. Each call starts from the current front.
// The set must not be modified until the loop over it has finished.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return s.om.KeysSeq()
}

// Items returns a snapshot of the elements in order.
func (s *OrderedSet[T]) Items() []T {
	return s.om.Keys()
}

func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	return &OrderedSet[T]{om: s.om.Clone()}
}

func (s *OrderedSet[T]) InsertSet(source Set[T]) (modified bool) {
	for v := range source.All() {
		if s.Add(v) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) InsertSlice(source []T) (modified bool) {
	for _, v := range source {
		if s.Add(v) {
			modified = true
		}
	}

	return modified
}

func (s *OrderedSet[T]) is(other Set[T]) bool {
	o, ok := other.(*OrderedSet[T])
	return ok && o == s
}

// Union returns s's elements followed by the elements of other not in s.
func (s *OrderedSet[T]) Union(other Set[T]) *OrderedSet[T] {
	result := NewOrderedSet[T]()
	Union[T](result, s, other)
	return result
}

// Intersection returns the elements of s that are also in other, in s's
// order. The order of other is never consulted.
func (s *OrderedSet[T]) Intersection(other Set[T]) *OrderedSet[T] {
	result := NewOrderedSet[T]()
	Intersection[T](result, s, other)
	return result
}

func (s *OrderedSet[T]) Difference(other Set[T]) *OrderedSet[T] {
	result := NewOrderedSet[T]()
	Difference[T](result, s, other)
	return result
}

// SymmetricDifference returns the elements of s not in other, in s's order,
// followed by the elements of other not in s, in other's order.
func (s *OrderedSet[T]) SymmetricDifference(other Set[T]) *OrderedSet[T] {
	result := NewOrderedSet[T]()
	SymmetricDifference[T](result, s, other)
	return result
}

// Update adds the elements of other that s is missing, in other's order.
func (s *OrderedSet[T]) Update(other Set[T]) {
	if s.is(other) {
		return
	}

	s.InsertSet(other)
}

// IntersectionUpdate drops the elements of s that other lacks.
func (s *OrderedSet[T]) IntersectionUpdate(other Set[T]) {
	if s.is(other) {
		return
	}

	for _, v := range s.Items() {
		if !other.Has(v) {
			s.Discard(v)
		}
	}
}

func (s *OrderedSet[T]) DifferenceUpdate(other Set[T]) {
	if s.is(other) {
		s.Clear()
		return
	}

	for v := range other.All() {
		s.Discard(v)
	}
}

// SymmetricDifferenceUpdate leaves s holding its own elements not in other,
// followed by other's elements not in s.
func (s *OrderedSet[T]) SymmetricDifferenceUpdate(other Set[T]) {
	if s.is(other) {
		s.Clear()
		return
	}

	for v := range other.All() {
		if !s.Discard(v) {
			s.Add(v)
		}
	}
}

func (s *OrderedSet[T]) IsSubset(other Set[T]) bool {
	return IsSubset[T](s, other)
}

func (s *OrderedSet[T]) IsProperSubset(other Set[T]) bool {
	return IsProperSubset[T](s, other)
}

func (s *OrderedSet[T]) IsSuperset(other Set[T]) bool {
	return IsSuperset[T](s, other)
}

func (s *OrderedSet[T]) IsProperSuperset(other Set[T]) bool {
	return IsProperSuperset[T](s, other)
}

// Equal compares membership only: {1, 2} equals {2, 1}.
func (s *OrderedSet[T]) Equal(other Set[T]) bool {
	return Equal[T](s, other)
}

func (s *OrderedSet[T]) IsDisjoint(other Set[T]) bool {
	return IsDisjoint[T](s, other)
}

// String renders the set as {e1, e2, ...} in order.
func (s *OrderedSet[T]) String() string {
	return "{" + s.join() + "}"
}

// GoString renders the set as the constructor call that would rebuild it,
// e.g. set.NewOrderedSet[int](3, 1, 2).
func (s *OrderedSet[T]) GoString() string {
	return fmt.Sprintf("set.NewOrderedSet[%s](%s)", reflect.TypeFor[T]().String(), s.join())
}

func (s *OrderedSet[T]) join() string {
	var b strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", v)
		first = false
	}
	return b.String()
}
