package set

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

type LessFn[T comparable] func(a, b T) (less bool)

// Sorted returns a new set with the elements of s in ascending order.
func Sorted[T constraints.Ordered](s Set[T]) *OrderedSet[T] {
	items := slices.Collect(s.All())
	slices.Sort(items)
	return NewOrderedSet(items...)
}

// SortBy returns a sorted copy of s. Elements that compare equal keep their
// relative order.
func (s *OrderedSet[T]) SortBy(less LessFn[T]) *OrderedSet[T] {
	items := s.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	return NewOrderedSet(items...)
}
