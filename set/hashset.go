package set

import "iter"

// HashSet - is an unordered set
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Mutable[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := &HashSet[T]{
		m: make(map[T]struct{}, len(items)),
	}
	s.InsertSlice(items)
	return s
}

func (s *HashSet[T]) Add(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Discard(item T) (removed bool) {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		removed = true
	}

	return removed
}

func (s *HashSet[T]) Clear() {
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

// All yields the elements in no particular order.
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for item := range sourceSet.All() {
		if s.Add(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Add(item) {
			modified = true
		}
	}

	return modified
}
