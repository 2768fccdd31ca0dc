package set

// Operator spellings. Each one forwards to its long form and adds nothing.

// Or is Union (s | other).
func (s *OrderedSet[T]) Or(other Set[T]) *OrderedSet[T] { return s.Union(other) }

// And is Intersection (s & other).
func (s *OrderedSet[T]) And(other Set[T]) *OrderedSet[T] { return s.Intersection(other) }

// Sub is Difference (s - other).
func (s *OrderedSet[T]) Sub(other Set[T]) *OrderedSet[T] { return s.Difference(other) }

// Xor is SymmetricDifference (s ^ other).
func (s *OrderedSet[T]) Xor(other Set[T]) *OrderedSet[T] { return s.SymmetricDifference(other) }

// Le is IsSubset (s <= other).
func (s *OrderedSet[T]) Le(other Set[T]) bool { return s.IsSubset(other) }

// Lt is IsProperSubset (s < other).
func (s *OrderedSet[T]) Lt(other Set[T]) bool { return s.IsProperSubset(other) }

// Ge is IsSuperset (s >= other).
func (s *OrderedSet[T]) Ge(other Set[T]) bool { return s.IsSuperset(other) }

// Gt is IsProperSuperset (s > other).
func (s *OrderedSet[T]) Gt(other Set[T]) bool { return s.IsProperSuperset(other) }
