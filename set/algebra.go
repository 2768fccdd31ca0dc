package set

// The functions below write their result into dst, which must not be a or b.
// Elements reach dst in the order they are visited: a first, then b.

// Union adds every element of a and then every element of b to dst.
func Union[T comparable](dst Mutable[T], a, b Set[T]) {
	for v := range a.All() {
		dst.Add(v)
	}
	for v := range b.All() {
		dst.Add(v)
	}
}

// Intersection adds the elements of a that are also in b, in a's order.
// b is only probed, never walked, so its order and size do not matter.
func Intersection[T comparable](dst Mutable[T], a, b Set[T]) {
	for v := range a.All() {
		if b.Has(v) {
			dst.Add(v)
		}
	}
}

// Difference adds the elements of a that are not in b.
func Difference[T comparable](dst Mutable[T], a, b Set[T]) {
	for v := range a.All() {
		if !b.Has(v) {
			dst.Add(v)
		}
	}
}

// SymmetricDifference adds the elements of a missing from b, then the
// elements of b missing from a.
func SymmetricDifference[T comparable](dst Mutable[T], a, b Set[T]) {
	Difference(dst, a, b)
	Difference(dst, b, a)
}

// IsSubset reports whether every element of a is in b.
func IsSubset[T comparable](a, b Set[T]) bool {
	if a.Len() > b.Len() {
		return false
	}

	for v := range a.All() {
		if !b.Has(v) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every element of b is in a.
func IsSuperset[T comparable](a, b Set[T]) bool {
	return IsSubset(b, a)
}

func IsProperSubset[T comparable](a, b Set[T]) bool {
	return a.Len() < b.Len() && IsSubset(a, b)
}

func IsProperSuperset[T comparable](a, b Set[T]) bool {
	return IsProperSubset(b, a)
}

// Equal is plain set equality; order is ignored.
func Equal[T comparable](a, b Set[T]) bool {
	return a.Len() == b.Len() && IsSubset(a, b)
}

// IsDisjoint reports whether a and b have no element in common.
func IsDisjoint[T comparable](a, b Set[T]) bool {
	if a.Len() > b.Len() {
		a, b = b, a
	}

	for v := range a.All() {
		if b.Has(v) {
			return false
		}
	}

	return true
}
