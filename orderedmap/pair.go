package orderedmap

// Pair is a single entry of an OrderedMap as it is stored in the order list.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
