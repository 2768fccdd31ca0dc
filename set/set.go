// Package set provides sets of comparable values and the algebra between
// them.
//
// OrderedSet keeps elements in the order they were first added and every
// operation that produces a new set takes its order from the receiver: the
// left operand's elements come first, in the left operand's order, followed
// by whatever the right operand contributes, in the right operand's order.
// That holds for intersection as well, regardless of which operand is
// smaller.
//
// None of the types are safe for concurrent use. Callers sharing a set
// between goroutines must guard it themselves.
package set

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("element not found")
	ErrEmpty    = errors.New("set is empty")
)

// Set is the read side every set exposes. It is all the algebra needs to
// know about the right-hand operand.
type Set[T comparable] interface {
	Has(item T) bool
	Len() int
	All() iter.Seq[T]
}

// Mutable is a Set that can take and drop elements.
type Mutable[T comparable] interface {
	Set[T]
	Add(item T) (modified bool)
	Discard(item T) (removed bool)
	Clear()
}
