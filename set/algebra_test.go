package set_test

import (
	"sort"
	"testing"

	"github.com/denismitr/orderedset/set"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestOrderedSet_Intersection(t *testing.T) {
	t.Run("order comes from the receiver", func(t *testing.T) {
		a := set.NewOrderedSet(3, 1, 2)
		b := set.NewOrderedSet(2, 3, 4)

		assert.Equal(t, []int{3, 2}, a.Intersection(b).Items())
		assert.Equal(t, []int{2, 3}, b.Intersection(a).Items())
		assert.True(t, a.Intersection(b).Equal(b.Intersection(a)))
	})

	t.Run("a much smaller right operand does not change the order", func(t *testing.T) {
		a := set.NewOrderedSet[int]()
		for i := 100; i > 0; i-- {
			a.Add(i)
		}
		b := set.NewOrderedSet(10, 50, 90)

		if diff := cmp.Diff([]int{90, 50, 10}, a.Intersection(b).Items()); diff != "" {
			t.Errorf("intersection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("an unordered right operand", func(t *testing.T) {
		a := set.NewOrderedSet("d", "c", "b", "a")
		b := set.NewHashSet("a", "b", "c", "z")

		for i := 0; i < 10; i++ {
			assert.Equal(t, []string{"c", "b", "a"}, a.Intersection(b).Items())
		}
	})

	t.Run("in place", func(t *testing.T) {
		a := set.NewOrderedSet(3, 1, 2)
		a.IntersectionUpdate(set.NewOrderedSet(2, 3, 4))
		assert.Equal(t, []int{3, 2}, a.Items())

		a.IntersectionUpdate(a)
		assert.Equal(t, []int{3, 2}, a.Items())
	})
}

func TestOrderedSet_Union(t *testing.T) {
	a := set.NewOrderedSet(3, 1, 2)
	b := set.NewOrderedSet(2, 3, 4)

	assert.Equal(t, []int{3, 1, 2, 4}, a.Union(b).Items())
	assert.Equal(t, []int{2, 3, 4, 1}, b.Union(a).Items())
	assert.Equal(t, []int{3, 1, 2}, a.Items(), "operands stay untouched")

	a.Update(b)
	assert.Equal(t, []int{3, 1, 2, 4}, a.Items())

	a.Update(a)
	assert.Equal(t, []int{3, 1, 2, 4}, a.Items())
}

func TestOrderedSet_Difference(t *testing.T) {
	a := set.NewOrderedSet(5, 4, 3, 2, 1)
	b := set.NewHashSet(4, 2, 7)

	assert.Equal(t, []int{5, 3, 1}, a.Difference(b).Items())

	a.DifferenceUpdate(b)
	assert.Equal(t, []int{5, 3, 1}, a.Items())

	a.DifferenceUpdate(a)
	assert.True(t, a.IsEmpty())
}

func TestOrderedSet_SymmetricDifference(t *testing.T) {
	t.Run("receiver leftovers first, then the other operand's", func(t *testing.T) {
		a := set.NewOrderedSet(3, 1, 2)
		b := set.NewOrderedSet(2, 3, 4)

		assert.Equal(t, []int{1, 4}, a.SymmetricDifference(b).Items())
		assert.Equal(t, []int{4, 1}, b.SymmetricDifference(a).Items())
	})

	t.Run("in place matches the copying form", func(t *testing.T) {
		a := set.NewOrderedSet(1, 2, 3, 4)
		b := set.NewOrderedSet(6, 3, 5, 1)

		want := a.SymmetricDifference(b).Items()
		a.SymmetricDifferenceUpdate(b)

		assert.Equal(t, []int{2, 4, 6, 5}, want)
		assert.Equal(t, want, a.Items())
	})

	t.Run("with itself is empty", func(t *testing.T) {
		a := set.NewOrderedSet(1, 2)
		a.SymmetricDifferenceUpdate(a)
		assert.Equal(t, 0, a.Len())
	})
}

func TestOrderedSet_Comparison(t *testing.T) {
	x := set.NewOrderedSet(1, 2)
	y := set.NewOrderedSet(2, 1, 3)

	t.Run("a set against itself", func(t *testing.T) {
		assert.True(t, x.IsSubset(x))
		assert.False(t, x.IsProperSubset(x))
		assert.True(t, x.IsSuperset(x))
		assert.False(t, x.IsProperSuperset(x))
	})

	t.Run("a set against its union with anything", func(t *testing.T) {
		assert.True(t, x.IsSubset(x.Union(y)))
		assert.True(t, y.IsSubset(x.Union(y)))
		assert.True(t, x.Union(y).IsSuperset(x))
	})

	t.Run("proper subset and superset", func(t *testing.T) {
		assert.True(t, x.IsProperSubset(y))
		assert.False(t, y.IsProperSubset(x))
		assert.True(t, y.IsProperSuperset(x))
		assert.False(t, x.IsSuperset(y))
	})

	t.Run("equality ignores order", func(t *testing.T) {
		assert.True(t, set.NewOrderedSet(1, 2).Equal(set.NewOrderedSet(2, 1)))
		assert.True(t, set.NewOrderedSet(1, 2).Equal(set.NewHashSet(2, 1)))
		assert.False(t, x.Equal(y))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.True(t, x.IsDisjoint(set.NewOrderedSet(7, 8, 9)))
		assert.False(t, x.IsDisjoint(y))
		assert.True(t, set.NewOrderedSet[int]().IsDisjoint(x))
	})
}

func TestOrderedSet_Operators(t *testing.T) {
	a := set.NewOrderedSet(3, 1, 2)
	b := set.NewOrderedSet(2, 3, 4)

	assert.Equal(t, a.Union(b).Items(), a.Or(b).Items())
	assert.Equal(t, a.Intersection(b).Items(), a.And(b).Items())
	assert.Equal(t, a.Difference(b).Items(), a.Sub(b).Items())
	assert.Equal(t, a.SymmetricDifference(b).Items(), a.Xor(b).Items())

	u := a.Or(b)
	assert.True(t, a.Le(u))
	assert.True(t, a.Lt(u))
	assert.True(t, u.Ge(a))
	assert.True(t, u.Gt(a))
	assert.False(t, a.Lt(a))
	assert.False(t, a.Gt(a))
}

func TestAlgebra_HashSetOperands(t *testing.T) {
	a := set.NewHashSet(1, 2, 3)
	b := set.NewHashSet(3, 4)

	t.Run("union into an unordered destination", func(t *testing.T) {
		dst := set.NewHashSet[int]()
		set.Union[int](dst, a, b)

		items := dst.Items()
		sort.Ints(items)
		assert.Equal(t, []int{1, 2, 3, 4}, items)
	})

	t.Run("symmetric difference into an ordered destination", func(t *testing.T) {
		dst := set.NewOrderedSet[int]()
		set.SymmetricDifference[int](dst, b, a)

		assert.Equal(t, []int{4}, dst.Items()[:1])
		assert.ElementsMatch(t, []int{4, 1, 2}, dst.Items())
	})

	t.Run("predicates", func(t *testing.T) {
		assert.True(t, set.IsSubset[int](set.NewHashSet(1, 3), a))
		assert.True(t, set.IsProperSuperset[int](a, set.NewHashSet(2)))
		assert.False(t, set.IsDisjoint[int](a, b))
		assert.True(t, set.Equal[int](a, set.NewOrderedSet(3, 2, 1)))
	})
}
