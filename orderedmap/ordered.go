// Package orderedmap provides a map that remembers the order in which keys
// were first set.
//
// Lookups and removals are O(1): every key points straight at its element
// in a doubly linked list that holds the order.
package orderedmap

import (
	"iter"

	"github.com/denismitr/dll"
)

type (
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[Pair[K, V]]
		list *dll.DoublyLinkedList[Pair[K, V]]
	}

	FilterFn[K comparable, V any]       func(key K, value V, order int) bool
	ForEachFn[K comparable, V any]      func(key K, value V, order int)
	ForEachUntilFn[K comparable, V any] func(key K, value V, order int) bool
)

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[Pair[K, V]]),
		list: dll.New[Pair[K, V]](),
	}
}

// Set is idempotent with respect to order: replacing the value of an
// existing key keeps its position.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		om.pushBack(key, value)
		return
	}

	existingEl.ReplaceValue(Pair[K, V]{Key: key, Value: value})
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if _, found := om.m[key]; found {
		return false
	}

	om.pushBack(key, value)
	return true
}

func (om *OrderedMap[K, V]) pushBack(key K, value V) {
	newEl := dll.NewElement(Pair[K, V]{Key: key, Value: value})
	om.m[key] = newEl
	om.list.PushTail(newEl)
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		var zero V
		return zero, false
	}

	return el.Value().Value, true
}

func (om *OrderedMap[K, V]) Get(key K) V {
	v, _ := om.HasGet(key)
	return v
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

// HasRemove deletes key and reports whether it was present.
// A missing key is not an error.
func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	el, exists := om.m[key]
	if !exists {
		var zero V
		return zero, false
	}

	v := el.Value().Value
	delete(om.m, key)
	om.list.Remove(el)

	return v, true
}

func (om *OrderedMap[K, V]) Remove(key K) V {
	v, _ := om.HasRemove(key)
	return v
}

// MoveToBack moves an existing key to the end of the order.
func (om *OrderedMap[K, V]) MoveToBack(key K) bool {
	el, exists := om.m[key]
	if !exists {
		return false
	}

	pair := el.Value()
	om.list.Remove(el)
	om.pushBack(pair.Key, pair.Value)

	return true
}

// Front returns the oldest pair.
func (om *OrderedMap[K, V]) Front() (K, V, bool) {
	head := om.list.Head()
	if head == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}

	pair := head.Value()
	return pair.Key, pair.Value, true
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) Clear() {
	om.m = make(map[K]*dll.Element[Pair[K, V]])
	om.list = dll.New[Pair[K, V]]()
}

// Keys returns a snapshot of the keys in order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		keys = append(keys, curr.Value().Key)
	}
	return keys
}

// All walks the pairs from the current front of the order. Every call starts
// a fresh pass. The map must not be modified while a pass is in progress.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for curr := om.list.Head(); curr != nil; curr = curr.Next() {
			pair := curr.Value()
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// KeysSeq is All without the values.
func (om *OrderedMap[K, V]) KeysSeq() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range om.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for k, v := range om.All() {
		f(k, v, order)
		order++
	}
}

func (om *OrderedMap[K, V]) ForEachUntil(f ForEachUntilFn[K, V]) *OrderedMap[K, V] {
	order := 0
	for k, v := range om.All() {
		if canGoOn := f(k, v, order); !canGoOn {
			break
		}
		order++
	}

	return om
}

func (om *OrderedMap[K, V]) Filter(f FilterFn[K, V]) *OrderedMap[K, V] {
	result := New[K, V]()

	order := 0
	for k, v := range om.All() {
		if preserve := f(k, v, order); preserve {
			result.Set(k, v)
		}
		order++
	}

	return result
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := New[K, V]()
	for k, v := range om.All() {
		result.Set(k, v)
	}
	return result
}
