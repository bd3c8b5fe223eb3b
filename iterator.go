package aport

import (
	"container/list"
)

// entry is what the order list stores: the full key of a valued node plus a
// reference to the node itself.
type entry[V any] struct {
	key string
	n   *node[V]
}

// track records n as the most recently inserted valued node. A node already
// tracked is moved to the front and its key refreshed.
func (t *Tree[V]) track(n *node[V], key string) {
	if el, ok := t.index[n]; ok {
		t.order.Remove(el)
	}
	t.index[n] = t.order.PushFront(&entry[V]{key: key, n: n})
}

func (t *Tree[V]) untrack(n *node[V]) {
	if el, ok := t.index[n]; ok {
		t.order.Remove(el)
		delete(t.index, n)
	}
}

// Iterator walks the tree's entries in most-recently-inserted-first order.
// Entries inserted while iterating are not visited.
type Iterator[V any] struct {
	t   *Tree[V]
	el  *list.Element
	cur *entry[V]
}

// Iter returns an iterator positioned before the first entry.
func (t *Tree[V]) Iter() *Iterator[V] {
	return &Iterator[V]{t: t, el: t.order.Front()}
}

// Next advances to the next entry and reports whether one exists.
func (it *Iterator[V]) Next() bool {
	if it.el == nil {
		it.cur = nil
		return false
	}
	it.cur = it.el.Value.(*entry[V])
	it.el = it.el.Next()
	return true
}

// Key returns the key of the current entry. Valid only after a Next call
// that returned true.
func (it *Iterator[V]) Key() string {
	return it.cur.key
}

// Value returns a pointer to the value of the current entry.
func (it *Iterator[V]) Value() *V {
	return it.cur.n.value
}

// Erase removes the entry Next last returned. The iterator has already moved
// past it, so iteration continues with the following entry. Calling Erase
// before a successful Next, or twice for one entry, is invalid.
func (it *Iterator[V]) Erase() {
	key := it.cur.key
	it.cur = nil
	it.t.Erase(key)
}

// Each calls fn for every entry, most recently inserted first, until fn
// returns false. fn must not mutate the tree; use Iter for that.
func (t *Tree[V]) Each(fn func(key string, val *V) bool) {
	for el := t.order.Front(); el != nil; el = el.Next() {
		e := el.Value.(*entry[V])
		if !fn(e.key, e.n.value) {
			return
		}
	}
}
