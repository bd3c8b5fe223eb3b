package aport

import (
	"container/list"
)

// Entry is a key/value pair accepted by the constructors.
type Entry[V any] struct {
	Key string
	Val V
}

// Tree is the APORT container. The zero value is not usable; construct with
// New or NewRadix. A Tree owns its entire node graph and is not safe for
// concurrent use.
type Tree[V any] struct {
	root   *node[V]
	length int

	// Insertion-order tracking: order holds one *entry per valued node,
	// most recently inserted first; index locates a node's element in O(1).
	order *list.List
	index map[*node[V]]*list.Element

	radixGet  bool // Get verifies prefix bytes when set
	defaultFn func() V
}

// New returns a tree whose Get uses the optimistic discipline. Any initial
// entries are inserted in order.
func New[V any](init ...Entry[V]) *Tree[V] {
	return newTree[V](false, init)
}

// NewRadix returns a tree whose Get verifies every prefix byte, making the
// container a conventional radix tree with no false positives.
func NewRadix[V any](init ...Entry[V]) *Tree[V] {
	return newTree[V](true, init)
}

func newTree[V any](radixGet bool, init []Entry[V]) *Tree[V] {
	t := &Tree[V]{
		root:     &node[V]{},
		order:    list.New(),
		index:    make(map[*node[V]]*list.Element),
		radixGet: radixGet,
	}
	for _, e := range init {
		t.Insert(e.Key, e.Val)
	}
	return t
}

// SetDefault installs the factory GetOrInsert uses to produce values for
// missing keys. Without one the zero value of V is used.
func (t *Tree[V]) SetDefault(fn func() V) {
	t.defaultFn = fn
}

// Len returns the number of entries stored in the tree.
func (t *Tree[V]) Len() int {
	return t.length
}

// Clear drops every entry and resets the tracking state. The root node is
// replaced, never removed.
func (t *Tree[V]) Clear() {
	t.root = &node[V]{}
	t.length = 0
	t.order.Init()
	clear(t.index)
}

// Insert stores val under key, replacing any previous value. The empty key
// is valid and lands on the root node.
func (t *Tree[V]) Insert(key string, val V) {
	t.upsert(key, func() V { return val }, true)
}

// GetOrInsert returns a pointer to the value stored under key, creating the
// entry with a default-constructed value if it does not exist. It always
// matches exactly: structural decisions cannot be made optimistically.
func (t *Tree[V]) GetOrInsert(key string) *V {
	return t.upsert(key, t.fresh, false)
}

func (t *Tree[V]) fresh() V {
	if t.defaultFn != nil {
		return t.defaultFn()
	}
	var zero V
	return zero
}

// upsert walks to the node for key, creating and splitting nodes as needed,
// and returns a pointer to that node's value. fresh produces the value
// stored when the node has none; an existing value is replaced only when
// overwrite is set.
func (t *Tree[V]) upsert(key string, fresh func() V, overwrite bool) *V {
	var (
		parent *node[V]
		n      = t.root
		k      = key
		acc    byte // byte under which n is stored in parent
	)
	for {
		m, nm := comparePrefix(n.prefix, k)
		k = k[nm:]

		switch m {
		case matchPrefixFull:
			// The whole prefix matched and the key has a tail; follow the
			// child under the next key byte or create a new leaf for the
			// remaining suffix.
			b := k[0]
			if child, ok := n.children.get(b); ok {
				parent, n, acc = n, child, b
				continue
			}
			leaf := &node[V]{prefix: k}
			v := fresh()
			leaf.value = &v
			n.children.put(b, leaf)
			t.length++
			t.track(leaf, key)
			return leaf.value

		case matchPartial:
			// The key diverged inside the prefix: split n at the matched
			// length. The intermediate node takes the shared segment, the
			// old node keeps its suffix and children underneath it.
			inter := &node[V]{prefix: n.prefix[:nm]}
			n.prefix = n.prefix[nm:]
			inter.children.put(n.prefix[0], n)

			target := inter
			if len(k) > 0 {
				leaf := &node[V]{prefix: k}
				inter.children.put(k[0], leaf)
				target = leaf
			}
			v := fresh()
			target.value = &v

			parent.children.put(acc, inter)
			t.length++
			t.track(target, key)
			return target.value

		case matchExact:
			if n.value == nil {
				v := fresh()
				n.value = &v
				t.length++
			} else if overwrite {
				*n.value = fresh()
			}
			t.track(n, key)
			return n.value

		default:
			// matchNone cannot occur: children are selected by their
			// leading byte and the root prefix is empty.
			panic("aport: corrupted tree")
		}
	}
}

// Erase removes the entry stored under key and reports whether one existed.
// Erasing an absent key is a no-op.
func (t *Tree[V]) Erase(key string) bool {
	var (
		grand  *node[V]
		parent *node[V]
		n      = t.root
		k      = key
		acc    byte // byte under which n is stored in parent
	)
	for {
		m, nm := comparePrefix(n.prefix, k)
		k = k[nm:]

		switch m {
		case matchNone, matchPartial:
			return false

		case matchPrefixFull:
			b := k[0]
			child, ok := n.children.get(b)
			if !ok {
				return false
			}
			grand, parent, n, acc = parent, n, child, b

		case matchExact:
			if n.value == nil {
				// A branch node without a value; the key is absent.
				return false
			}
			t.untrack(n)
			n.value = nil
			t.length--

			// The root is a permanent anchor: never restructured.
			if n == t.root {
				return true
			}

			switch n.children.len() {
			case 0:
				parent.children.delete(acc)
				// Removing n may leave the parent valueless with a single
				// child; fuse the two when a grandparent exists to hold
				// the result.
				if grand != nil && parent.value == nil && parent.children.len() == 1 {
					child := parent.children.only()
					child.prefix = parent.prefix + child.prefix
					grand.children.put(child.prefix[0], child)
				}
			case 1:
				// Splice: the single child absorbs n's prefix and takes
				// its slot in the parent.
				child := n.children.only()
				child.prefix = n.prefix + child.prefix
				parent.children.put(acc, child)
			default:
				// Still needed for disambiguation; only the value goes.
			}
			return true
		}
	}
}

// Contains reports whether an entry is stored under key. It always matches
// exactly, even on an optimistic tree, so it never yields false positives.
func (t *Tree[V]) Contains(key string) bool {
	n, k := t.root, key
	for {
		m, nm := comparePrefix(n.prefix, k)
		k = k[nm:]

		switch m {
		case matchNone, matchPartial:
			return false
		case matchPrefixFull:
			child, ok := n.children.get(k[0])
			if !ok {
				return false
			}
			n = child
		case matchExact:
			return n.value != nil
		}
	}
}

// Get returns a pointer to the value stored under key, or a *KeyError when
// the tree holds no such entry. On a tree built with New the traversal is
// optimistic and may return the value of a different key of the same length
// that agrees on all consulted branch bytes; see the package documentation.
func (t *Tree[V]) Get(key string) (*V, error) {
	cmp := comparePrefixLen
	if t.radixGet {
		cmp = comparePrefix
	}

	n, k := t.root, key
	for {
		m, nm := cmp(n.prefix, k)
		k = k[nm:]

		switch m {
		case matchNone, matchPartial:
			return nil, &KeyError{Key: key}
		case matchPrefixFull:
			child, ok := n.children.get(k[0])
			if !ok {
				return nil, &KeyError{Key: key}
			}
			n = child
		case matchExact:
			if n.value == nil {
				return nil, &KeyError{Key: key}
			}
			return n.value, nil
		}
	}
}

// Take moves the contents of other into t, discarding t's previous entries.
// other is left empty but valid. The receivers' disciplines and default
// factories are unchanged.
func (t *Tree[V]) Take(other *Tree[V]) {
	if t == other {
		return
	}
	t.root = other.root
	t.length = other.length
	t.order = other.order
	t.index = other.index

	other.root = &node[V]{}
	other.length = 0
	other.order = list.New()
	other.index = make(map[*node[V]]*list.Element)
}
