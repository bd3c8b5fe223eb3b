package aport

import (
	"container/list"
)

// Cloner enables deep copies of values during Tree.Clone. When V implements
// Cloner[V], Clone stores the result of Clone() in the copy instead of the
// value itself.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a deep copy of the tree: every node's prefix and value is
// copied and the insertion order is preserved. Mutating the copy never
// affects the original. The traversal is driven by an explicit work stack,
// so arbitrarily skewed trees cannot exhaust the goroutine stack.
func (t *Tree[V]) Clone() *Tree[V] {
	c := &Tree[V]{
		length:    t.length,
		order:     list.New(),
		index:     make(map[*node[V]]*list.Element, len(t.index)),
		radixGet:  t.radixGet,
		defaultFn: t.defaultFn,
	}

	// Maps each original node to its copy so the order list can be
	// translated afterwards.
	mirror := make(map[*node[V]]*node[V], len(t.index))

	copyNode := func(src *node[V]) *node[V] {
		dst := &node[V]{prefix: src.prefix}
		if src.value != nil {
			v := cloneValue(*src.value)
			dst.value = &v
		}
		mirror[src] = dst
		return dst
	}

	c.root = copyNode(t.root)

	type frame struct {
		src, dst *node[V]
	}
	stack := []frame{{t.root, c.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range f.src.children.nodes {
			cc := copyNode(child)
			f.dst.children.put(child.prefix[0], cc)
			stack = append(stack, frame{child, cc})
		}
	}

	// Rebuild the order list back to front so PushFront reproduces the
	// original relative order.
	for el := t.order.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*entry[V])
		n := mirror[e.n]
		c.index[n] = c.order.PushFront(&entry[V]{key: e.key, n: n})
	}

	return c
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}
