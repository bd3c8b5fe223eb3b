package aport

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable rendering of the tree structure to w, one
// node per line, indented by depth, children in byte order. Values are
// formatted with %v. Useful during development and debugging; the exact
// format is not part of the API.
func (t *Tree[V]) Dump(w io.Writer) {
	type frame struct {
		n     *node[V]
		depth int
	}

	stack := []frame{{t.root, -1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// The root is silent unless the empty key holds a value.
		if f.n.prefix != "" || f.n.value != nil {
			fmt.Fprintf(w, "%s%q", strings.Repeat(" ", max(f.depth, 0)), f.n.prefix)
			if f.n.value != nil {
				fmt.Fprintf(w, ": %v", *f.n.value)
			}
			fmt.Fprintln(w)
		}

		// Pushed in reverse so the smallest byte is rendered first.
		for i := f.n.children.len() - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.children.nodes[i], f.depth + 1})
		}
	}
}

// String renders the tree as Dump would.
func (t *Tree[V]) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
