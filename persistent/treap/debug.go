package treap

import (
	"fmt"

	"github.com/npillmayer/fset"
	tp "github.com/xlab/treeprint"
)

// Stats collects shape diagnostics: depth and occupancy per node.
func (t Treap[T]) Stats() fset.Stats {
	st := fset.Stats{Variant: "treap"}
	t.root.each(func(n *tnode[T], depth int) {
		st.Observe(depth, n.bucket.Size())
	})
	return st
}

// DebugString renders the treap shape, including priorities, for diagnosis.
func (t Treap[T]) DebugString() string {
	if t.root == nil {
		return "∅"
	}
	printer := tp.New()
	addBranch(printer, t.root)
	return printer.String()
}

func addBranch[T fset.Hashable[T]](branch tp.Tree, n *tnode[T]) {
	b := branch.AddBranch(fmt.Sprintf("%s ↑%d", n.bucket, n.prio))
	if n.left != nil {
		addBranch(b, n.left)
	} else if n.right != nil {
		b.AddNode("·")
	}
	if n.right != nil {
		addBranch(b, n.right)
	}
}
