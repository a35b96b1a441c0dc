package hashtree

import (
	"github.com/npillmayer/fset"
	tp "github.com/xlab/treeprint"
)

// Stats collects shape diagnostics: depth and occupancy per node.
func (t Tree[T]) Stats() fset.Stats {
	return nodeStats(t.root, "hashtree")
}

// Stats collects shape diagnostics: depth and occupancy per node.
func (t ChoiceTree[T]) Stats() fset.Stats {
	return nodeStats(t.root, "hashtree/choice")
}

func nodeStats[T fset.Hashable[T]](root *node[T], variant string) fset.Stats {
	st := fset.Stats{Variant: variant}
	root.each(func(n *node[T], depth int) {
		st.Observe(depth, n.bucket.Size())
	})
	return st
}

// DebugString renders the tree shape for diagnosis.
func (t Tree[T]) DebugString() string {
	return printTree(t.root)
}

// DebugString renders the tree shape for diagnosis.
func (t ChoiceTree[T]) DebugString() string {
	return printTree(t.root)
}

func printTree[T fset.Hashable[T]](root *node[T]) string {
	if root == nil {
		return "∅"
	}
	printer := tp.New()
	addBranch(printer, root)
	return printer.String()
}

func addBranch[T fset.Hashable[T]](branch tp.Tree, n *node[T]) {
	b := branch.AddBranch(n.bucket.String())
	if n.left != nil {
		addBranch(b, n.left)
	} else if n.right != nil {
		b.AddNode("·")
	}
	if n.right != nil {
		addBranch(b, n.right)
	}
}
