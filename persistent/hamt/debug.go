package hamt

import (
	"fmt"

	"github.com/npillmayer/fset"
	tp "github.com/xlab/treeprint"
)

// Stats collects shape diagnostics: depth and occupancy per leaf.
func (h Hamt[T]) Stats() fset.Stats {
	return trieStats(h.root, "hamt")
}

// Stats collects shape diagnostics: depth and occupancy per leaf.
func (h ChoiceHamt[T]) Stats() fset.Stats {
	return trieStats(h.root, "hamt/choice")
}

func trieStats[T fset.Hashable[T]](root hnode[T], variant string) fset.Stats {
	st := fset.Stats{Variant: variant}
	eachLeaf(root, func(n hnode[T], depth int) bool {
		_, elems := leafElements(n)
		st.Observe(depth, len(elems))
		return true
	})
	return st
}

// DebugString renders the trie shape for diagnosis.
func (h Hamt[T]) DebugString() string {
	return printTrie(h.root)
}

// DebugString renders the trie shape for diagnosis.
func (h ChoiceHamt[T]) DebugString() string {
	return printTrie(h.root)
}

func printTrie[T fset.Hashable[T]](root hnode[T]) string {
	if root == nil {
		return "∅"
	}
	printer := tp.New()
	addBranch(printer, root)
	return printer.String()
}

func addBranch[T fset.Hashable[T]](branch tp.Tree, n hnode[T]) {
	switch node := n.(type) {
	case *leafOne[T]:
		branch.AddNode(fmt.Sprintf("⟨#%d:%v⟩", node.hash, node.elem))
	case *leafMany[T]:
		branch.AddNode(fmt.Sprintf("⟨#%d:%v⟩", node.hash, node.elems))
	case *sparse[T]:
		b := branch.AddBranch(fmt.Sprintf("sparse %016b", node.bitmap))
		node.children.Each(func(child hnode[T]) bool {
			addBranch(b, child)
			return true
		})
	case *full[T]:
		b := branch.AddBranch("full")
		node.children.Each(func(child hnode[T]) bool {
			addBranch(b, child)
			return true
		})
	}
}
