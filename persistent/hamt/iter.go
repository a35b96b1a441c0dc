package hamt

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/persistent/arr"
)

// leafIterator yields leaves lazily in canonical slot order, walking the
// trie with an explicit node stack.
type leafIterator[T fset.Hashable[T]] struct {
	stack []hnode[T]
}

func newLeafIterator[T fset.Hashable[T]](root hnode[T]) *leafIterator[T] {
	it := &leafIterator[T]{}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

func (it *leafIterator[T]) push(children arr.Store[hnode[T]]) {
	// reversed, so popping yields slot order
	for i := children.Size() - 1; i >= 0; i-- {
		it.stack = append(it.stack, children.At(i))
	}
}

func (it *leafIterator[T]) next() (hnode[T], bool) {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		switch node := n.(type) {
		case *sparse[T]:
			it.push(node.children)
		case *full[T]:
			it.push(node.children)
		default:
			return n, true
		}
	}
	return nil, false
}

// hamtIterator hands out elements one at a time, leaf by leaf.
type hamtIterator[T fset.Hashable[T]] struct {
	leaves *leafIterator[T]
	elems  []T
	at     int
}

func newHamtIterator[T fset.Hashable[T]](root hnode[T]) *hamtIterator[T] {
	return &hamtIterator[T]{leaves: newLeafIterator(root)}
}

func (it *hamtIterator[T]) Next() (T, bool) {
	if it.at < len(it.elems) {
		x := it.elems[it.at]
		it.at++
		return x, true
	}
	leaf, ok := it.leaves.next()
	if !ok {
		var none T
		return none, false
	}
	_, it.elems = leafElements(leaf)
	it.at = 1
	return it.elems[0], true
}
