package treap

/*
Remarks:
--------

- BST order on hashes, max-heap order on priorities. Priorities derive from
  the stored hash (hashes.Priority), never from the element, so shape is a
  pure function of the hash set.

- A nil *tnode is the canonical empty treap.

- merge replaces the recursive rotate-and-retry removal: it walks down both
  subtrees picking the higher priority, with an explicit stack, so degenerate
  inputs cannot exhaust the call stack.
*/

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
	"github.com/npillmayer/fset/persistent/bucket"
)

type tnode[T fset.Hashable[T]] struct {
	bucket      bucket.Bucket[T]
	prio        int32
	left, right *tnode[T]
}

func newNode[T fset.Hashable[T]](hash int32, elem T) *tnode[T] {
	return &tnode[T]{bucket: bucket.Of(hash, elem), prio: hashes.Priority(hash)}
}

// find descends to the node holding `hash`, iteratively.
func (n *tnode[T]) find(hash int32) *tnode[T] {
	for n != nil {
		switch h := n.bucket.Hash(); {
		case hash == h:
			return n
		case hash < h:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// insert adds elem under `hash`, path-copying, and re-establishes the heap
// property on the way back: at each copied level one treapify step suffices,
// since only one child changed.
func (n *tnode[T]) insert(hash int32, elem T) (*tnode[T], bool) {
	if n == nil {
		return newNode(hash, elem), true
	}
	switch h := n.bucket.Hash(); {
	case hash == h:
		b, added := n.bucket.With(elem)
		if !added {
			return n, false
		}
		return &tnode[T]{bucket: b, prio: n.prio, left: n.left, right: n.right}, true
	case hash < h:
		cow, added := n.left.insert(hash, elem)
		if !added {
			return n, false
		}
		m := &tnode[T]{bucket: n.bucket, prio: n.prio, left: cow, right: n.right}
		return m.treapify(), true
	default:
		cow, added := n.right.insert(hash, elem)
		if !added {
			return n, false
		}
		m := &tnode[T]{bucket: n.bucket, prio: n.prio, left: n.left, right: cow}
		return m.treapify(), true
	}
}

// treapify restores the max-heap property at this node only, rotating up
// whichever child outranks the node, if any.
func (n *tnode[T]) treapify() *tnode[T] {
	if n.left != nil && n.left.prio > n.prio {
		return n.rotateRight()
	}
	if n.right != nil && n.right.prio > n.prio {
		return n.rotateLeft()
	}
	return n
}

func (n *tnode[T]) rotateRight() *tnode[T] {
	assertThat(n.left != nil, "rotation right requires a left child")
	l := n.left
	return &tnode[T]{bucket: l.bucket, prio: l.prio, left: l.left,
		right: &tnode[T]{bucket: n.bucket, prio: n.prio, left: l.right, right: n.right}}
}

func (n *tnode[T]) rotateLeft() *tnode[T] {
	assertThat(n.right != nil, "rotation left requires a right child")
	r := n.right
	return &tnode[T]{bucket: r.bucket, prio: r.prio, right: r.right,
		left: &tnode[T]{bucket: n.bucket, prio: n.prio, left: n.left, right: r.left}}
}

// remove deletes elem from the bucket at `hash`, path-copying. An emptied
// node is replaced by the merge of its subtrees; no treapify is needed on
// the way up, since removal never raises a priority.
func (n *tnode[T]) remove(hash int32, elem T) (*tnode[T], bool) {
	if n == nil {
		return nil, false
	}
	switch h := n.bucket.Hash(); {
	case hash < h:
		cow, removed := n.left.remove(hash, elem)
		if !removed {
			return n, false
		}
		return &tnode[T]{bucket: n.bucket, prio: n.prio, left: cow, right: n.right}, true
	case hash > h:
		cow, removed := n.right.remove(hash, elem)
		if !removed {
			return n, false
		}
		return &tnode[T]{bucket: n.bucket, prio: n.prio, left: n.left, right: cow}, true
	default:
		b, removed, empty := n.bucket.Without(elem)
		if !removed {
			return n, false
		}
		if !empty {
			return &tnode[T]{bucket: b, prio: n.prio, left: n.left, right: n.right}, true
		}
		return merge(n.left, n.right), true
	}
}

// update replaces the element equal to elem in the bucket at `hash`. Shape
// and priorities are untouched.
func (n *tnode[T]) update(hash int32, elem T) (*tnode[T], bool) {
	if n == nil {
		return nil, false
	}
	switch h := n.bucket.Hash(); {
	case hash < h:
		cow, updated := n.left.update(hash, elem)
		if !updated {
			return n, false
		}
		return &tnode[T]{bucket: n.bucket, prio: n.prio, left: cow, right: n.right}, true
	case hash > h:
		cow, updated := n.right.update(hash, elem)
		if !updated {
			return n, false
		}
		return &tnode[T]{bucket: n.bucket, prio: n.prio, left: n.left, right: cow}, true
	default:
		b, ok := n.bucket.WithReplaced(elem)
		if !ok {
			return n, false
		}
		return &tnode[T]{bucket: b, prio: n.prio, left: n.left, right: n.right}, true
	}
}

// merge joins two treaps where every hash in l is smaller than every hash in
// r, always rotating the higher priority up. Iterative with an explicit
// stack of visited spine nodes.
func merge[T fset.Hashable[T]](l, r *tnode[T]) *tnode[T] {
	type frame struct {
		n        *tnode[T]
		fromLeft bool
	}
	var spine []frame
	for l != nil && r != nil {
		if l.prio >= r.prio {
			spine = append(spine, frame{l, true})
			l = l.right
		} else {
			spine = append(spine, frame{r, false})
			r = r.left
		}
	}
	merged := l
	if merged == nil {
		merged = r
	}
	for i := len(spine) - 1; i >= 0; i-- {
		f := spine[i]
		if f.fromLeft {
			merged = &tnode[T]{bucket: f.n.bucket, prio: f.n.prio, left: f.n.left, right: merged}
		} else {
			merged = &tnode[T]{bucket: f.n.bucket, prio: f.n.prio, left: merged, right: f.n.right}
		}
	}
	return merged
}

// sameStructure compares two treaps node by node. Legal only because shape
// is canonical; shared subtrees compare by pointer without descending.
func (n *tnode[T]) sameStructure(other *tnode[T]) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.prio != other.prio || !n.bucket.Equal(other.bucket) {
		return false
	}
	return n.left.sameStructure(other.left) && n.right.sameStructure(other.right)
}

// --- Traversal -----------------------------------------------------------------

type treapIterator[T fset.Hashable[T]] struct {
	stack []*tnode[T]
	elems []T
	at    int
}

func newTreapIterator[T fset.Hashable[T]](root *tnode[T]) *treapIterator[T] {
	it := &treapIterator[T]{}
	it.pushLeftSpine(root)
	return it
}

func (it *treapIterator[T]) pushLeftSpine(n *tnode[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *treapIterator[T]) Next() (T, bool) {
	if it.at < len(it.elems) {
		x := it.elems[it.at]
		it.at++
		return x, true
	}
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)
	it.elems = n.bucket.Elements()
	it.at = 1
	return it.elems[0], true
}

// each visits every node with its depth, iteratively (diagnostics).
func (n *tnode[T]) each(visit func(n *tnode[T], depth int)) {
	type frame struct {
		n     *tnode[T]
		depth int
	}
	if n == nil {
		return
	}
	stack := []frame{{n, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(f.n, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
}
