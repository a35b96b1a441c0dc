package hashtree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding clones of
  nodes.

- A nil *node is the canonical empty tree; methods on node handle nil
  receivers, so the wrapper never special-cases emptiness.

- Removal joins the two subtrees of an emptied node with a fixed policy
  (left child up). The join walks the rightmost spine iteratively with a
  manual stack: a recursive join can exhaust the call stack on degenerate
  hash chains.
*/

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/persistent/bucket"
)

// node is a BST node: left holds strictly smaller hashes, right strictly
// larger; all elements with this node's hash live in its bucket.
type node[T fset.Hashable[T]] struct {
	bucket      bucket.Bucket[T]
	left, right *node[T]
}

// find descends to the node holding `hash`, iteratively.
func (n *node[T]) find(hash int32) *node[T] {
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

// insert returns the root of a tree with elem added under `hash`, copying
// the path from n down to the touched node. added is false — and n returned
// as-is — if an equal element is already present.
func (n *node[T]) insert(hash int32, elem T) (*node[T], bool) {
	if n == nil {
		return &node[T]{bucket: bucket.Of(hash, elem)}, true
	}
	switch h := n.bucket.Hash(); {
	case hash == h:
		b, added := n.bucket.With(elem)
		if !added {
			return n, false
		}
		return &node[T]{bucket: b, left: n.left, right: n.right}, true
	case hash < h:
		cow, added := n.left.insert(hash, elem)
		if !added {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: cow, right: n.right}, true
	default:
		cow, added := n.right.insert(hash, elem)
		if !added {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: n.left, right: cow}, true
	}
}

// remove returns the root of a tree with elem removed from the bucket at
// `hash`. A node whose bucket runs empty is excised by joining its subtrees.
func (n *node[T]) remove(hash int32, elem T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	switch h := n.bucket.Hash(); {
	case hash < h:
		cow, removed := n.left.remove(hash, elem)
		if !removed {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: cow, right: n.right}, true
	case hash > h:
		cow, removed := n.right.remove(hash, elem)
		if !removed {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: n.left, right: cow}, true
	default:
		b, removed, empty := n.bucket.Without(elem)
		if !removed {
			return n, false
		}
		if !empty {
			return &node[T]{bucket: b, left: n.left, right: n.right}, true
		}
		return join(n.left, n.right), true
	}
}

// update replaces the element equal to elem in the bucket at `hash`, copying
// the path. updated is false — and n returned as-is — if the element is
// absent.
func (n *node[T]) update(hash int32, elem T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	switch h := n.bucket.Hash(); {
	case hash < h:
		cow, updated := n.left.update(hash, elem)
		if !updated {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: cow, right: n.right}, true
	case hash > h:
		cow, updated := n.right.update(hash, elem)
		if !updated {
			return n, false
		}
		return &node[T]{bucket: n.bucket, left: n.left, right: cow}, true
	default:
		b, ok := n.bucket.WithReplaced(elem)
		if !ok {
			return n, false
		}
		return &node[T]{bucket: b, left: n.left, right: n.right}, true
	}
}

// join merges two subtrees; every hash in left must be smaller than every
// hash in right. Policy (fixed, not a coin flip): the left child is rotated
// up, i.e. right ends up hanging off the rightmost spine of left. The spine
// is collected into an explicit stack and re-built bottom-up.
func join[T fset.Hashable[T]](left, right *node[T]) *node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	var spine []*node[T]
	for n := left; n != nil; n = n.right {
		spine = append(spine, n)
	}
	merged := right
	for i := len(spine) - 1; i >= 0; i-- {
		n := spine[i]
		merged = &node[T]{bucket: n.bucket, left: n.left, right: merged}
	}
	return merged
}

// insertionDepth probes where `hash` would land: the depth of its existing
// bucket, or the depth of the empty slot a fresh node would occupy. This is
// the cost heuristic of the choice variant; it does not modify anything.
func (n *node[T]) insertionDepth(hash int32) int {
	depth := 0
	for n != nil {
		switch h := n.bucket.Hash(); {
		case hash == h:
			return depth
		case hash < h:
			n = n.left
		default:
			n = n.right
		}
		depth++
	}
	return depth
}

// --- Traversal -----------------------------------------------------------------

// treeIterator walks the tree in-order with an explicit node stack, handing
// out bucket elements one at a time.
type treeIterator[T fset.Hashable[T]] struct {
	stack []*node[T]
	elems []T
	at    int
}

func newTreeIterator[T fset.Hashable[T]](root *node[T]) *treeIterator[T] {
	it := &treeIterator[T]{}
	it.pushLeftSpine(root)
	return it
}

func (it *treeIterator[T]) pushLeftSpine(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *treeIterator[T]) Next() (T, bool) {
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

// bucketIterator yields whole buckets in-order; the canonical enumeration
// behind Equals.
type bucketIterator[T fset.Hashable[T]] struct {
	stack []*node[T]
}

func newBucketIterator[T fset.Hashable[T]](root *node[T]) *bucketIterator[T] {
	it := &bucketIterator[T]{}
	it.pushLeftSpine(root)
	return it
}

func (it *bucketIterator[T]) pushLeftSpine(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *bucketIterator[T]) next() (bucket.Bucket[T], bool) {
	if len(it.stack) == 0 {
		return bucket.Bucket[T]{}, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeftSpine(n.right)
	return n.bucket, true
}

// each visits every node with its depth, iteratively (diagnostics).
func (n *node[T]) each(visit func(n *node[T], depth int)) {
	type frame struct {
		n     *node[T]
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
