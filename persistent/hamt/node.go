package hamt

/*
Remarks:
--------

- The node kinds form a sealed hierarchy: leafOne, leafMany, sparse, full.
  The empty trie is a nil root in the wrapper; interior nodes never hold
  empty children.

- `shift` is the number of hash bits already consumed. Leaves store the full
  32-bit hash and are therefore level-independent, which is what makes the
  single-leaf collapse on removal legal.

- remove returns a nil node to signal "became empty"; the parent excises the
  child (sparse) or demotes itself (full).
*/

import (
	"math/bits"

	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/persistent/arr"
)

const (
	bitsPerLevel = 4 // empirically the fastest chunk size
	fanout       = 1 << bitsPerLevel
	levelMask    = fanout - 1
	fullBitmap   = uint16(1<<fanout - 1)
)

// slotAt extracts the chunk of `hash` selecting the child slot at a level.
func slotAt(hash int32, shift uint) uint32 {
	return (uint32(hash) >> shift) & levelMask
}

// sparseContains checks the occupancy bit for a logical slot.
func sparseContains(bitmap uint16, slot uint32) bool {
	return (bitmap>>slot)&1 != 0
}

// sparseLocation maps a logical slot to its index in the compressed child
// array: the number of occupied slots below it. The result is meaningful as
// an insertion point even when the slot itself is unoccupied.
func sparseLocation(bitmap uint16, slot uint32) int {
	return bits.OnesCount16(bitmap & (1<<slot - 1))
}

// hnode is a trie node. Implementations return new incarnations from every
// modifying call, or the receiver itself for no-ops.
type hnode[T fset.Hashable[T]] interface {
	insert(elem T, hash int32, shift uint) (hnode[T], bool)
	remove(elem T, hash int32, shift uint) (hnode[T], bool)
	update(elem T, hash int32, shift uint) (hnode[T], bool)
	lookup(elem T, hash int32, shift uint) (T, bool)
	cost(hash int32, shift uint) int
}

// --- One-element leaf ---------------------------------------------------------

type leafOne[T fset.Hashable[T]] struct {
	hash int32
	elem T
}

func (n *leafOne[T]) insert(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash == n.hash {
		if n.elem.Equal(elem) {
			return n, false
		}
		// full 32-bit collision
		return &leafMany[T]{hash: hash, elems: arr.Of(n.elem, elem)}, true
	}
	return upgrade[T](n, n.hash, shift).insert(elem, hash, shift)
}

func (n *leafOne[T]) remove(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash == n.hash && n.elem.Equal(elem) {
		return nil, true
	}
	return n, false
}

func (n *leafOne[T]) update(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash == n.hash && n.elem.Equal(elem) {
		return &leafOne[T]{hash: hash, elem: elem}, true
	}
	return n, false
}

func (n *leafOne[T]) lookup(elem T, hash int32, shift uint) (T, bool) {
	if hash == n.hash && n.elem.Equal(elem) {
		return n.elem, true
	}
	var none T
	return none, false
}

func (n *leafOne[T]) cost(hash int32, shift uint) int {
	if hash == n.hash {
		return 1 // joins this leaf's collision list
	}
	return 2 // forces an upgrade to at least one sparse level
}

// --- Collision leaf -----------------------------------------------------------

// leafMany holds ≥ 2 distinct elements sharing one full 32-bit hash.
type leafMany[T fset.Hashable[T]] struct {
	hash  int32
	elems arr.Store[T]
}

func (n *leafMany[T]) insert(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash == n.hash {
		if _, dup := n.elems.Find(elem.Equal); dup {
			return n, false
		}
		return &leafMany[T]{hash: hash, elems: n.elems.WithAppended(elem)}, true
	}
	return upgrade[T](n, n.hash, shift).insert(elem, hash, shift)
}

func (n *leafMany[T]) remove(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash != n.hash {
		return n, false
	}
	elems, ok := n.elems.WithoutFirst(elem.Equal)
	if !ok {
		return n, false
	}
	if elems.Size() == 1 { // collapse to the cheap representation
		return &leafOne[T]{hash: n.hash, elem: elems.First()}, true
	}
	return &leafMany[T]{hash: n.hash, elems: elems}, true
}

func (n *leafMany[T]) update(elem T, hash int32, shift uint) (hnode[T], bool) {
	if hash != n.hash {
		return n, false
	}
	elems, ok := n.elems.WithReplacedFirst(elem, elem.Equal)
	if !ok {
		return n, false
	}
	return &leafMany[T]{hash: n.hash, elems: elems}, true
}

func (n *leafMany[T]) lookup(elem T, hash int32, shift uint) (T, bool) {
	if hash == n.hash {
		return n.elems.Find(elem.Equal)
	}
	var none T
	return none, false
}

func (n *leafMany[T]) cost(hash int32, shift uint) int {
	if hash == n.hash {
		return n.elems.Size() // join an already crowded bucket
	}
	return 2
}

// upgrade wraps an existing leaf into a sparse node keyed by the leaf's
// chunk at this level, so that a colliding-prefix element can be inserted
// one level deeper. Repeated upgrades happen implicitly through recursion
// while the two hashes keep agreeing chunk by chunk.
func upgrade[T fset.Hashable[T]](leaf hnode[T], leafHash int32, shift uint) *sparse[T] {
	assertThat(shift < 32, "hash bits exhausted while upgrading leaf (hash %d)", leafHash)
	return &sparse[T]{
		bitmap:   uint16(1) << slotAt(leafHash, shift),
		children: arr.Of(leaf),
	}
}

// --- Sparse interior node -------------------------------------------------------

// sparse stores only present children, compressed; bit i of the bitmap tells
// whether logical slot i is populated.
type sparse[T fset.Hashable[T]] struct {
	bitmap   uint16
	children arr.Store[hnode[T]]
}

func (n *sparse[T]) insert(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := slotAt(hash, shift)
	loc := sparseLocation(n.bitmap, slot)
	if !sparseContains(n.bitmap, slot) {
		bitmap := n.bitmap | uint16(1)<<slot
		children := n.children.WithInserted(&leafOne[T]{hash: hash, elem: elem}, loc)
		if bitmap == fullBitmap { // all slots populated, bitmap is redundant now
			return &full[T]{children: children}, true
		}
		return &sparse[T]{bitmap: bitmap, children: children}, true
	}
	child, added := n.children.At(loc).insert(elem, hash, shift+bitsPerLevel)
	if !added {
		return n, false
	}
	return &sparse[T]{bitmap: n.bitmap, children: n.children.WithReplacedAt(child, loc)}, true
}

func (n *sparse[T]) remove(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := slotAt(hash, shift)
	if !sparseContains(n.bitmap, slot) {
		return n, false
	}
	loc := sparseLocation(n.bitmap, slot)
	child, removed := n.children.At(loc).remove(elem, hash, shift+bitsPerLevel)
	if !removed {
		return n, false
	}
	bitmap, children := n.bitmap, n.children
	if child == nil { // excise the emptied child
		bitmap &^= uint16(1) << slot
		children = children.WithoutAt(loc)
		if bitmap == 0 {
			return nil, true
		}
	} else {
		children = children.WithReplacedAt(child, loc)
	}
	// canonical-structure normalization: a lone leaf needs no indirection
	if bits.OnesCount16(bitmap) == 1 {
		if leaf := children.First(); isLeaf(leaf) {
			return leaf, true
		}
	}
	return &sparse[T]{bitmap: bitmap, children: children}, true
}

func (n *sparse[T]) update(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := slotAt(hash, shift)
	if !sparseContains(n.bitmap, slot) {
		return n, false
	}
	loc := sparseLocation(n.bitmap, slot)
	child, updated := n.children.At(loc).update(elem, hash, shift+bitsPerLevel)
	if !updated {
		return n, false
	}
	return &sparse[T]{bitmap: n.bitmap, children: n.children.WithReplacedAt(child, loc)}, true
}

func (n *sparse[T]) lookup(elem T, hash int32, shift uint) (T, bool) {
	slot := slotAt(hash, shift)
	if !sparseContains(n.bitmap, slot) {
		var none T
		return none, false
	}
	return n.children.At(sparseLocation(n.bitmap, slot)).lookup(elem, hash, shift+bitsPerLevel)
}

func (n *sparse[T]) cost(hash int32, shift uint) int {
	slot := slotAt(hash, shift)
	if !sparseContains(n.bitmap, slot) {
		return 0 // free slot right here
	}
	return 1 + n.children.At(sparseLocation(n.bitmap, slot)).cost(hash, shift+bitsPerLevel)
}

func isLeaf[T fset.Hashable[T]](n hnode[T]) bool {
	switch n.(type) {
	case *leafOne[T], *leafMany[T]:
		return true
	}
	return false
}

// --- Full interior node -----------------------------------------------------------

// full has every slot populated; the slot index addresses the child array
// directly.
type full[T fset.Hashable[T]] struct {
	children arr.Store[hnode[T]] // size fanout, no gaps
}

func (n *full[T]) insert(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := int(slotAt(hash, shift))
	child, added := n.children.At(slot).insert(elem, hash, shift+bitsPerLevel)
	if !added {
		return n, false
	}
	return &full[T]{children: n.children.WithReplacedAt(child, slot)}, true
}

func (n *full[T]) remove(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := int(slotAt(hash, shift))
	child, removed := n.children.At(slot).remove(elem, hash, shift+bitsPerLevel)
	if !removed {
		return n, false
	}
	if child == nil { // demote to sparse
		return &sparse[T]{
			bitmap:   fullBitmap &^ (uint16(1) << slot),
			children: n.children.WithoutAt(slot),
		}, true
	}
	return &full[T]{children: n.children.WithReplacedAt(child, slot)}, true
}

func (n *full[T]) update(elem T, hash int32, shift uint) (hnode[T], bool) {
	slot := int(slotAt(hash, shift))
	child, updated := n.children.At(slot).update(elem, hash, shift+bitsPerLevel)
	if !updated {
		return n, false
	}
	return &full[T]{children: n.children.WithReplacedAt(child, slot)}, true
}

func (n *full[T]) lookup(elem T, hash int32, shift uint) (T, bool) {
	return n.children.At(int(slotAt(hash, shift))).lookup(elem, hash, shift+bitsPerLevel)
}

func (n *full[T]) cost(hash int32, shift uint) int {
	return 1 + n.children.At(int(slotAt(hash, shift))).cost(hash, shift+bitsPerLevel)
}

// --- Traversal -------------------------------------------------------------------

type walkFrame[T fset.Hashable[T]] struct {
	n     hnode[T]
	depth int
}

// eachLeaf visits every leaf with its depth, iteratively with an explicit
// stack, in canonical (slot) order.
func eachLeaf[T fset.Hashable[T]](root hnode[T], visit func(n hnode[T], depth int) bool) {
	if root == nil {
		return
	}
	stack := []walkFrame[T]{{root, 0}}
	push := func(children arr.Store[hnode[T]], depth int) {
		// reversed, so the explicit stack pops children in slot order
		for i := children.Size() - 1; i >= 0; i-- {
			stack = append(stack, walkFrame[T]{children.At(i), depth + 1})
		}
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := f.n.(type) {
		case *leafOne[T], *leafMany[T]:
			if !visit(f.n, f.depth) {
				return
			}
		case *sparse[T]:
			push(n.children, f.depth)
		case *full[T]:
			push(n.children, f.depth)
		default:
			assertThat(false, "unknown node kind %T", f.n)
		}
	}
}

// leafElements returns a leaf's hash and elements.
func leafElements[T fset.Hashable[T]](n hnode[T]) (int32, []T) {
	switch leaf := n.(type) {
	case *leafOne[T]:
		return leaf.hash, []T{leaf.elem}
	case *leafMany[T]:
		out := make([]T, 0, leaf.elems.Size())
		leaf.elems.Each(func(x T) bool {
			out = append(out, x)
			return true
		})
		return leaf.hash, out
	}
	assertThat(false, "node %T is not a leaf", n)
	return 0, nil
}
