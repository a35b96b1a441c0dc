package hamt

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
)

// Hamt is a persistent set over a hash-array-mapped trie. The zero value is
// an empty, usable set. Mutating operations return new incarnations; the
// receiver is never changed.
type Hamt[T fset.Hashable[T]] struct {
	family hashes.Family
	root   hnode[T]
	size   int
}

// Immutable constructs an empty HAMT set.
func Immutable[T fset.Hashable[T]]() Hamt[T] {
	return Hamt[T]{family: hashes.NewFamily(1)}
}

func (h Hamt[T]) fam() hashes.Family {
	if h.family.Size() == 0 { // zero-value set
		return hashes.NewFamily(1)
	}
	return h.family
}

func (h Hamt[T]) hashOf(elem T) int32 {
	return h.fam().Hash(0, elem.HashCode())
}

// --- API ---------------------------------------------------------------------

// Size returns the number of distinct elements. O(1).
func (h Hamt[T]) Size() int {
	return h.size
}

// IsEmpty is true iff the set holds no elements.
func (h Hamt[T]) IsEmpty() bool {
	return h.root == nil
}

// Contains checks membership of an element, by equality.
func (h Hamt[T]) Contains(elem T) bool {
	_, ok := h.Lookup(elem)
	return ok
}

// Lookup returns the stored element equal to elem, if any. Leaves are
// confirmed by full equality — several distinct elements may share every
// level's chunk, or even the full hash.
func (h Hamt[T]) Lookup(elem T) (T, bool) {
	if h.root == nil {
		var none T
		return none, false
	}
	return h.root.lookup(elem, h.hashOf(elem), 0)
}

// With returns a copy of the set with elem inserted. Inserting an element
// already present (by equality) returns the receiver unchanged.
func (h Hamt[T]) With(elem T) Hamt[T] {
	hash := h.hashOf(elem)
	if h.root == nil {
		return Hamt[T]{family: h.fam(), root: &leafOne[T]{hash: hash, elem: elem}, size: 1}
	}
	root, added := h.root.insert(elem, hash, 0)
	if !added {
		return h
	}
	tracer().Debugf("hamt: inserted %v under hash %d", elem, hash)
	return Hamt[T]{family: h.fam(), root: root, size: h.size + 1}
}

// WithAll inserts all given elements.
func (h Hamt[T]) WithAll(elems ...T) Hamt[T] {
	for _, x := range elems {
		h = h.With(x)
	}
	return h
}

// Without returns a copy of the set with elem removed; a no-op returning the
// receiver if absent.
func (h Hamt[T]) Without(elem T) Hamt[T] {
	if h.root == nil {
		return h
	}
	root, removed := h.root.remove(elem, h.hashOf(elem), 0)
	if !removed {
		return h
	}
	return Hamt[T]{family: h.fam(), root: root, size: h.size - 1}
}

// WithoutAll removes all given elements.
func (h Hamt[T]) WithoutAll(elems ...T) Hamt[T] {
	for _, x := range elems {
		h = h.Without(x)
	}
	return h
}

// WithUpdated replaces the stored element equal to elem without changing
// membership; an identity no-op if the element is absent.
func (h Hamt[T]) WithUpdated(elem T) Hamt[T] {
	if h.root == nil {
		return h
	}
	root, updated := h.root.update(elem, h.hashOf(elem), 0)
	if !updated {
		return h
	}
	return Hamt[T]{family: h.fam(), root: root, size: h.size}
}

// Iterator starts a traversal over all elements, in canonical slot order.
func (h Hamt[T]) Iterator() fset.Iterator[T] {
	return newHamtIterator(h.root)
}

// Equals implements set equality against another HAMT. Both tries are
// enumerated as their canonical sequence of (hash, element-set) leaves and
// compared pairwise. Shapes converge for equal sets, but pointers don't, so
// a root comparison is only a shortcut for shared incarnations.
func (h Hamt[T]) Equals(other Hamt[T]) bool {
	if h.size != other.size {
		return false
	}
	if h.root == other.root {
		return true
	}
	a, b := newLeafIterator(h.root), newLeafIterator(other.root)
	for {
		la, oka := a.next()
		lb, okb := b.next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if !sameLeaf(la, lb) {
			return false
		}
	}
}

// HashCode returns a hash code consistent with Equals, commutative over the
// stored elements.
func (h Hamt[T]) HashCode() int32 {
	return fset.HashCode[T](h)
}

// sameLeaf compares two leaves: same hash, same elements, order in a
// collision leaf notwithstanding.
func sameLeaf[T fset.Hashable[T]](a, b hnode[T]) bool {
	ha, ea := leafElements(a)
	hb, eb := leafElements(b)
	if ha != hb || len(ea) != len(eb) {
		return false
	}
outer:
	for _, x := range ea {
		for _, y := range eb {
			if x.Equal(y) {
				continue outer
			}
		}
		return false
	}
	return true
}

var _ fset.Set[fset.Int] = Hamt[fset.Int]{}
