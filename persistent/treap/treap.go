package treap

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
)

// Treap is a persistent set over a hash-keyed treap. The zero value is an
// empty, usable set. Mutating operations return new incarnations; the
// receiver is never changed.
type Treap[T fset.Hashable[T]] struct {
	family hashes.Family
	root   *tnode[T]
	size   int
}

// Immutable constructs an empty treap set.
func Immutable[T fset.Hashable[T]]() Treap[T] {
	return Treap[T]{family: hashes.NewFamily(1)}
}

func (t Treap[T]) fam() hashes.Family {
	if t.family.Size() == 0 { // zero-value treap
		return hashes.NewFamily(1)
	}
	return t.family
}

func (t Treap[T]) hashOf(elem T) int32 {
	return t.fam().Hash(0, elem.HashCode())
}

// --- API ---------------------------------------------------------------------

// Size returns the number of distinct elements. O(1).
func (t Treap[T]) Size() int {
	return t.size
}

// IsEmpty is true iff the set holds no elements.
func (t Treap[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains checks membership of an element, by equality.
func (t Treap[T]) Contains(elem T) bool {
	_, ok := t.Lookup(elem)
	return ok
}

// Lookup returns the stored element equal to elem, if any.
func (t Treap[T]) Lookup(elem T) (T, bool) {
	if n := t.root.find(t.hashOf(elem)); n != nil {
		return n.bucket.Get(elem)
	}
	var none T
	return none, false
}

// LookupHash returns all elements whose primitive hash code is `code`; the
// collision bucket for the derived hash. The slice is a fresh copy.
func (t Treap[T]) LookupHash(code int32) []T {
	if n := t.root.find(t.fam().Hash(0, code)); n != nil {
		return n.bucket.Elements()
	}
	return nil
}

// With returns a copy of the set with elem inserted; a no-op returning the
// receiver if an equal element is present. The insertion path is re-heapified
// on the way back up, one rotation per level at most.
func (t Treap[T]) With(elem T) Treap[T] {
	hash := t.hashOf(elem)
	root, added := t.root.insert(hash, elem)
	if !added {
		return t
	}
	tracer().Debugf("treap: inserted %v under hash %d, prio %d", elem, hash, hashes.Priority(hash))
	return Treap[T]{family: t.fam(), root: root, size: t.size + 1}
}

// WithAll inserts all given elements.
func (t Treap[T]) WithAll(elems ...T) Treap[T] {
	for _, x := range elems {
		t = t.With(x)
	}
	return t
}

// Without returns a copy of the set with elem removed; a no-op returning the
// receiver if absent. An emptied node is excised by merging its subtrees
// under treap discipline (higher priority rotates up).
func (t Treap[T]) Without(elem T) Treap[T] {
	root, removed := t.root.remove(t.hashOf(elem), elem)
	if !removed {
		return t
	}
	return Treap[T]{family: t.fam(), root: root, size: t.size - 1}
}

// WithoutAll removes all given elements.
func (t Treap[T]) WithoutAll(elems ...T) Treap[T] {
	for _, x := range elems {
		t = t.Without(x)
	}
	return t
}

// WithUpdated replaces the stored element equal to elem without changing
// membership; an identity no-op if the element is absent.
func (t Treap[T]) WithUpdated(elem T) Treap[T] {
	root, updated := t.root.update(t.hashOf(elem), elem)
	if !updated {
		return t
	}
	return Treap[T]{family: t.fam(), root: root, size: t.size}
}

// Iterator starts an in-order traversal over all elements.
func (t Treap[T]) Iterator() fset.Iterator[T] {
	return newTreapIterator(t.root)
}

// Equals implements set equality against another treap. Shape is a
// deterministic function of the hashes present, so two equal treaps have
// identical structure and a recursive structural comparison suffices — no
// linearization needed. Shared subtrees short-circuit by pointer.
func (t Treap[T]) Equals(other Treap[T]) bool {
	if t.size != other.size {
		return false
	}
	return t.root.sameStructure(other.root)
}

// HashCode returns a hash code consistent with Equals, commutative over the
// stored elements.
func (t Treap[T]) HashCode() int32 {
	return fset.HashCode[T](t)
}

var _ fset.Set[fset.Int] = Treap[fset.Int]{}
