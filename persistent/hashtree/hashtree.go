package hashtree

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
)

// Tree is a persistent set over an unbalanced binary search tree keyed by
// hash. The zero value is an empty, usable tree:
//
//	s := hashtree.Tree[fset.Int]{}.With(7)
//
// Mutating operations return new incarnations; the receiver is never
// changed.
type Tree[T fset.Hashable[T]] struct {
	family hashes.Family
	root   *node[T]
	size   int
}

// Immutable constructs an empty tree set.
func Immutable[T fset.Hashable[T]]() Tree[T] {
	return Tree[T]{family: hashes.NewFamily(1)}
}

func (t Tree[T]) fam() hashes.Family {
	if t.family.Size() == 0 { // zero-value tree
		return hashes.NewFamily(1)
	}
	return t.family
}

func (t Tree[T]) hashOf(elem T) int32 {
	return t.fam().Hash(0, elem.HashCode())
}

// --- API ---------------------------------------------------------------------

// Size returns the number of distinct elements. O(1).
func (t Tree[T]) Size() int {
	return t.size
}

// IsEmpty is true iff the set holds no elements.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains checks membership of an element, by equality.
func (t Tree[T]) Contains(elem T) bool {
	_, ok := t.Lookup(elem)
	return ok
}

// Lookup returns the stored element equal to elem, if any. Distinct elements
// may share a hash, so the bucket found by descent is filtered by full
// equality.
func (t Tree[T]) Lookup(elem T) (T, bool) {
	if n := t.root.find(t.hashOf(elem)); n != nil {
		return n.bucket.Get(elem)
	}
	var none T
	return none, false
}

// LookupHash returns all elements whose primitive hash code is `code` —
// i.e. the collision bucket for the hash derived from code. The slice is a
// fresh copy and may be empty.
func (t Tree[T]) LookupHash(code int32) []T {
	if n := t.root.find(t.fam().Hash(0, code)); n != nil {
		return n.bucket.Elements()
	}
	return nil
}

// With returns a copy of the set with elem inserted. Inserting an element
// already present (by equality) returns the receiver unchanged.
func (t Tree[T]) With(elem T) Tree[T] {
	hash := t.hashOf(elem)
	root, added := t.root.insert(hash, elem)
	if !added {
		return t
	}
	tracer().Debugf("hashtree: inserted %v under hash %d", elem, hash)
	return Tree[T]{family: t.fam(), root: root, size: t.size + 1}
}

// WithAll inserts all given elements.
func (t Tree[T]) WithAll(elems ...T) Tree[T] {
	for _, x := range elems {
		t = t.With(x)
	}
	return t
}

// Without returns a copy of the set with elem removed. Removing an absent
// element returns the receiver unchanged.
func (t Tree[T]) Without(elem T) Tree[T] {
	root, removed := t.root.remove(t.hashOf(elem), elem)
	if !removed {
		return t
	}
	return Tree[T]{family: t.fam(), root: root, size: t.size - 1}
}

// WithoutAll removes all given elements.
func (t Tree[T]) WithoutAll(elems ...T) Tree[T] {
	for _, x := range elems {
		t = t.Without(x)
	}
	return t
}

// WithUpdated replaces the stored element equal to elem with elem itself,
// without changing membership — the “overwrite value for existing key”
// operation when elements are key-value pairs. If no equal element exists,
// the receiver is returned unchanged (an identity no-op).
func (t Tree[T]) WithUpdated(elem T) Tree[T] {
	root, updated := t.root.update(t.hashOf(elem), elem)
	if !updated {
		return t
	}
	return Tree[T]{family: t.fam(), root: root, size: t.size}
}

// Iterator starts an in-order traversal over all elements.
func (t Tree[T]) Iterator() fset.Iterator[T] {
	return newTreeIterator(t.root)
}

// Equals implements set equality against another hash tree. Removal
// rotations make the shape insertion-order dependent, so equality must
// compare the canonical in-order sequence of (hash, element-set) buckets —
// never the shapes themselves.
func (t Tree[T]) Equals(other Tree[T]) bool {
	if t.size != other.size {
		return false
	}
	if t.root == other.root { // shared root, trivially equal
		return true
	}
	a, b := newBucketIterator(t.root), newBucketIterator(other.root)
	for {
		ba, oka := a.next()
		bb, okb := b.next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if !ba.Equal(bb) {
			return false
		}
	}
}

// HashCode returns a hash code consistent with Equals, commutative over the
// stored elements.
func (t Tree[T]) HashCode() int32 {
	return fset.HashCode[T](t)
}

var _ fset.Set[fset.Int] = Tree[fset.Int]{}
