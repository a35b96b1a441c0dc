package fset

// Hashable is the contract for element types stored in the persistent sets
// of this module. Equal must be a deep equality relation, and HashCode must
// be stable over the lifetime of an element and agree with Equal:
// equal elements produce equal hash codes.
//
// HashCode is a primitive code: the set variants post-process it through a
// hash family (package hashes) before using it as a key.
type Hashable[T any] interface {
	Equal(other T) bool
	HashCode() int32
}

// Set is the read-only contract implemented by every set variant in
// persistent/… . Mutating operations (With, Without, WithUpdated, …) are
// methods on the concrete types, since each returns a new incarnation of
// its own type.
type Set[T Hashable[T]] interface {
	// Size returns the number of distinct elements.
	Size() int
	// IsEmpty is true iff the set holds no elements.
	IsEmpty() bool
	// Contains checks membership of an element, by equality.
	Contains(elem T) bool
	// Lookup returns the stored element equal to elem, if any.
	Lookup(elem T) (T, bool)
	// Iterator starts a fresh traversal over all elements. No ordering is
	// guaranteed across variants.
	Iterator() Iterator[T]
}

// Iterator is a lazy, finite, one-shot sequence of elements. Clients restart
// a traversal by calling Set.Iterator() again.
type Iterator[T any] interface {
	// Next returns the next element, or ok=false after the last one.
	Next() (T, bool)
}

// --- Generic helpers over the Set contract ---------------------------------

// Equal implements set equality: same elements by Hashable.Equal, regardless
// of variant, internal shape or insertion history. It checks sizes first,
// then bidirectional containment.
func Equal[T Hashable[T]](a, b Set[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	if !containsAllOf(a, b) {
		return false
	}
	return containsAllOf(b, a)
}

func containsAllOf[T Hashable[T]](set, elems Set[T]) bool {
	it := elems.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if !set.Contains(x) {
			tracer().Debugf("set equality: element %v missing", x)
			return false
		}
	}
	return true
}

// HashCode returns a hash code consistent with Equal: a commutative sum of
// the element hash codes, independent of iteration order and of the set's
// internal shape.
func HashCode[T Hashable[T]](s Set[T]) int32 {
	var h int32
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		h += x.HashCode()
	}
	return h
}

// ContainsAll checks membership of every given element.
func ContainsAll[T Hashable[T]](s Set[T], elems ...T) bool {
	for _, x := range elems {
		if !s.Contains(x) {
			return false
		}
	}
	return true
}

// Elements drains a fresh iterator into a slice, in traversal order.
func Elements[T Hashable[T]](s Set[T]) []T {
	out := make([]T, 0, s.Size())
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		out = append(out, x)
	}
	return out
}
