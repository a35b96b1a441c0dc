package hashtree

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
)

// ChoiceTree is a persistent set over the same node structure as Tree, with
// “power of choices” placement: each element gets several candidate hashes
// from the family, and insertion commits to the one landing at the smallest
// depth. Reads try the candidates in slot order until one matches.
type ChoiceTree[T fset.Hashable[T]] struct {
	family hashes.Family
	root   *node[T]
	size   int
}

type props struct {
	choices int
}

// Option is a type to help initializing choice sets at creation time.
type Option struct {
	config func(props) props
}

// Choices is an option to set the number of candidate hashes per element.
// Legal values are 2, 4, 8 and 14; the default is 2.
//
// Use it like this:
//
//	s := hashtree.Choice[fset.Int](Choices(4))
//
func Choices(n int) Option {
	return Option{config: func(p props) props {
		p.choices = n
		return p
	}}
}

// Choice constructs an empty two-choice tree set.
func Choice[T fset.Hashable[T]](opts ...Option) ChoiceTree[T] {
	p := props{choices: 2}
	for _, option := range opts {
		p = option.config(p)
	}
	assertThat(p.choices >= 2, "choice placement needs at least 2 hashes, got %d", p.choices)
	return ChoiceTree[T]{family: hashes.NewFamily(p.choices)}
}

// --- API ---------------------------------------------------------------------

// Size returns the number of distinct elements. O(1).
func (t ChoiceTree[T]) Size() int {
	return t.size
}

// IsEmpty is true iff the set holds no elements.
func (t ChoiceTree[T]) IsEmpty() bool {
	return t.root == nil
}

// Contains checks membership of an element, by equality.
func (t ChoiceTree[T]) Contains(elem T) bool {
	_, ok := t.Lookup(elem)
	return ok
}

// Lookup returns the stored element equal to elem, if any. The element may
// live under any of its candidate hashes, so each is tried in slot order
// until one bucket holds a match.
func (t ChoiceTree[T]) Lookup(elem T) (T, bool) {
	code := elem.HashCode()
	for i := 0; i < t.family.Size(); i++ {
		if n := t.root.find(t.family.Hash(i, code)); n != nil {
			if x, ok := n.bucket.Get(elem); ok {
				return x, true
			}
		}
	}
	var none T
	return none, false
}

// With returns a copy of the set with elem inserted under whichever
// candidate hash yields the shallowest placement; ties prefer the
// lowest-index hash, keeping placement deterministic. Inserting an element
// already present under any candidate is a no-op.
func (t ChoiceTree[T]) With(elem T) ChoiceTree[T] {
	if t.Contains(elem) {
		return t
	}
	code := elem.HashCode()
	best, bestDepth := t.family.Hash(0, code), t.root.insertionDepth(t.family.Hash(0, code))
	for i := 1; i < t.family.Size(); i++ {
		h := t.family.Hash(i, code)
		if d := t.root.insertionDepth(h); d < bestDepth {
			best, bestDepth = h, d
		}
	}
	tracer().Debugf("choice: placing %v under hash %d at depth %d", elem, best, bestDepth)
	root, added := t.root.insert(best, elem)
	assertThat(added, "element %v reported present during placement but absent before", elem)
	return ChoiceTree[T]{family: t.family, root: root, size: t.size + 1}
}

// WithAll inserts all given elements.
func (t ChoiceTree[T]) WithAll(elems ...T) ChoiceTree[T] {
	for _, x := range elems {
		t = t.With(x)
	}
	return t
}

// Without returns a copy of the set with elem removed. Candidate hashes are
// tried in slot order; a bucket hit under the wrong hash cannot remove
// anything, since bucket removal checks full equality.
func (t ChoiceTree[T]) Without(elem T) ChoiceTree[T] {
	code := elem.HashCode()
	for i := 0; i < t.family.Size(); i++ {
		if root, removed := t.root.remove(t.family.Hash(i, code), elem); removed {
			return ChoiceTree[T]{family: t.family, root: root, size: t.size - 1}
		}
	}
	return t
}

// WithoutAll removes all given elements.
func (t ChoiceTree[T]) WithoutAll(elems ...T) ChoiceTree[T] {
	for _, x := range elems {
		t = t.Without(x)
	}
	return t
}

// WithUpdated replaces the stored element equal to elem, trying each
// candidate hash in slot order; an identity no-op if the element is absent.
func (t ChoiceTree[T]) WithUpdated(elem T) ChoiceTree[T] {
	code := elem.HashCode()
	for i := 0; i < t.family.Size(); i++ {
		if root, updated := t.root.update(t.family.Hash(i, code), elem); updated {
			return ChoiceTree[T]{family: t.family, root: root, size: t.size}
		}
	}
	return t
}

// Iterator starts an in-order traversal over all elements.
func (t ChoiceTree[T]) Iterator() fset.Iterator[T] {
	return newTreeIterator(t.root)
}

// Equals implements set equality. Placement depends on insertion order, so
// no canonical enumeration exists — this is a full bidirectional membership
// comparison.
func (t ChoiceTree[T]) Equals(other ChoiceTree[T]) bool {
	return fset.Equal[T](t, other)
}

// HashCode returns a hash code consistent with Equals, commutative over the
// stored elements.
func (t ChoiceTree[T]) HashCode() int32 {
	return fset.HashCode[T](t)
}

var _ fset.Set[fset.Int] = ChoiceTree[fset.Int]{}
