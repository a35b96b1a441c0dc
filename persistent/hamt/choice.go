package hamt

import (
	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/hashes"
)

// ChoiceHamt is a persistent set over the same trie structure as Hamt, with
// “power of choices” placement: each element gets several candidate hashes,
// and insertion commits to the placement with the lowest path cost — depth
// plus a penalty for crowding an existing leaf. Reads try the candidates in
// slot order until one matches.
type ChoiceHamt[T fset.Hashable[T]] struct {
	family hashes.Family
	root   hnode[T]
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
func Choices(n int) Option {
	return Option{config: func(p props) props {
		p.choices = n
		return p
	}}
}

// Choice constructs an empty two-choice HAMT set.
func Choice[T fset.Hashable[T]](opts ...Option) ChoiceHamt[T] {
	p := props{choices: 2}
	for _, option := range opts {
		p = option.config(p)
	}
	assertThat(p.choices >= 2, "choice placement needs at least 2 hashes, got %d", p.choices)
	return ChoiceHamt[T]{family: hashes.NewFamily(p.choices)}
}

// --- API ---------------------------------------------------------------------

// Size returns the number of distinct elements. O(1).
func (h ChoiceHamt[T]) Size() int {
	return h.size
}

// IsEmpty is true iff the set holds no elements.
func (h ChoiceHamt[T]) IsEmpty() bool {
	return h.root == nil
}

// Contains checks membership of an element, by equality.
func (h ChoiceHamt[T]) Contains(elem T) bool {
	_, ok := h.Lookup(elem)
	return ok
}

// Lookup returns the stored element equal to elem, if any, trying each
// candidate hash in slot order.
func (h ChoiceHamt[T]) Lookup(elem T) (T, bool) {
	code := elem.HashCode()
	if h.root != nil {
		for i := 0; i < h.family.Size(); i++ {
			if x, ok := h.root.lookup(elem, h.family.Hash(i, code), 0); ok {
				return x, true
			}
		}
	}
	var none T
	return none, false
}

// With returns a copy of the set with elem inserted under the cheapest
// candidate placement; ties prefer the lowest-index hash. Inserting an
// element already present under any candidate is a no-op.
func (h ChoiceHamt[T]) With(elem T) ChoiceHamt[T] {
	if h.Contains(elem) {
		return h
	}
	code := elem.HashCode()
	best := h.family.Hash(0, code)
	if h.root == nil {
		return ChoiceHamt[T]{family: h.family, root: &leafOne[T]{hash: best, elem: elem}, size: 1}
	}
	bestCost := h.root.cost(best, 0)
	for i := 1; i < h.family.Size(); i++ {
		hash := h.family.Hash(i, code)
		if c := h.root.cost(hash, 0); c < bestCost {
			best, bestCost = hash, c
		}
	}
	tracer().Debugf("hamt/choice: placing %v under hash %d at cost %d", elem, best, bestCost)
	root, added := h.root.insert(elem, best, 0)
	assertThat(added, "element %v reported present during placement but absent before", elem)
	return ChoiceHamt[T]{family: h.family, root: root, size: h.size + 1}
}

// WithAll inserts all given elements.
func (h ChoiceHamt[T]) WithAll(elems ...T) ChoiceHamt[T] {
	for _, x := range elems {
		h = h.With(x)
	}
	return h
}

// Without returns a copy of the set with elem removed. Candidate hashes are
// tried in slot order — first hash 0, then hash 1, and so on — until a
// removal succeeds; leaf removal checks full equality, so a candidate bucket
// that merely collides cannot lose an element.
func (h ChoiceHamt[T]) Without(elem T) ChoiceHamt[T] {
	if h.root == nil {
		return h
	}
	code := elem.HashCode()
	for i := 0; i < h.family.Size(); i++ {
		if root, removed := h.root.remove(elem, h.family.Hash(i, code), 0); removed {
			return ChoiceHamt[T]{family: h.family, root: root, size: h.size - 1}
		}
	}
	return h
}

// WithoutAll removes all given elements.
func (h ChoiceHamt[T]) WithoutAll(elems ...T) ChoiceHamt[T] {
	for _, x := range elems {
		h = h.Without(x)
	}
	return h
}

// WithUpdated replaces the stored element equal to elem, trying each
// candidate hash in slot order; an identity no-op if the element is absent.
func (h ChoiceHamt[T]) WithUpdated(elem T) ChoiceHamt[T] {
	if h.root == nil {
		return h
	}
	code := elem.HashCode()
	for i := 0; i < h.family.Size(); i++ {
		if root, updated := h.root.update(elem, h.family.Hash(i, code), 0); updated {
			return ChoiceHamt[T]{family: h.family, root: root, size: h.size}
		}
	}
	return h
}

// Iterator starts a traversal over all elements.
func (h ChoiceHamt[T]) Iterator() fset.Iterator[T] {
	return newHamtIterator(h.root)
}

// Equals implements set equality. Placement depends on insertion order, so
// shape is not canonical here — this is a full bidirectional membership
// comparison.
func (h ChoiceHamt[T]) Equals(other ChoiceHamt[T]) bool {
	return fset.Equal[T](h, other)
}

// HashCode returns a hash code consistent with Equals, commutative over the
// stored elements.
func (h ChoiceHamt[T]) HashCode() int32 {
	return fset.HashCode[T](h)
}

var _ fset.Set[fset.Int] = ChoiceHamt[fset.Int]{}
