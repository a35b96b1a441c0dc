package bucket

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fset"
	"github.com/npillmayer/fset/persistent/arr"
)

// Bucket holds all elements sharing one derived hash value. It always holds
// at least one element: `first`. Colliding elements go into `rest`, which
// stays empty in the common one-element case. All elements of a bucket are
// pairwise distinct by equality.
//
// Buckets are immutable; operations return new incarnations, or the
// receiver itself for no-ops.
type Bucket[T fset.Hashable[T]] struct {
	hash  int32
	first T
	rest  arr.Store[T]
}

// Of builds a bucket holding a single element under the given hash.
func Of[T fset.Hashable[T]](hash int32, elem T) Bucket[T] {
	return Bucket[T]{hash: hash, first: elem}
}

// Hash returns the derived hash value all elements of this bucket share.
func (b Bucket[T]) Hash() int32 {
	return b.hash
}

// Size returns the number of elements, ≥ 1.
func (b Bucket[T]) Size() int {
	return 1 + b.rest.Size()
}

// Contains checks membership by element equality.
func (b Bucket[T]) Contains(elem T) bool {
	_, ok := b.Get(elem)
	return ok
}

// Get returns the stored element equal to elem, if any.
func (b Bucket[T]) Get(elem T) (T, bool) {
	if b.first.Equal(elem) {
		return b.first, true
	}
	return b.rest.Find(elem.Equal)
}

// With returns a bucket additionally holding elem. If an equal element is
// already present the receiver is returned unchanged and added is false.
func (b Bucket[T]) With(elem T) (Bucket[T], bool) {
	if b.Contains(elem) {
		return b, false
	}
	tracer().Debugf("bucket %d grows collision list: +%v", b.hash, elem)
	return Bucket[T]{hash: b.hash, first: b.first, rest: b.rest.WithAppended(elem)}, true
}

// Without returns a bucket without the element equal to elem. removed tells
// whether anything changed; empty signals that the last element was removed
// and the parent node must be excised — the returned bucket is then
// meaningless.
func (b Bucket[T]) Without(elem T) (out Bucket[T], removed bool, empty bool) {
	if b.first.Equal(elem) {
		if b.rest.IsEmpty() {
			return Bucket[T]{}, true, true
		}
		// promote the head of the collision list
		return Bucket[T]{hash: b.hash, first: b.rest.First(), rest: b.rest.WithoutAt(0)}, true, false
	}
	rest, ok := b.rest.WithoutFirst(elem.Equal)
	if !ok {
		return b, false, false
	}
	return Bucket[T]{hash: b.hash, first: b.first, rest: rest}, true, false
}

// WithReplaced substitutes the stored element equal to elem with elem itself,
// leaving membership unchanged. ok is false — and the receiver returned
// unchanged — if no equal element is present.
func (b Bucket[T]) WithReplaced(elem T) (Bucket[T], bool) {
	if b.first.Equal(elem) {
		return Bucket[T]{hash: b.hash, first: elem, rest: b.rest}, true
	}
	rest, ok := b.rest.WithReplacedFirst(elem, elem.Equal)
	if !ok {
		return b, false
	}
	return Bucket[T]{hash: b.hash, first: b.first, rest: rest}, true
}

// Each calls visit for every element, stopping early if visit returns false.
func (b Bucket[T]) Each(visit func(T) bool) {
	if !visit(b.first) {
		return
	}
	b.rest.Each(visit)
}

// Elements returns all elements of the bucket as a fresh slice.
func (b Bucket[T]) Elements() []T {
	out := make([]T, 0, b.Size())
	b.Each(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// Equal implements bucket equality: same hash value and the same elements,
// regardless of collision-list order.
func (b Bucket[T]) Equal(other Bucket[T]) bool {
	if b.hash != other.hash || b.Size() != other.Size() {
		return false
	}
	eq := true
	b.Each(func(x T) bool {
		if !other.Contains(x) {
			eq = false
		}
		return eq
	})
	return eq
}

// HashCode is consistent with Equal: the bucket's hash value combined with a
// commutative sum over the element hash codes.
func (b Bucket[T]) HashCode() int32 {
	h := b.hash
	b.Each(func(x T) bool {
		h += x.HashCode()
		return true
	})
	return h
}

func (b Bucket[T]) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("{#%d:%v", b.hash, b.first))
	b.rest.Each(func(x T) bool {
		s.WriteString(fmt.Sprintf(",%v", x))
		return true
	})
	s.WriteByte('}')
	return s.String()
}
