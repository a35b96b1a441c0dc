package fset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sliceSet is a minimal Set implementation for exercising the generic
// helpers without pulling a persistent variant into this package.
type sliceSet[T Hashable[T]] struct {
	elems []T
}

func setOf[T Hashable[T]](elems ...T) sliceSet[T] {
	s := sliceSet[T]{}
	for _, x := range elems {
		if !s.Contains(x) {
			s.elems = append(s.elems, x)
		}
	}
	return s
}

func (s sliceSet[T]) Size() int     { return len(s.elems) }
func (s sliceSet[T]) IsEmpty() bool { return len(s.elems) == 0 }

func (s sliceSet[T]) Contains(elem T) bool {
	_, ok := s.Lookup(elem)
	return ok
}

func (s sliceSet[T]) Lookup(elem T) (T, bool) {
	for _, x := range s.elems {
		if x.Equal(elem) {
			return x, true
		}
	}
	var none T
	return none, false
}

func (s sliceSet[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{elems: s.elems}
}

type sliceIterator[T any] struct {
	elems []T
	at    int
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.at >= len(it.elems) {
		var none T
		return none, false
	}
	x := it.elems[it.at]
	it.at++
	return x, true
}

var _ Set[Int] = sliceSet[Int]{}

func TestEqualIgnoresOrder(t *testing.T) {
	a := setOf[Int](1, 2, 3)
	b := setOf[Int](3, 1, 2)
	assert.True(t, Equal[Int](a, b))
	assert.True(t, Equal[Int](b, a))
	assert.False(t, Equal[Int](a, setOf[Int](1, 2)))
	assert.False(t, Equal[Int](a, setOf[Int](1, 2, 4)))
	assert.True(t, Equal[Int](setOf[Int](), setOf[Int]()))
}

func TestHashCodeIsCommutative(t *testing.T) {
	a := setOf[Int](10, -4, 99)
	b := setOf[Int](99, 10, -4)
	assert.Equal(t, HashCode[Int](a), HashCode[Int](b))
	assert.Equal(t, int32(105), HashCode[Int](a))
	assert.Equal(t, int32(0), HashCode[Int](setOf[Int]()))
}

func TestContainsAllAndElements(t *testing.T) {
	s := setOf[Int](5, 6, 7)
	assert.True(t, ContainsAll[Int](s, 5, 7))
	assert.False(t, ContainsAll[Int](s, 5, 8))
	assert.ElementsMatch(t, []Int{5, 6, 7}, Elements[Int](s))
}

func TestPairKeyOnlyEquality(t *testing.T) {
	a := PairOf(Int(1), "one")
	b := PairOf(Int(1), "uno")
	c := PairOf(Int(2), "one")
	assert.True(t, a.Equal(b)) // values are deliberately ignored
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.Equal(t, "⟨1→one⟩", a.String())
}

func TestPairsActAsMapEntries(t *testing.T) {
	type P = Pair[Int, string]
	s := setOf[P](PairOf(Int(1), "one"), PairOf(Int(1), "uno"), PairOf(Int(2), "two"))
	assert.Equal(t, 2, s.Size()) // key-only equality collapses duplicates
	got, ok := s.Lookup(PairOf(Int(1), ""))
	assert.True(t, ok)
	assert.Equal(t, "one", got.Value) // first insertion wins
}

func TestIntAndStringHashCodes(t *testing.T) {
	assert.Equal(t, int32(42), Int(42).HashCode())
	assert.Equal(t, int32(-1), Int(-1).HashCode())
	assert.True(t, String("abc").Equal("abc"))
	assert.False(t, String("abc").Equal("abd"))
	// murmur3 is stable across runs, equal inputs hash equal
	assert.Equal(t, String("hello").HashCode(), String("hello").HashCode())
	assert.NotEqual(t, String("hello").HashCode(), String("world").HashCode())
}

func TestStatsAggregation(t *testing.T) {
	st := Stats{Variant: "test"}
	st.Observe(1, 1)
	st.Observe(2, 3)
	st.Observe(3, 1)
	assert.Equal(t, 3, st.Nodes)
	assert.Equal(t, 5, st.Elements)
	assert.Equal(t, 3, st.MaxDepth())
	assert.Equal(t, 3, st.MaxOccupancy())
	assert.InDelta(t, 2.0, st.MeanDepth(), 1e-9)
	assert.InDelta(t, 5.0/3.0, st.MeanOccupancy(), 1e-9)
	assert.Contains(t, st.String(), "5 elements in 3 nodes")
}

func TestStatsEmpty(t *testing.T) {
	st := Stats{Variant: "empty"}
	assert.Equal(t, 0, st.MaxDepth())
	assert.Equal(t, 0.0, st.MeanDepth())
	assert.Equal(t, 0.0, st.DepthStdDev())
	assert.Equal(t, 0, st.MaxOccupancy())
	assert.Equal(t, 0.0, st.MeanOccupancy())
}
