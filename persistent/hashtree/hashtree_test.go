package hashtree

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/npillmayer/fset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestTreeEmpty(t *testing.T) {
	s := Immutable[fset.Int]()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Errorf("expected fresh tree to be empty, has size %d", s.Size())
	}
	// the zero value is usable, too
	z := Tree[fset.Int]{}.With(7)
	if z.Size() != 1 || !z.Contains(7) {
		t.Error("expected zero-value tree to accept an element")
	}
}

func TestTreeRoundTripMembership(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fset.hashtree")
	defer teardown()
	//
	input := []fset.Int{5, 3, 9, 3, 12, 5, 0, -7, 12}
	s := Immutable[fset.Int]().WithAll(input...)
	if s.Size() != 6 {
		t.Logf("tree =\n%s", s.DebugString())
		t.Errorf("expected 6 distinct elements, counted %d", s.Size())
	}
	for _, x := range input {
		got, ok := s.Lookup(x)
		if !ok || !got.Equal(x) {
			t.Errorf("expected lookup(%v) to return an equal element, got %v/%v", x, got, ok)
		}
	}
	if s.Contains(99) {
		t.Error("expected 99 to be absent")
	}
}

// m10 hashes into a deliberately tiny range so that collisions are the rule,
// not the exception.
type m10 int32

func (m m10) Equal(other m10) bool { return m == other }
func (m m10) HashCode() int32 { return int32(m) % 10 }

func TestTreeCollisionBuckets(t *testing.T) {
	s := Immutable[m10]()
	for v := m10(0); v < 30; v++ {
		s = s.With(v)
	}
	assert.Equal(t, 30, s.Size())
	for h := int32(0); h < 10; h++ {
		got := s.LookupHash(h)
		want := []m10{m10(h), m10(h + 10), m10(h + 20)}
		assert.ElementsMatchf(t, want, got, "bucket for hash %d", h)
	}
	// a bucket stays correct after removals
	s = s.Without(m10(13))
	assert.ElementsMatch(t, []m10{3, 23}, s.LookupHash(3))
}

func TestTreeRemoveAddInverse(t *testing.T) {
	s := Immutable[fset.Int]().WithAll(1, 2, 3, 4, 5)
	plus := s.With(3) // already present
	if !s.Equals(plus) || s.HashCode() != plus.HashCode() {
		t.Error("expected S+e to equal S for present e")
	}
	left := s.With(3).Without(3)
	right := s.Without(3)
	if !left.Equals(right) {
		t.Logf("left =\n%s\nright =\n%s", left.DebugString(), right.DebugString())
		t.Error("expected (S+e)-e to equal S-e")
	}
	if left.HashCode() != right.HashCode() {
		t.Error("expected (S+e)-e and S-e to agree on hash code")
	}
	if right.Contains(3) {
		t.Error("expected e to be gone from S-e")
	}
}

func TestTreeFullRemovalYieldsCanonicalEmpty(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	elems := make([]fset.Int, 100)
	for i := range elems {
		elems[i] = fset.Int(rnd.Int31n(1000))
	}
	s := Immutable[fset.Int]().WithAll(elems...)
	shuffled := append([]fset.Int{}, elems...)
	rnd.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	s = s.WithoutAll(shuffled...)
	if !s.IsEmpty() || s.Size() != 0 {
		t.Fatalf("expected empty set after removing everything, size is %d", s.Size())
	}
	if s.root != nil {
		t.Error("expected the canonical empty representation (nil root)")
	}
	if !s.Equals(Immutable[fset.Int]()) {
		t.Error("expected drained set to equal the canonical empty set")
	}
}

func TestTreeUpdateSemantics(t *testing.T) {
	type P = fset.Pair[fset.Int, string]
	base := Immutable[P]().
		With(fset.PairOf(fset.Int(1), "one")).
		With(fset.PairOf(fset.Int(2), "two"))
	//
	query := fset.PairOf(fset.Int(1), "uno")
	old, ok := base.Lookup(query)
	assert.True(t, ok)
	assert.Equal(t, "one", old.Value, "lookup must return the stored value, not the query's")
	//
	updated := base.WithUpdated(query)
	now, _ := updated.Lookup(query)
	assert.Equal(t, "uno", now.Value)
	assert.Equal(t, base.Size(), updated.Size())
	was, _ := base.Lookup(query)
	assert.Equal(t, "one", was.Value, "original set must keep the old value")
	//
	missing := base.WithUpdated(fset.PairOf(fset.Int(9), "nine"))
	if missing.root != base.root {
		t.Error("expected update of an absent key to be an identity no-op")
	}
}

func TestTreeEqualityIgnoresHistory(t *testing.T) {
	a := Immutable[fset.Int]().WithAll(1, 2, 3, 4, 5, 6, 7)
	b := Immutable[fset.Int]().WithAll(7, 6, 5, 4, 3, 2, 1)
	// force different shapes via removal rotations
	a = a.With(8).Without(8).Without(4).With(4)
	if !a.Equals(b) {
		t.Logf("a =\n%s\nb =\n%s", a.DebugString(), b.DebugString())
		t.Error("expected sets with the same elements to be equal regardless of history")
	}
	if a.HashCode() != b.HashCode() {
		t.Error("expected equal sets to agree on hash code")
	}
	if a.Equals(b.Without(5)) {
		t.Error("expected sets differing in one element to be unequal")
	}
}

func TestTreeStructuralSharing(t *testing.T) {
	s := Immutable[fset.Int]().WithAll(50, 25, 75, 12, 37)
	bigger := s.With(80)
	if bigger.root == s.root {
		t.Fatal("expected a new root after insertion")
	}
	// the untouched subtree must be shared by reference
	if bigger.root.left != s.root.left {
		t.Error("expected left subtree to be shared between incarnations")
	}
}

func TestTreeIteratorIsRestartable(t *testing.T) {
	s := Immutable[fset.Int]().WithAll(3, 1, 4, 1, 5, 9, 2, 6)
	first := drain(s.Iterator())
	second := drain(s.Iterator())
	assert.Equal(t, s.Size(), len(first))
	assert.ElementsMatch(t, first, second)
}

func TestTreeStats(t *testing.T) {
	s := Immutable[fset.Int]()
	for i := 0; i < 64; i++ {
		s = s.With(fset.Int(i * 17))
	}
	st := s.Stats()
	t.Logf("%s", st)
	assert.Equal(t, 64, st.Elements)
	assert.Greater(t, st.MaxDepth(), 0)
	assert.Equal(t, 1, st.MaxOccupancy(), "distinct codes must not collide under an odd multiplier")
}

func TestTreeAgainstOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(311))
	oracle := btree.NewOrderedG[int32](4)
	s := Immutable[fset.Int]()
	for i := 0; i < 2000; i++ {
		v := rnd.Int31n(200)
		if rnd.Intn(3) == 0 {
			oracle.Delete(v)
			s = s.Without(fset.Int(v))
		} else {
			oracle.ReplaceOrInsert(v)
			s = s.With(fset.Int(v))
		}
		if s.Size() != oracle.Len() {
			t.Fatalf("step %d: size %d diverges from oracle %d", i, s.Size(), oracle.Len())
		}
	}
	oracle.Ascend(func(v int32) bool {
		if !s.Contains(fset.Int(v)) {
			t.Errorf("oracle holds %d, set does not", v)
		}
		return true
	})
	it := s.Iterator()
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		if !oracle.Has(int32(x)) {
			t.Errorf("set holds %d, oracle does not", x)
		}
	}
}

func drain[T fset.Hashable[T]](it fset.Iterator[T]) []T {
	var out []T
	for x, ok := it.Next(); ok; x, ok = it.Next() {
		out = append(out, x)
	}
	return out
}
