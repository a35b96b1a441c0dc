package hashtree

import (
	"testing"

	"github.com/npillmayer/fset"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The placement scenario below is pinned to the family constants: for
// fset.Int(v) the two candidate hashes are v*0x7935c60b and v*0x4f90d195
// (int32 wraparound). Hand-derived values:
//
//	v   hash0        hash1        placement
//	1   2033567243   1334890901   hash0 (tie at depth 0)
//	2   -227832810   -1625185494  hash0 (tie at depth 1, root.left)
//	3   1805734433   -290294593   hash0 (tie at depth 2, root.left.right)
//	8   -911331240   2089192616   hash1 (depth 1 beats depth 2, root.right)
func TestChoicePlacementScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fset.hashtree")
	defer teardown()
	//
	s := Choice[fset.Int]().WithAll(1, 2, 3)
	require.NotNil(t, s.root)
	assert.EqualValues(t, 2033567243, s.root.bucket.Hash())
	require.NotNil(t, s.root.left)
	assert.EqualValues(t, -227832810, s.root.left.bucket.Hash())
	require.NotNil(t, s.root.left.right)
	assert.EqualValues(t, 1805734433, s.root.left.right.bucket.Hash())
	assert.Nil(t, s.root.right)
	//
	s2 := s.With(8) // secondary hash wins: shallower on the empty right side
	require.NotNil(t, s2.root.right)
	assert.EqualValues(t, 2089192616, s2.root.right.bucket.Hash())
	if s2.root.left != s.root.left {
		t.Error("expected the untouched left subtree to be shared by reference")
	}
	t.Logf("choice tree =\n%s", s2.DebugString())
}

func TestChoiceReadsTryEachCandidate(t *testing.T) {
	s := Choice[fset.Int]().WithAll(1, 2, 3, 8)
	for _, v := range []fset.Int{1, 2, 3, 8} {
		got, ok := s.Lookup(v)
		if !ok || !got.Equal(v) {
			t.Errorf("expected lookup(%v) to succeed whichever hash holds it", v)
		}
	}
	// 8 is stored under its secondary hash; removal must find it there
	s2 := s.Without(8)
	assert.False(t, s2.Contains(8))
	assert.Equal(t, 3, s2.Size())
	assert.True(t, s.Contains(8), "original incarnation keeps the element")
	// removing an absent element is a no-op even when a candidate bucket exists
	s3 := s2.Without(8)
	if s3.root != s2.root {
		t.Error("expected removal of absent element to be an identity no-op")
	}
}

func TestChoiceInsertIsIdempotent(t *testing.T) {
	s := Choice[fset.Int]().WithAll(1, 2, 3, 8)
	again := s.With(8) // present under the secondary hash
	if again.root != s.root || again.Size() != s.Size() {
		t.Error("expected re-insertion to be an identity no-op")
	}
}

func TestChoiceUpdate(t *testing.T) {
	type P = fset.Pair[fset.Int, string]
	s := Choice[P]().
		With(fset.PairOf(fset.Int(1), "one")).
		With(fset.PairOf(fset.Int(8), "eight"))
	upd := s.WithUpdated(fset.PairOf(fset.Int(8), "acht"))
	got, ok := upd.Lookup(fset.PairOf(fset.Int(8), ""))
	require.True(t, ok)
	assert.Equal(t, "acht", got.Value)
	//
	noop := s.WithUpdated(fset.PairOf(fset.Int(99), "?"))
	if noop.root != s.root {
		t.Error("expected update of absent key to be an identity no-op")
	}
}

func TestChoiceEqualityIsSetComparison(t *testing.T) {
	a := Choice[fset.Int]().WithAll(1, 2, 3, 8)
	b := Choice[fset.Int]().WithAll(8, 3, 2, 1) // order changes hash assignment
	if !a.Equals(b) {
		t.Logf("a =\n%s\nb =\n%s", a.DebugString(), b.DebugString())
		t.Error("expected equal element sets despite divergent placements")
	}
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equals(b.Without(2)))
}

func TestChoiceFullRemoval(t *testing.T) {
	elems := make([]fset.Int, 64)
	for i := range elems {
		elems[i] = fset.Int(i * 31)
	}
	s := Choice[fset.Int]().WithAll(elems...)
	assert.Equal(t, len(elems), s.Size())
	s = s.WithoutAll(elems...)
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.root)
}

func TestChoicesOption(t *testing.T) {
	s := Choice[fset.Int](Choices(4))
	if s.family.Size() != 4 {
		t.Errorf("expected a 4-hash family, got %d", s.family.Size())
	}
	assert.Panics(t, func() { Choice[fset.Int](Choices(1)) })
	assert.Panics(t, func() { Choice[fset.Int](Choices(5)) })
}

func TestChoiceStats(t *testing.T) {
	plain := Immutable[fset.Int]()
	choice := Choice[fset.Int]()
	for i := 0; i < 256; i++ {
		plain = plain.With(fset.Int(i * 131))
		choice = choice.With(fset.Int(i * 131))
	}
	ps, cs := plain.Stats(), choice.Stats()
	t.Logf("plain:  %s", ps)
	t.Logf("choice: %s", cs)
	assert.Equal(t, 256, cs.Elements)
	assert.LessOrEqual(t, cs.MaxDepth(), 2*ps.MaxDepth(),
		"choice placement grossly deeper than single-hash placement")
}
