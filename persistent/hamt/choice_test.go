package hamt

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/fset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceHamtRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	elems := make([]fset.Int, 500)
	s := Choice[fset.Int]()
	for i := range elems {
		elems[i] = fset.Int(rnd.Int31())
		s = s.With(elems[i])
	}
	for _, x := range elems {
		if !s.Contains(x) {
			t.Errorf("expected to find %v under one of its candidate hashes", x)
		}
	}
	checkCanonical(t, s.root, 0)
}

func TestChoiceHamtIdempotentInsert(t *testing.T) {
	s := Choice[fset.Int]().WithAll(1, 2, 3)
	again := s.With(2)
	assert.Equal(t, 3, again.Size())
	if again.root != s.root {
		t.Error("expected re-insertion of a present element to be an identity no-op")
	}
}

func TestChoiceHamtRemovalFindsSecondaryPlacement(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	elems := make([]fset.Int, 400)
	s := Choice[fset.Int]()
	for i := range elems {
		elems[i] = fset.Int(rnd.Int31())
		s = s.With(elems[i])
	}
	// some of these ended up under their secondary hash; removal must reach
	// them regardless of where placement put them
	rnd.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
	for _, x := range elems {
		s = s.Without(x)
	}
	if !s.IsEmpty() || s.root != nil {
		t.Errorf("expected all placements to be removable, %d left", s.Size())
	}
}

func TestChoiceHamtUpdate(t *testing.T) {
	type P = fset.Pair[fset.Int, string]
	rnd := rand.New(rand.NewSource(13))
	s := Choice[P]()
	keys := make([]fset.Int, 100)
	for i := range keys {
		keys[i] = fset.Int(rnd.Int31())
		s = s.With(fset.PairOf(keys[i], "old"))
	}
	for _, k := range keys {
		s = s.WithUpdated(fset.PairOf(k, "new"))
	}
	for _, k := range keys {
		p, ok := s.Lookup(fset.PairOf(k, ""))
		require.True(t, ok)
		assert.Equal(t, "new", p.Value)
	}
	missing := s.WithUpdated(fset.PairOf(fset.Int(-1), "ghost"))
	if missing.root != s.root {
		t.Error("expected update of an absent key to be an identity no-op")
	}
}

func TestChoiceHamtEqualityIsSetComparison(t *testing.T) {
	rnd := rand.New(rand.NewSource(29))
	elems := make([]fset.Int, 150)
	for i := range elems {
		elems[i] = fset.Int(rnd.Int31())
	}
	a := Choice[fset.Int]().WithAll(elems...)
	rnd.Shuffle(len(elems), func(i, j int) { elems[i], elems[j] = elems[j], elems[i] })
	b := Choice[fset.Int]().WithAll(elems...)
	// insertion order steers placement, so shapes may differ; equality may not
	if !a.Equals(b) {
		t.Error("expected sets with the same elements to be equal regardless of placement")
	}
	assert.Equal(t, a.HashCode(), b.HashCode())
	assert.False(t, a.Equals(b.Without(elems[0])))
}

func TestChoiceHamtOptions(t *testing.T) {
	s := Choice[fset.Int](Choices(4))
	for i := 0; i < 64; i++ {
		s = s.With(fset.Int(i))
	}
	assert.Equal(t, 64, s.Size())
	assert.Panics(t, func() { Choice[fset.Int](Choices(1)) })
	assert.Panics(t, func() { Choice[fset.Int](Choices(5)) }) // not a legal family size
}

func TestChoiceHamtStats(t *testing.T) {
	plain, choice := Immutable[fset.Int](), Choice[fset.Int]()
	for i := 0; i < 256; i++ {
		plain = plain.With(fset.Int(i * 31))
		choice = choice.With(fset.Int(i * 31))
	}
	ps, cs := plain.Stats(), choice.Stats()
	t.Logf("plain:  %s", ps)
	t.Logf("choice: %s", cs)
	assert.Equal(t, 256, cs.Elements)
	assert.LessOrEqual(t, cs.MaxDepth(), 8)
}
