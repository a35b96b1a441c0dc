package bucket

import (
	"testing"

	"github.com/npillmayer/fset"
	"github.com/stretchr/testify/assert"
)

func TestBucketOfOne(t *testing.T) {
	b := Of(77, fset.Int(7))
	if b.Size() != 1 {
		t.Errorf("expected fresh bucket to have size 1, has %d", b.Size())
	}
	if b.Hash() != 77 {
		t.Errorf("expected bucket hash 77, is %d", b.Hash())
	}
	if !b.Contains(fset.Int(7)) || b.Contains(fset.Int(8)) {
		t.Error("expected bucket to contain 7 and not 8")
	}
}

func TestBucketInsertIsIdempotent(t *testing.T) {
	b := Of(77, fset.Int(7))
	b2, added := b.With(fset.Int(7))
	assert.False(t, added)
	assert.True(t, b.Equal(b2))
	b3, added := b.With(fset.Int(8))
	assert.True(t, added)
	assert.Equal(t, 2, b3.Size())
	assert.Equal(t, 1, b.Size(), "original bucket must stay untouched")
}

func TestBucketCollisionListDedups(t *testing.T) {
	b := Of(5, fset.Int(5))
	b, _ = b.With(fset.Int(15))
	b, _ = b.With(fset.Int(25))
	for _, x := range []fset.Int{5, 15, 25} {
		_, added := b.With(x)
		assert.Falsef(t, added, "re-inserting %v must be a no-op", x)
	}
	assert.Equal(t, 3, b.Size())
}

func TestBucketRemoveCollapsesAndEmpties(t *testing.T) {
	b := Of(5, fset.Int(5))
	b, _ = b.With(fset.Int(15))
	//
	b2, removed, empty := b.Without(fset.Int(5)) // removes `first`, promotes 15
	assert.True(t, removed)
	assert.False(t, empty)
	assert.Equal(t, 1, b2.Size())
	assert.True(t, b2.Contains(fset.Int(15)))
	//
	_, removed, empty = b2.Without(fset.Int(15))
	assert.True(t, removed)
	assert.True(t, empty, "removing the last element must signal excision")
	//
	b3, removed, _ := b.Without(fset.Int(99))
	assert.False(t, removed)
	assert.True(t, b.Equal(b3))
}

func TestBucketEqualityUnordered(t *testing.T) {
	a := Of(5, fset.Int(5))
	a, _ = a.With(fset.Int(15))
	b := Of(5, fset.Int(15))
	b, _ = b.With(fset.Int(5))
	assert.True(t, a.Equal(b), "collision order must not affect equality")
	assert.Equal(t, a.HashCode(), b.HashCode())
	c := Of(6, fset.Int(5))
	assert.False(t, a.Equal(c), "hash value participates in equality")
}

func TestBucketReplace(t *testing.T) {
	type pair = fset.Pair[fset.Int, string]
	b := Of(3, fset.PairOf(fset.Int(3), "old"))
	b2, ok := b.WithReplaced(fset.PairOf(fset.Int(3), "new"))
	assert.True(t, ok)
	got, _ := b2.Get(fset.PairOf(fset.Int(3), ""))
	assert.Equal(t, "new", got.Value)
	old, _ := b.Get(fset.PairOf(fset.Int(3), ""))
	assert.Equal(t, "old", old.Value, "original bucket must keep old value")
	_, ok = b.WithReplaced(pair{Key: fset.Int(4)})
	assert.False(t, ok)
}
