package fset

import "fmt"

// Pair is a key-value pair with key-only equality, turning any set variant
// into a map: two pairs are equal iff their keys are equal, so inserting a
// pair with an existing key is a no-op, and WithUpdated overwrites the value
// stored under the key.
type Pair[K Hashable[K], V any] struct {
	Key   K
	Value V
}

// PairOf builds a Pair; mostly saves clients the type parameters.
func PairOf[K Hashable[K], V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Equal compares by key only. The values are deliberately ignored.
func (p Pair[K, V]) Equal(other Pair[K, V]) bool {
	return p.Key.Equal(other.Key)
}

// HashCode is the key's hash code; consistent with key-only Equal.
func (p Pair[K, V]) HashCode() int32 {
	return p.Key.HashCode()
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("⟨%v→%v⟩", p.Key, p.Value)
}
