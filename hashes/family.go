package hashes

import "fmt"

// MaxSize is the number of precomputed multipliers, and thus the largest
// family a caller can request.
const MaxSize = 14

// multipliers are large odd 31-bit primes (hence relatively prime to 2^31),
// found once with FindMultipliers and frozen here.
var multipliers = [MaxSize]int32{
	0x7935c60b, 0x4f90d195, 0x5b341df1, 0x42c0dd77,
	0x4b57b6d7, 0x64b4814b, 0x4c49e7bd, 0x62aa64d7,
	0x4da1aee7, 0x4b84955f, 0x66845f39, 0x553d9b5b,
	0x4df50a89, 0x492a441f,
}

// priorityMultiplier drives Priority. It is reserved: not part of the family
// constants, so treap priorities stay independent of every family slot.
const priorityMultiplier int32 = 0x72227d79

// Family is an ordered list of hash functions over a primitive 32-bit code.
// The zero value is unusable; construct with NewFamily.
type Family struct {
	size int
}

// NewFamily returns a family of n derived hash functions. n must be one of
// 1, 2, 4, 8 or 14.
func NewFamily(n int) Family {
	switch n {
	case 1, 2, 4, 8, MaxSize:
		return Family{size: n}
	}
	panic(fmt.Sprintf("hashes: illegal family size %d (want 1, 2, 4, 8 or %d)", n, MaxSize))
}

// Size returns the number of hash functions in the family.
func (f Family) Size() int {
	return f.size
}

// Hash derives the i-th hash value for a primitive code. Multiplication
// wraps around in int32 arithmetic; overflow is the mechanism, not an error.
// Hash never calls back into element equality.
func (f Family) Hash(i int, code int32) int32 {
	if i < 0 || i >= f.size {
		panic(fmt.Sprintf("hashes: family slot %d out of range [0,%d)", i, f.size))
	}
	return code * multipliers[i]
}

// Vector derives all hash values of the family for a primitive code.
func (f Family) Vector(code int32) []int32 {
	v := make([]int32, f.size)
	for i := range v {
		v[i] = code * multipliers[i]
	}
	return v
}

// Priority derives a treap priority from a (derived) hash value, using a
// multiplier outside the family.
func Priority(hash int32) int32 {
	return hash * priorityMultiplier
}
