package fset

import "github.com/spaolacci/murmur3"

// Int is a ready-made integer element type. Its hash code is the value
// itself, which makes placements easy to predict in tests and keeps the
// hash family's multipliers responsible for spreading.
type Int int32

func (i Int) Equal(other Int) bool { return i == other }

// HashCode returns the value itself as primitive code.
func (i Int) HashCode() int32 { return int32(i) }

// String is a ready-made string element type, hashed with 32-bit murmur3.
type String string

func (s String) Equal(other String) bool { return s == other }

// HashCode returns the murmur3 sum of the string bytes, truncated to a
// signed 32-bit code.
func (s String) HashCode() int32 {
	return int32(murmur3.Sum32([]byte(s)))
}
