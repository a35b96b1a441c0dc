package arr

import (
	"fmt"
	"strings"
)

// Store is an immutable ordered sequence of items. The zero value is an
// empty store, ready to use.
type Store[T any] struct {
	items []T
}

// Of builds a store from the given items. The items are copied; the caller
// keeps ownership of the argument slice.
func Of[T any](items ...T) Store[T] {
	if len(items) == 0 {
		return Store[T]{}
	}
	s := make([]T, len(items))
	copy(s, items)
	return Store[T]{items: s}
}

// Size returns the number of items.
func (s Store[T]) Size() int {
	return len(s.items)
}

// IsEmpty is true iff the store holds no items.
func (s Store[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the item at index i. i must be in [0, Size).
func (s Store[T]) At(i int) T {
	assertThat(i >= 0 && i < len(s.items), "index out of bounds: %d with size %d", i, len(s.items))
	return s.items[i]
}

// First returns the item at index 0 of a non-empty store.
func (s Store[T]) First() T {
	assertThat(len(s.items) > 0, "attempt to take first item of empty store")
	return s.items[0]
}

// --- Copy-on-write operations ----------------------------------------------

// WithAppended returns a copy of s with item appended at the end.
func (s Store[T]) WithAppended(item T) Store[T] {
	cow := make([]T, len(s.items)+1)
	copy(cow, s.items)
	cow[len(s.items)] = item
	return Store[T]{items: cow}
}

// WithInserted returns a copy of s with item inserted at index `at`,
// shifting later items right. at must be in [0, Size].
func (s Store[T]) WithInserted(item T, at int) Store[T] {
	assertThat(at >= 0 && at <= len(s.items), "insertion index out of bounds: %d with size %d", at, len(s.items))
	cow := make([]T, len(s.items)+1)
	copy(cow, s.items[:at])
	cow[at] = item
	copy(cow[at+1:], s.items[at:])
	return Store[T]{items: cow}
}

// WithoutAt returns a copy of s with the item at index `at` removed,
// compacting the remainder. at must be in [0, Size).
func (s Store[T]) WithoutAt(at int) Store[T] {
	assertThat(at >= 0 && at < len(s.items), "removal index out of bounds: %d with size %d", at, len(s.items))
	if len(s.items) == 1 {
		return Store[T]{}
	}
	cow := make([]T, len(s.items)-1)
	copy(cow, s.items[:at])
	copy(cow[at:], s.items[at+1:])
	return Store[T]{items: cow}
}

// WithReplacedAt returns a copy of s with the item at index `at` replaced.
// at must be in [0, Size).
func (s Store[T]) WithReplacedAt(item T, at int) Store[T] {
	assertThat(at >= 0 && at < len(s.items), "replacement index out of bounds: %d with size %d", at, len(s.items))
	cow := make([]T, len(s.items))
	copy(cow, s.items)
	cow[at] = item
	return Store[T]{items: cow}
}

// --- Predicate-driven operations ---------------------------------------------

// IndexWhere returns the index of the first item matching pred, or -1.
func (s Store[T]) IndexWhere(pred func(T) bool) int {
	for i, item := range s.items {
		if pred(item) {
			return i
		}
	}
	return -1
}

// Find returns the first item matching pred.
func (s Store[T]) Find(pred func(T) bool) (T, bool) {
	if i := s.IndexWhere(pred); i >= 0 {
		return s.items[i], true
	}
	var none T
	return none, false
}

// WithoutFirst returns a copy of s with the first item matching pred
// removed. If no item matches, s is returned unchanged (ok=false).
func (s Store[T]) WithoutFirst(pred func(T) bool) (Store[T], bool) {
	if i := s.IndexWhere(pred); i >= 0 {
		return s.WithoutAt(i), true
	}
	return s, false
}

// WithReplacedFirst returns a copy of s with the first item matching pred
// replaced by item. If no item matches, s is returned unchanged (ok=false).
func (s Store[T]) WithReplacedFirst(item T, pred func(T) bool) (Store[T], bool) {
	if i := s.IndexWhere(pred); i >= 0 {
		return s.WithReplacedAt(item, i), true
	}
	return s, false
}

// Each calls visit for every item in order, stopping early if visit returns
// false.
func (s Store[T]) Each(visit func(T) bool) {
	for _, item := range s.items {
		if !visit(item) {
			return
		}
	}
}

// --- Functional combinators ---------------------------------------------------

// Map builds a store holding f(item) for every item of s, in order.
func Map[T, S any](s Store[T], f func(T) S) Store[S] {
	if s.IsEmpty() {
		return Store[S]{}
	}
	out := make([]S, len(s.items))
	for i, item := range s.items {
		out[i] = f(item)
	}
	return Store[S]{items: out}
}

// FlatMap concatenates the stores produced by f over every item of s.
func FlatMap[T, S any](s Store[T], f func(T) Store[S]) Store[S] {
	var out []S
	for _, item := range s.items {
		out = append(out, f(item).items...)
	}
	return Store[S]{items: out}
}

// Fold reduces s from the left, starting with zero.
func Fold[T, A any](s Store[T], zero A, f func(A, T) A) A {
	acc := zero
	for _, item := range s.items {
		acc = f(acc, item)
	}
	return acc
}

func (s Store[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", item))
	}
	b.WriteByte(']')
	return b.String()
}
