/*
Package fset is the umbrella for a family of persistent (immutable) set
data structures: a hash-keyed binary search tree, a treap, a bitmap-indexed
hash-array-mapped trie (HAMT), and “power of choices” variants of tree and
trie which pick among several hash functions per insertion to keep the
structure shallow.

Each “modification” of a set returns a new incarnation, leaving the original
unmodified. Under the hood structural sharing retains most of the memory held
by the original; only the nodes along the modified root-to-leaf path are
re-created. Persistent sets are inherently concurrency-safe for readers:
any number of goroutines may query the same incarnation without
synchronization.

This root package holds the public contract shared by all variants (see
interface Set), the element constraint Hashable, a key-only-equality Pair
for building map semantics on top of a set, and shape statistics used for
diagnosis. The concrete structures live in the persistent/… sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset'.
func tracer() tracing.Trace {
	return tracing.Select("fset")
}
