/*
Package hamt implements a persistent set as a hash-array-mapped trie.

The trie consumes the derived 32-bit hash of an element in 4-bit chunks,
one chunk per level (16 slots, at most 8 levels). Interior nodes come in two
flavors: sparse nodes carry a 16-bit occupancy bitmap and store only their
present children in a compressed array, indexed by popcount; nodes with all
16 slots occupied drop the redundant bitmap and become full nodes. Elements
live in leaves — a one-element leaf in the common case, a collision leaf for
the rare full-hash clash.

Compression is deterministic for a given hash assignment, so the trie shape
is canonical: independently built tries over the same elements converge to
the same structure. Removal preserves canonicity by demoting full nodes,
excising emptied children and collapsing single-leaf sparse nodes.

A second set type, ChoiceHamt, applies the “power of choices” heuristic with
several candidate hashes per element, committing each insertion to the
cheapest placement.

All operations are copy-on-write: they return a new incarnation of the trie
and share every untouched subtree with the original.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hamt

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.hamt'.
func tracer() tracing.Trace {
	return tracing.Select("fset.hamt")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.hamt: "+msg, msgargs...)
		panic(msg)
	}
}
