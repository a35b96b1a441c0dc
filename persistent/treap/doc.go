/*
Package treap implements a persistent set as a treap: a binary search tree
keyed by derived hash values which is simultaneously a max-heap on per-node
priorities.

Priorities are a secondary hash of each node's hash value, so the shape of a
treap is a deterministic function of the set of hashes present — independent
of insertion and removal order. That canonical shape licenses a shortcut the
plain hash tree (package hashtree) cannot take: set equality is a plain
recursive structural comparison, with shared subtrees compared by pointer.

All operations are copy-on-write: they return a new incarnation of the treap
and share every untouched subtree with the original.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.treap'.
func tracer() tracing.Trace {
	return tracing.Select("fset.treap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.treap: "+msg, msgargs...)
		panic(msg)
	}
}
