/*
Package hashtree implements a persistent set as an unbalanced binary search
tree keyed by derived hash values.

Every element is hashed through a hash family (package hashes); the tree
orders nodes by that derived hash, and elements colliding on one hash value
co-reside in a single node's bucket. The tree is never rebalanced — only the
entropy of the hash family keeps it shallow — which makes it the baseline
the treap and HAMT variants improve on.

A second set type, ChoiceTree, applies the “power of two choices” heuristic:
it derives several candidate hashes per element and inserts under the one
that lands at the smallest depth.

All operations are copy-on-write: they return a new incarnation of the tree
and share every untouched subtree with the original.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.hashtree'.
func tracer() tracing.Trace {
	return tracing.Select("fset.hashtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.hashtree: "+msg, msgargs...)
		panic(msg)
	}
}
