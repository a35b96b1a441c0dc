/*
Package arr implements a compact immutable array store, the small-collection
primitive underneath the persistent set structures of this module.

A Store is a thin wrapper over a contiguous backing slice. Every
“modification” copies the backing store into a new one of exactly the right
size — copy-on-write with no holes and no spare capacity. Stores are used
both as collision lists and as the compressed child arrays of HAMT nodes,
so sizes are expected to stay tiny and O(n) copying is the deliberate
trade-off.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arr

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.arr'.
func tracer() tracing.Trace {
	return tracing.Select("fset.arr")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.arr: "+msg, msgargs...)
		panic(msg)
	}
}
