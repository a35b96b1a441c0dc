/*
Package bucket implements the per-hash element storage of the persistent set
structures: all elements whose derived hash collides on one value live in a
single bucket.

The common case — exactly one element per hash — pays no allocation beyond
the bucket itself; only genuine collisions grow a list. Collision lists are
deduplicated by element equality and expected tiny, so linear scans are the
right tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bucket

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.bucket'.
func tracer() tracing.Trace {
	return tracing.Select("fset.bucket")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.bucket: "+msg, msgargs...)
		panic(msg)
	}
}
