/*
Package hashes derives decorrelated 32-bit hash values from a single
primitive hash code.

Elements provide one primitive code (fset.Hashable.HashCode); the set
structures need one or more well-distributed keys per element — the
power-of-choices variants need several independent ones. A Family
post-processes the primitive code by multiplying it with large odd prime
constants, wrapping around in signed 32-bit arithmetic. Equal codes yield
equal derived vectors; distinct codes disagree in each family slot with
high probability.

The multiplier constants were found once with FindMultipliers and are fixed
at build time; the search utility ships only for reproducibility.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hashes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fset.hashes'.
func tracer() tracing.Trace {
	return tracing.Select("fset.hashes")
}
