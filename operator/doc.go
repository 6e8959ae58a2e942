/*
Package operator provides associative operators for range aggregation.

An operator combines two aggregate values into one. Every operator handed to
a segment tree or a sparse table must be associative:

	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))

Commutativity is not required. Trees always combine the partial result
covering the left part of a range before the one covering the right part, so
non-commutative operators (e.g., string concatenation or matrix products) are
usable as long as clients expect left-to-right folding.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package operator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
