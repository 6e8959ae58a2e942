/*
Package sparse provides sparse tables for range queries over immutable data.

A sparse table precomputes the aggregate of every range whose length is a power
of two, using O(n log n) space. Any range [l, r] is then covered by at most
log n of these blocks, combined from left to right. Unlike the segment trees of
package segtree a sparse table cannot be updated; in turn it needs no tree
structure at all.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sparse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
