/*
Package tree provides the storage discipline for segment trees.

Backing is the abstraction a segment tree is written against: nodes are
addressed by opaque identifiers, a node's value is absent until it has been
inserted, and children are reached by index.

Implicit is the concrete Backing used throughout this module. It stores the
nodes of a width-ary tree in a single flat slice and derives all relations
by index arithmetic:

	root            = 0
	child(id, k)    = width*id + k + 1     for k in [0, width)
	parent(id)      = (id - 1) / width

There are no per-node links, hence no cyclic ownership; the slice grows on
demand and never shrinks.

Trees built out of order, children before parents, are handed over as a
complete slot array to Assemble, which accepts them only if every present
node has a present parent. Implicit itself has no unchecked insert.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

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
