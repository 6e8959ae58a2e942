/*
Package segtree answers range aggregate queries over a fixed sequence of values.

Segment Trees

A segment tree is built once from a sequence of known length. Each leaf holds
one input value; each inner node holds the aggregate of all leaves below it,
computed with a client-supplied associative operator. Every node covers a
contiguous index range which is never stored but recomputed during traversal
by splitting the root range [0, n-1] at its midpoint, over and over.

	Operation                 |  SegmentTree  |  LazySegmentTree
	--------------------------+---------------+-----------------
	Construct                 |   O(n)        |   O(n)
	Query(l, r)               |   O(log n)    |   O(log n)
	Update(i, v)              |   O(log n)    |   O(log n)
	UpdateRange(l, r, delta)  |   –           |   O(log n) ¹

¹ with a DeltaComposer. Without one, a delta reaching a node which still
holds a pending delta pushes that delta down first, and this may cascade
through the whole dirty subtree below the node; see LazyConfig.

Nodes live in an implicit binary tree (package tree): a single flat slice
addressed by index arithmetic, without any per-node links.

Lazy Propagation

A LazySegmentTree additionally accepts range updates. A range update touches
only O(log n) nodes: nodes fully covered by the range get the delta applied to
their own aggregate right away and remember it as pending for their children.
The pending delta is pushed one level down ("sifted") the next time a query or
update passes through the node. How a delta changes an aggregate is decided by
a client-supplied DeltaSifter, which receives the aggregate, the delta and the
length of the range the aggregate covers.

	tree, _ := segtree.NewLazy(segtree.Slice([]int{1, 2, 3, 4, 5, 6, 7}),
	    segtree.LazyConfig[int, int]{
	        Operator: operator.Sum[int](),
	        Sifter:   segtree.AddSifter[int](),
	    })
	tree.UpdateRange(0, 6, 5)
	tree.Query(4, 6) // == 33

Preconditions of all operations (left <= right, indices within bounds) are
asserted; violating them is a programming error and panics. Trees are not safe
for concurrent use. Note that even Query mutates a LazySegmentTree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
