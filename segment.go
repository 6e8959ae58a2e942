package segtree

import (
	"fmt"
	"iter"

	"github.com/npillmayer/segtree/operator"
	"github.com/npillmayer/segtree/tree"
)

// SegmentTree serves range aggregate queries and point updates over a
// fixed-length sequence of values.
//
// A SegmentTree has to be created by New.
type SegmentTree[T any] struct {
	tree   tree.Backing[int, T]
	op     operator.Operator[T]
	length int
}

// New builds a segment tree over all values of src.
//
// The length of src is fixed from here on. New fails for an empty src, a src
// delivering fewer values than it announced, or a missing operator.
func New[T any](src Source[T], cfg Config[T]) (*SegmentTree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidConfig)
	}
	implicit, length, err := construct(src, cfg.Operator.Combine)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("segment tree: constructed over %d values", length)
	return &SegmentTree[T]{
		tree:   implicit,
		op:     cfg.Operator,
		length: length,
	}, nil
}

// Len returns the length of the underlying sequence.
func (st *SegmentTree[T]) Len() int {
	return st.length
}

// Total returns the aggregate over the complete sequence.
func (st *SegmentTree[T]) Total() T {
	return st.value(st.tree.Root())
}

// Query returns the aggregate of all values with index in [left, right].
//
// Query panics unless 0 <= left <= right < Len().
func (st *SegmentTree[T]) Query(left, right int) T {
	checkRange("query", left, right, st.length)
	return st.query(st.tree.Root(), left, right, 0, st.length-1)
}

func (st *SegmentTree[T]) query(node int, left, right, lo, hi int) T {
	if covers(left, right, lo, hi) {
		return st.value(node)
	}
	middleLeft, middleRight := splitRange(lo, hi)
	if right <= middleLeft {
		return st.query(st.tree.Child(node, 0), left, right, lo, middleLeft)
	}
	if left >= middleRight {
		return st.query(st.tree.Child(node, 1), left, right, middleRight, hi)
	}
	l := st.query(st.tree.Child(node, 0), left, right, lo, middleLeft)
	r := st.query(st.tree.Child(node, 1), left, right, middleRight, hi)
	return st.op.Combine(l, r)
}

// Update replaces the value at index and recomputes the aggregates of all
// ancestors of its leaf.
//
// Update panics unless 0 <= index < Len().
func (st *SegmentTree[T]) Update(index int, value T) {
	assert(index >= 0 && index < st.length, "update: index out of bounds")
	node := st.leaf(index)
	p, ok := st.tree.GetMut(node)
	assert(ok, "update: leaf node missing")
	*p = value
	for root := st.tree.Root(); node != root; {
		node = st.tree.Parent(node)
		st.recombine(node)
	}
}

// Values iterates over all leaf values in index order.
func (st *SegmentTree[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		st.eachLeaf(st.tree.Root(), 0, st.length-1, yield)
	}
}

func (st *SegmentTree[T]) eachLeaf(node, lo, hi int, yield func(int, T) bool) bool {
	if lo == hi {
		return yield(lo, st.value(node))
	}
	middleLeft, middleRight := splitRange(lo, hi)
	return st.eachLeaf(st.tree.Child(node, 0), lo, middleLeft, yield) &&
		st.eachLeaf(st.tree.Child(node, 1), middleRight, hi, yield)
}

// EachNode visits all nodes in pre-order. Iteration stops early if fn
// returns false.
func (st *SegmentTree[T]) EachNode(fn func(NodeInfo) bool) {
	walkNodes(st.tree, st.length, func(v T) NodeInfo {
		return NodeInfo{Value: fmt.Sprintf("%v", v)}
	}, fn)
}

// String renders the node array of the tree.
func (st *SegmentTree[T]) String() string {
	if s, ok := st.tree.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("SegmentTree(len=%d)", st.length)
}

// leaf descends to the leaf covering index.
func (st *SegmentTree[T]) leaf(index int) int {
	node, lo, hi := st.tree.Root(), 0, st.length-1
	for lo < hi {
		middleLeft, middleRight := splitRange(lo, hi)
		if index <= middleLeft {
			node, hi = st.tree.Child(node, 0), middleLeft
		} else {
			node, lo = st.tree.Child(node, 1), middleRight
		}
	}
	return node
}

func (st *SegmentTree[T]) recombine(node int) {
	l := st.value(st.tree.Child(node, 0))
	r := st.value(st.tree.Child(node, 1))
	p, ok := st.tree.GetMut(node)
	assert(ok, "segment tree: inner node missing")
	*p = st.op.Combine(l, r)
}

func (st *SegmentTree[T]) value(node int) T {
	v, ok := st.tree.Get(node)
	assert(ok, "segment tree: node missing")
	return v
}
