package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/operator"
	"github.com/npillmayer/segtree/tree"
)

// LazySegmentTree is a segment tree which additionally supports updating
// whole ranges of values with a delta of type D.
//
// Every node is in one of two states. A clean node holds the correct
// aggregate for its range, and so do all of its children. A dirty node holds
// the correct aggregate as well, but its children have yet to receive the
// node's pending delta. Leaves are always clean. Queries and updates sift
// every node they visit, i.e. push its pending delta down one level, so a
// reader never observes a child lacking a delta of one of its ancestors.
//
// A LazySegmentTree has to be created by NewLazy.
type LazySegmentTree[T, D any] struct {
	tree    tree.Backing[int, cell[T, D]]
	op      operator.Operator[T]
	sifter  DeltaSifter[T, D]
	compose DeltaComposer[D]
	length  int
}

// NewLazy builds a lazy segment tree over all values of src.
func NewLazy[T, D any](src Source[T], cfg LazyConfig[T, D]) (*LazySegmentTree[T, D], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: source is nil", ErrInvalidConfig)
	}
	cells := mappedSource[T, cell[T, D]]{
		src: src,
		f:   func(v T) cell[T, D] { return cell[T, D]{value: v} },
	}
	combine := func(l, r cell[T, D]) cell[T, D] {
		return cell[T, D]{value: cfg.Operator.Combine(l.value, r.value)}
	}
	implicit, length, err := construct[cell[T, D]](cells, combine)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("lazy segment tree: constructed over %d values, composing deltas=%v",
		length, cfg.Compose != nil)
	return &LazySegmentTree[T, D]{
		tree:    implicit,
		op:      cfg.Operator,
		sifter:  cfg.Sifter,
		compose: cfg.Compose,
		length:  length,
	}, nil
}

// Len returns the length of the underlying sequence.
func (lt *LazySegmentTree[T, D]) Len() int {
	return lt.length
}

// Total returns the aggregate over the complete sequence.
func (lt *LazySegmentTree[T, D]) Total() T {
	return lt.get(lt.tree.Root()).value
}

// Pending returns the number of nodes holding a delta not yet pushed to
// their children.
func (lt *LazySegmentTree[T, D]) Pending() int {
	n := 0
	lt.EachNode(func(info NodeInfo) bool {
		if info.Dirty {
			n++
		}
		return true
	})
	return n
}

// Query returns the aggregate of all values with index in [left, right].
//
// Query panics unless 0 <= left <= right < Len(). Query sifts the nodes it
// visits and therefore modifies the tree.
func (lt *LazySegmentTree[T, D]) Query(left, right int) T {
	checkRange("query", left, right, lt.length)
	return lt.query(lt.tree.Root(), left, right, 0, lt.length-1)
}

func (lt *LazySegmentTree[T, D]) query(node int, left, right, lo, hi int) T {
	lt.sift(node, lo, hi)
	if covers(left, right, lo, hi) {
		return lt.get(node).value
	}
	middleLeft, middleRight := splitRange(lo, hi)
	if right <= middleLeft {
		return lt.query(lt.tree.Child(node, 0), left, right, lo, middleLeft)
	}
	if left >= middleRight {
		return lt.query(lt.tree.Child(node, 1), left, right, middleRight, hi)
	}
	l := lt.query(lt.tree.Child(node, 0), left, right, lo, middleLeft)
	r := lt.query(lt.tree.Child(node, 1), left, right, middleRight, hi)
	return lt.op.Combine(l, r)
}

// UpdateRange applies delta to every value with index in [left, right].
//
// UpdateRange panics unless 0 <= left <= right < Len().
func (lt *LazySegmentTree[T, D]) UpdateRange(left, right int, delta D) {
	checkRange("update range", left, right, lt.length)
	lt.updateRange(lt.tree.Root(), left, right, 0, lt.length-1, delta)
}

func (lt *LazySegmentTree[T, D]) updateRange(node int, left, right, lo, hi int, delta D) {
	lt.sift(node, lo, hi)
	if covers(left, right, lo, hi) {
		lt.apply(node, lo, hi, delta)
		return
	}
	middleLeft, middleRight := splitRange(lo, hi)
	if left <= middleLeft {
		lt.updateRange(lt.tree.Child(node, 0), left, right, lo, middleLeft, delta)
	}
	if right >= middleRight {
		lt.updateRange(lt.tree.Child(node, 1), left, right, middleRight, hi, delta)
	}
	lt.recombine(node)
}

// Update replaces the value at index.
//
// Update panics unless 0 <= index < Len().
func (lt *LazySegmentTree[T, D]) Update(index int, value T) {
	assert(index >= 0 && index < lt.length, "update: index out of bounds")
	lt.update(lt.tree.Root(), index, value, 0, lt.length-1)
}

func (lt *LazySegmentTree[T, D]) update(node int, index int, value T, lo, hi int) {
	if lo == hi {
		lt.getMut(node).value = value
		return
	}
	lt.sift(node, lo, hi)
	middleLeft, middleRight := splitRange(lo, hi)
	if index <= middleLeft {
		lt.update(lt.tree.Child(node, 0), index, value, lo, middleLeft)
	} else {
		lt.update(lt.tree.Child(node, 1), index, value, middleRight, hi)
	}
	lt.recombine(node)
}

// EachNode visits all nodes in pre-order, reporting pending deltas.
// Iteration stops early if fn returns false.
func (lt *LazySegmentTree[T, D]) EachNode(fn func(NodeInfo) bool) {
	walkNodes(lt.tree, lt.length, func(c cell[T, D]) NodeInfo {
		info := NodeInfo{Value: fmt.Sprintf("%v", c.value), Dirty: c.dirty}
		if c.dirty {
			info.Pending = fmt.Sprintf("%v", c.pending)
		}
		return info
	}, fn)
}

// String renders the node array of the tree, with pending deltas.
func (lt *LazySegmentTree[T, D]) String() string {
	if s, ok := lt.tree.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("LazySegmentTree(len=%d)", lt.length)
}

// apply brings delta into the node covering [lo, hi]: the node's aggregate
// is updated at once, and for inner nodes delta becomes pending.
//
// If the node still holds a pending delta, it is either composed with delta,
// or, without a composer, sifted to the children before being replaced.
func (lt *LazySegmentTree[T, D]) apply(node int, lo, hi int, delta D) {
	c := lt.getMut(node)
	c.value = lt.sifter(c.value, delta, hi-lo+1)
	if lo == hi {
		return
	}
	if c.dirty {
		if lt.compose != nil {
			c.pending = lt.compose(c.pending, delta)
			return
		}
		lt.sift(node, lo, hi)
	}
	c.pending = delta
	c.dirty = true
}

// sift pushes the pending delta of node to its present children and marks
// node clean.
func (lt *LazySegmentTree[T, D]) sift(node int, lo, hi int) {
	c := lt.getMut(node)
	if !c.dirty {
		return
	}
	delta := c.pending
	var zero D
	c.pending, c.dirty = zero, false
	if lo == hi {
		return
	}
	middleLeft, middleRight := splitRange(lo, hi)
	if child := lt.tree.Child(node, 0); lt.has(child) {
		lt.apply(child, lo, middleLeft, delta)
	}
	if child := lt.tree.Child(node, 1); lt.has(child) {
		lt.apply(child, middleRight, hi, delta)
	}
}

func (lt *LazySegmentTree[T, D]) recombine(node int) {
	l := lt.get(lt.tree.Child(node, 0)).value
	r := lt.get(lt.tree.Child(node, 1)).value
	lt.getMut(node).value = lt.op.Combine(l, r)
}

func (lt *LazySegmentTree[T, D]) has(node int) bool {
	_, ok := lt.tree.Get(node)
	return ok
}

func (lt *LazySegmentTree[T, D]) get(node int) cell[T, D] {
	c, ok := lt.tree.Get(node)
	assert(ok, "lazy segment tree: node missing")
	return c
}

func (lt *LazySegmentTree[T, D]) getMut(node int) *cell[T, D] {
	c, ok := lt.tree.GetMut(node)
	assert(ok, "lazy segment tree: node missing")
	return c
}
