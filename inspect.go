package segtree

import (
	"slices"

	"github.com/npillmayer/segtree/tree"
)

// NodeInfo describes a tree node for debugging output.
type NodeInfo struct {
	ID          int    // identifier in the implicit tree
	Depth       int    // 0 for the root
	Left, Right int    // covered index range, inclusive
	Value       string // formatted aggregate
	Pending     string // formatted pending delta, if Dirty
	Dirty       bool   // node holds a delta not yet pushed to its children
	Children    []int  // identifiers of present children, in order
}

// IsLeaf reports whether the node covers a single index.
func (info NodeInfo) IsLeaf() bool {
	return info.Left == info.Right
}

// Inspectable is implemented by SegmentTree and LazySegmentTree.
type Inspectable interface {
	Len() int
	EachNode(fn func(NodeInfo) bool)
}

var (
	_ Inspectable = (*SegmentTree[int])(nil)
	_ Inspectable = (*LazySegmentTree[int, int])(nil)
)

func walkNodes[V any](t tree.Backing[int, V], length int, describe func(V) NodeInfo,
	fn func(NodeInfo) bool) {
	//
	var walk func(node, lo, hi, depth int) bool
	walk = func(node, lo, hi, depth int) bool {
		v, ok := t.Get(node)
		if !ok {
			return true
		}
		info := describe(v)
		info.ID, info.Depth, info.Left, info.Right = node, depth, lo, hi
		info.Children = slices.Collect(t.Children(node))
		if !fn(info) {
			return false
		}
		if lo == hi {
			return true
		}
		middleLeft, middleRight := splitRange(lo, hi)
		return walk(t.Child(node, 0), lo, middleLeft, depth+1) &&
			walk(t.Child(node, 1), middleRight, hi, depth+1)
	}
	if fn != nil {
		walk(t.Root(), 0, length-1, 0)
	}
}
