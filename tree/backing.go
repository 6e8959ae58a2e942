package tree

import "iter"

// BinaryWidth is the fanout of trees used by segment trees.
const BinaryWidth = 2

// Backing defines node identifier semantics for a tree of values V.
//
// Absence is a normal state: Get, GetMut and InsertChild report it with a
// false flag rather than an error. Asking for a child index outside of the
// tree's width is a programming error and panics.
type Backing[ID comparable, V any] interface {
	// Root returns the identifier of the root node.
	Root() ID
	// SetRoot stores a value at the root node.
	SetRoot(value V)
	// Parent returns the identifier of the parent of node.
	Parent(node ID) ID
	// Child returns the identifier of the index-th child of node.
	Child(node ID, index int) ID
	// Children iterates over the present children of node, in order.
	Children(node ID) iter.Seq[ID]
	// Get returns the value of node, if present.
	Get(node ID) (V, bool)
	// GetMut returns a pointer to the value of node, if present. The pointer
	// is valid until the next insertion into the tree.
	GetMut(node ID) (*V, bool)
	// InsertChild stores value as the child at offset of parent and returns
	// the new child's identifier. It fails if parent is absent.
	InsertChild(parent ID, offset int, value V) (ID, bool)
}
