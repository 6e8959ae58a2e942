package tree

import (
	"fmt"
	"iter"
	"strings"
)

// slot holds a node value; present is false for nodes never inserted.
type slot[V any] struct {
	value   V
	present bool
}

// Implicit is a width-ary tree stored in one flat, growable slice.
//
// An Implicit created by NewImplicit has a single, absent root slot.
// Implicit implements Backing[int, V].
type Implicit[V any] struct {
	slots []slot[V]
	width int
	count int // number of present nodes
}

var _ Backing[int, struct{}] = (*Implicit[struct{}])(nil)

// NewImplicit creates an empty tree with the given fanout.
// width must be at least 1.
func NewImplicit[V any](width int) *Implicit[V] {
	assert(width >= 1, "implicit tree width must be at least 1")
	return &Implicit[V]{
		slots: make([]slot[V], 1),
		width: width,
	}
}

// Assemble creates a tree of the given fanout from a complete slot array:
// values[i] is stored at node i if present[i] is set. Nodes may have been
// produced in any order, but the result has to satisfy the parent chain
// invariant; otherwise Assemble returns an error wrapping
// ErrBrokenParentChain.
func Assemble[V any](width int, values []V, present []bool) (*Implicit[V], error) {
	if len(values) != len(present) {
		return nil, fmt.Errorf("%w: %d values, %d flags", ErrSlotMismatch, len(values), len(present))
	}
	t := NewImplicit[V](width)
	if len(values) > len(t.slots) {
		t.slots = make([]slot[V], len(values))
	}
	for i, v := range values {
		if present[i] {
			t.slots[i] = slot[V]{value: v, present: true}
			t.count++
		}
	}
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

// Width returns the fanout of the tree.
func (t *Implicit[V]) Width() int {
	return t.width
}

// Cap returns the number of slots, present or absent.
func (t *Implicit[V]) Cap() int {
	return len(t.slots)
}

// Len returns the number of present nodes.
func (t *Implicit[V]) Len() int {
	return t.count
}

// Root returns 0.
func (t *Implicit[V]) Root() int {
	return 0
}

// SetRoot stores value at the root.
func (t *Implicit[V]) SetRoot(value V) {
	t.put(t.Root(), value)
}

// Parent inverts the child formula for the tree's width.
// The root has no parent; asking for it panics.
func (t *Implicit[V]) Parent(node int) int {
	assert(node > 0, "implicit tree: root node has no parent")
	return (node - 1) / t.width
}

// Child returns width*node + index + 1. index must be less than the width.
func (t *Implicit[V]) Child(node int, index int) int {
	assert(index >= 0 && index < t.width, "implicit tree: child index exceeds width")
	return t.width*node + index + 1
}

// Children iterates over the identifiers of present children of node.
func (t *Implicit[V]) Children(node int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := range t.width {
			child := t.Child(node, k)
			if !t.has(child) {
				continue
			}
			if !yield(child) {
				return
			}
		}
	}
}

// Get returns the value of node and true, or false if node is absent.
func (t *Implicit[V]) Get(node int) (V, bool) {
	if !t.has(node) {
		var zero V
		return zero, false
	}
	return t.slots[node].value, true
}

// GetMut returns a pointer to the value of node and true, or false if node is
// absent. The pointer must not be retained across insertions.
func (t *Implicit[V]) GetMut(node int) (*V, bool) {
	if !t.has(node) {
		return nil, false
	}
	return &t.slots[node].value, true
}

// InsertChild stores value as the offset-th child of parent. It returns false
// and leaves the tree untouched if parent is absent.
func (t *Implicit[V]) InsertChild(parent int, offset int, value V) (int, bool) {
	if !t.has(parent) {
		return 0, false
	}
	child := t.Child(parent, offset)
	t.put(child, value)
	return child, true
}

// Check verifies that every present node below the root has a present parent.
func (t *Implicit[V]) Check() error {
	for node := 1; node < len(t.slots); node++ {
		if !t.slots[node].present {
			continue
		}
		if parent := t.Parent(node); !t.slots[parent].present {
			return fmt.Errorf("%w: node %d present, parent %d absent",
				ErrBrokenParentChain, node, parent)
		}
	}
	return nil
}

// String renders the slot array, with absent slots shown as '_'.
func (t *Implicit[V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Implicit(width=%d)[", t.width)
	for i, s := range t.slots {
		if i > 0 {
			b.WriteString(", ")
		}
		if s.present {
			fmt.Fprintf(&b, "%v", s.value)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (t *Implicit[V]) has(node int) bool {
	return node >= 0 && node < len(t.slots) && t.slots[node].present
}

// put writes value at node, extending the slice up to length node+1 with
// absent slots as needed.
func (t *Implicit[V]) put(node int, value V) {
	assert(node >= 0, "implicit tree: negative node identifier")
	if node >= len(t.slots) {
		t.slots = append(t.slots, make([]slot[V], node+1-len(t.slots))...)
	}
	if !t.slots[node].present {
		t.count++
	}
	t.slots[node] = slot[V]{value: value, present: true}
}
