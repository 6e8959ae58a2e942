/*
Package build assembles implicit trees bottom-up.

Segment tree construction places leaves before their parents exist. A Builder
allows exactly that, and only while construction is in progress: Finish hands
the slots over to tree.Assemble, which validates the parent chain, and seals
the builder.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package build

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree/tree"
)

// ErrSealed signals use of a builder after Finish.
var ErrSealed = errors.New("build: builder already finished")

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// Builder collects node values in arbitrary order.
type Builder[V any] struct {
	width   int
	values  []V
	present []bool
	sealed  bool
}

// NewBuilder creates a builder for a tree with the given fanout.
func NewBuilder[V any](width int) *Builder[V] {
	if width < 1 {
		panic("build: tree width must be at least 1")
	}
	return &Builder[V]{width: width}
}

// Root returns the root identifier of the tree under construction.
func (b *Builder[V]) Root() int {
	b.mustBeOpen()
	return 0
}

// Child returns the identifier of the index-th child of node, using the same
// addressing as tree.Implicit.
func (b *Builder[V]) Child(node int, index int) int {
	b.mustBeOpen()
	if index < 0 || index >= b.width {
		panic("build: child index exceeds width")
	}
	return b.width*node + index + 1
}

// Get returns the value placed at node, if any.
func (b *Builder[V]) Get(node int) (V, bool) {
	b.mustBeOpen()
	if node < 0 || node >= len(b.values) || !b.present[node] {
		var zero V
		return zero, false
	}
	return b.values[node], true
}

// Place stores value at node regardless of whether node's parent is present.
func (b *Builder[V]) Place(node int, value V) {
	b.mustBeOpen()
	if node < 0 {
		panic("build: negative node identifier")
	}
	if node >= len(b.values) {
		n := node + 1 - len(b.values)
		b.values = append(b.values, make([]V, n)...)
		b.present = append(b.present, make([]bool, n)...)
	}
	b.values[node], b.present[node] = value, true
}

// Finish seals the builder and returns the assembled tree. It fails if a
// placed node lacks a placed parent.
func (b *Builder[V]) Finish() (*tree.Implicit[V], error) {
	b.mustBeOpen()
	b.sealed = true
	t, err := tree.Assemble(b.width, b.values, b.present)
	b.values, b.present = nil, nil
	if err != nil {
		tracer().Errorf("implicit tree build: %s", err.Error())
		return nil, err
	}
	tracer().Debugf("implicit tree built: %d nodes in %d slots", t.Len(), t.Cap())
	return t, nil
}

func (b *Builder[V]) mustBeOpen() {
	if b.sealed {
		panic(ErrSealed)
	}
}
