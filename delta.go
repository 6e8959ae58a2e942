package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/operator"
)

// DeltaSifter produces an updated aggregate from the current aggregate of a
// node, a delta, and the length of the range the node covers.
type DeltaSifter[T, D any] func(current T, delta D, length int) T

// DeltaComposer folds an incoming delta into a delta still pending at a node.
// The result must have the effect of applying pending first, then incoming.
type DeltaComposer[D any] func(pending, incoming D) D

// AddSifter adds delta to every element of a range, for sum aggregates.
func AddSifter[T operator.Number]() DeltaSifter[T, T] {
	return func(current T, delta T, length int) T {
		return current + delta*T(length)
	}
}

// AddComposer sums two additive deltas.
func AddComposer[T operator.Number]() DeltaComposer[T] {
	return func(pending, incoming T) T {
		return pending + incoming
	}
}

// AssignSifter sets every element of a range to delta, for idempotent
// aggregates like minimum and maximum.
func AssignSifter[T any]() DeltaSifter[T, T] {
	return func(_ T, delta T, _ int) T {
		return delta
	}
}

// AssignComposer keeps the later of two assignments.
func AssignComposer[T any]() DeltaComposer[T] {
	return func(_, incoming T) T {
		return incoming
	}
}

// cell is the value of a lazy tree node. pending is meaningful only if dirty
// is set; it has already been applied to value but not to the children.
type cell[T, D any] struct {
	value   T
	pending D
	dirty   bool
}

func (c cell[T, D]) String() string {
	if c.dirty {
		return fmt.Sprintf("%v(Δ%v)", c.value, c.pending)
	}
	return fmt.Sprintf("%v", c.value)
}
