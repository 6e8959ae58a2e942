package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/operator"
)

// Config configures a SegmentTree.
type Config[T any] struct {
	// Operator aggregates values up the tree. It must be associative.
	Operator operator.Operator[T]
}

func (cfg Config[T]) validate() error {
	if cfg.Operator == nil {
		return fmt.Errorf("%w: operator is required", ErrInvalidConfig)
	}
	return nil
}

// LazyConfig configures a LazySegmentTree.
type LazyConfig[T, D any] struct {
	// Operator aggregates values up the tree. It must be associative.
	Operator operator.Operator[T]
	// Sifter applies a delta to an aggregate covering a range of given length.
	Sifter DeltaSifter[T, D]
	// Compose is optional. If set, a delta arriving at a node which still
	// holds a pending delta is folded into it as Compose(pending, incoming).
	// If nil, the pending delta is pushed down first and then overwritten,
	// which is correct for every kind of delta but may cascade through
	// a subtree.
	Compose DeltaComposer[D]
}

func (cfg LazyConfig[T, D]) validate() error {
	if cfg.Operator == nil {
		return fmt.Errorf("%w: operator is required", ErrInvalidConfig)
	}
	if cfg.Sifter == nil {
		return fmt.Errorf("%w: delta sifter is required", ErrInvalidConfig)
	}
	return nil
}
