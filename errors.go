package segtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("segtree: invalid configuration")
	// ErrEmptySequence signals construction from a sequence without values.
	ErrEmptySequence = errors.New("segtree: empty sequence")
	// ErrShortSequence signals a source delivering fewer values than announced.
	ErrShortSequence = errors.New("segtree: sequence shorter than announced")
	// ErrInvariant signals a node aggregate not matching its children.
	ErrInvariant = errors.New("segtree: invariant violated")
)
