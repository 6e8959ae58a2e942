package segtree

import (
	"fmt"

	"github.com/npillmayer/segtree/internal/build"
	"github.com/npillmayer/segtree/tree"
)

// splitRange splits [left, right] into [left, middleLeft] and
// [middleRight, right].
func splitRange(left, right int) (middleLeft, middleRight int) {
	middleLeft = left + (right-left)/2
	return middleLeft, middleLeft + 1
}

// covers reports whether [left, right] contains [lo, hi].
func covers(left, right, lo, hi int) bool {
	return left <= lo && hi <= right
}

func checkRange(op string, left, right, length int) {
	assert(left >= 0, op+": left index negative")
	assert(left <= right, op+": left index greater than right index")
	assert(right < length, op+": right index out of bounds")
}

// fill places the subtree at node covering [left, right] bottom-up.
//
// The right subtree is built before the left one and leaves are consumed from
// the tail of values, which places values[i] at the leaf covering [i, i].
func fill[V any](b *build.Builder[V], values Source[V], combine func(l, r V) V,
	left, right, node int) error {
	//
	if left == right {
		v, ok := values.NextBack()
		if !ok {
			return fmt.Errorf("%w: no value for index %d", ErrShortSequence, left)
		}
		b.Place(node, v)
		return nil
	}
	middleLeft, middleRight := splitRange(left, right)
	leftChild, rightChild := b.Child(node, 0), b.Child(node, 1)
	if err := fill(b, values, combine, middleRight, right, rightChild); err != nil {
		return err
	}
	if err := fill(b, values, combine, left, middleLeft, leftChild); err != nil {
		return err
	}
	l, _ := b.Get(leftChild)
	r, _ := b.Get(rightChild)
	b.Place(node, combine(l, r))
	return nil
}

// construct builds a complete binary implicit tree over all values of src.
func construct[V any](src Source[V], combine func(l, r V) V) (*tree.Implicit[V], int, error) {
	length := src.Len()
	if length <= 0 {
		return nil, 0, ErrEmptySequence
	}
	b := build.NewBuilder[V](tree.BinaryWidth)
	if err := fill(b, src, combine, 0, length-1, b.Root()); err != nil {
		return nil, 0, err
	}
	implicit, err := b.Finish()
	if err != nil {
		return nil, 0, err
	}
	return implicit, length, nil
}
