package segtree

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp look into unexported fields of client value types.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

type parentChainChecker interface {
	Check() error
}

// Check validates that every inner node holds the combination of its
// children's aggregates. Values are compared with cmp.Equal.
//
// Check is meant for tests; it visits every node of the tree.
func (st *SegmentTree[T]) Check() error {
	if err := checkBacking(st.tree); err != nil {
		return err
	}
	var err error
	st.eachInner(func(node, lo, hi int) bool {
		want := st.op.Combine(st.value(st.tree.Child(node, 0)), st.value(st.tree.Child(node, 1)))
		if got := st.value(node); !cmp.Equal(got, want, exportAll) {
			err = fmt.Errorf("%w: node %d [%d,%d] holds %v, children combine to %v",
				ErrInvariant, node, lo, hi, got, want)
			return false
		}
		return true
	})
	if err != nil {
		tracer().Errorf("segment tree check: %v", err)
	}
	return err
}

func (st *SegmentTree[T]) eachInner(fn func(node, lo, hi int) bool) {
	st.EachNode(func(info NodeInfo) bool {
		if info.IsLeaf() {
			return true
		}
		return fn(info.ID, info.Left, info.Right)
	})
}

// Check validates the lazy propagation invariants: leaves are never dirty,
// and every inner node holds the combination of its children's aggregates,
// after applying the node's pending delta to them if it is dirty.
//
// Check is meant for tests; it visits every node of the tree and does not
// sift.
func (lt *LazySegmentTree[T, D]) Check() error {
	if err := checkBacking(lt.tree); err != nil {
		return err
	}
	var err error
	lt.EachNode(func(info NodeInfo) bool {
		c := lt.get(info.ID)
		if info.IsLeaf() {
			if c.dirty {
				err = fmt.Errorf("%w: leaf %d [%d,%d] holds a pending delta",
					ErrInvariant, info.ID, info.Left, info.Right)
			}
			return err == nil
		}
		middleLeft, middleRight := splitRange(info.Left, info.Right)
		l := lt.get(lt.tree.Child(info.ID, 0)).value
		r := lt.get(lt.tree.Child(info.ID, 1)).value
		if c.dirty {
			l = lt.sifter(l, c.pending, middleLeft-info.Left+1)
			r = lt.sifter(r, c.pending, info.Right-middleRight+1)
		}
		if want := lt.op.Combine(l, r); !cmp.Equal(c.value, want, exportAll) {
			err = fmt.Errorf("%w: node %d [%d,%d] holds %v, children combine to %v",
				ErrInvariant, info.ID, info.Left, info.Right, c.value, want)
		}
		return err == nil
	})
	if err != nil {
		tracer().Errorf("lazy segment tree check: %v", err)
	}
	return err
}

func checkBacking(backing any) error {
	if c, ok := backing.(parentChainChecker); ok {
		if err := c.Check(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvariant, err)
		}
	}
	return nil
}
