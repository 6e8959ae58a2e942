package tree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestImplicitBinaryTree(t *testing.T) {
	tree := NewImplicit[int](BinaryWidth)
	if _, ok := tree.Get(tree.Root()); ok {
		t.Fatalf("expected fresh root to be absent")
	}
	tree.SetRoot(0)
	if v, ok := tree.Get(tree.Root()); !ok || v != 0 {
		t.Fatalf("expected root value 0, got %d (present=%v)", v, ok)
	}
	if c := tree.Child(tree.Root(), 1); c != 2 {
		t.Fatalf("expected second child of root to be 2, got %d", c)
	}
	if _, ok := tree.InsertChild(0, 0, 3); !ok {
		t.Fatalf("expected insert under root to succeed")
	}
	if _, ok := tree.InsertChild(0, 1, 6); !ok {
		t.Fatalf("expected insert under root to succeed")
	}
	if v, _ := tree.Get(tree.Child(tree.Root(), 0)); v != 3 {
		t.Fatalf("expected left child 3, got %d", v)
	}
	if v, _ := tree.Get(tree.Child(tree.Root(), 1)); v != 6 {
		t.Fatalf("expected right child 6, got %d", v)
	}
	if id, ok := tree.InsertChild(1, 0, 9); !ok || id != 3 {
		t.Fatalf("expected child 3 of node 1, got %d (ok=%v)", id, ok)
	}
	if id, ok := tree.InsertChild(2, 1, 12); !ok || id != 6 {
		t.Fatalf("expected child 6 of node 2, got %d (ok=%v)", id, ok)
	}
	if _, ok := tree.InsertChild(8, 0, 0); ok {
		t.Fatalf("expected insert under absent node 8 to fail")
	}
	if p := tree.Parent(2); p != 0 {
		t.Fatalf("expected parent of 2 to be 0, got %d", p)
	}
	if tree.Len() != 5 || tree.Cap() != 7 {
		t.Fatalf("unexpected tree size len=%d cap=%d", tree.Len(), tree.Cap())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected valid parent chain, got %v", err)
	}
	if s := tree.String(); s != "Implicit(width=2)[0, 3, 6, 9, _, _, 12]" {
		t.Fatalf("unexpected rendering %q", s)
	}
}

func TestImplicitGetMut(t *testing.T) {
	tree := NewImplicit[int](BinaryWidth)
	if _, ok := tree.GetMut(0); ok {
		t.Fatalf("expected absent root")
	}
	tree.SetRoot(1)
	p, ok := tree.GetMut(0)
	if !ok {
		t.Fatalf("expected root to be present")
	}
	*p = 41
	if v, _ := tree.Get(0); v != 41 {
		t.Fatalf("expected mutation through GetMut, got %d", v)
	}
	if _, ok := tree.Get(-1); ok {
		t.Fatalf("expected negative identifier to be absent")
	}
}

func TestImplicitParentInvertsChildForAnyWidth(t *testing.T) {
	for width := 1; width <= 5; width++ {
		tree := NewImplicit[struct{}](width)
		for node := range 50 {
			for k := range width {
				child := tree.Child(node, k)
				if p := tree.Parent(child); p != node {
					t.Fatalf("width %d: parent(child(%d,%d)=%d) = %d", width, node, k, child, p)
				}
			}
		}
	}
}

func TestImplicitTernaryChildren(t *testing.T) {
	tree := NewImplicit[string](3)
	tree.SetRoot("r")
	tree.InsertChild(0, 0, "a")
	tree.InsertChild(0, 2, "c")
	got := slices.Collect(tree.Children(0))
	if !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("expected present children [1 3], got %v", got)
	}
	if id, ok := tree.InsertChild(3, 1, "cb"); !ok || id != 11 {
		t.Fatalf("expected child 11 of node 3, got %d", id)
	}
	if p := tree.Parent(11); p != 3 {
		t.Fatalf("expected parent 3 for node 11 in ternary tree, got %d", p)
	}
}

func TestImplicitPanicsOnPreconditionViolations(t *testing.T) {
	tree := NewImplicit[int](BinaryWidth)
	mustPanic(t, "child index >= width", func() { tree.Child(0, 2) })
	mustPanic(t, "parent of root", func() { tree.Parent(0) })
	mustPanic(t, "width 0", func() { NewImplicit[int](0) })
}

func TestAssembleAcceptsCompleteSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	values := []int{0, 0, 2, 0, 0, 5}
	present := []bool{true, false, true, false, false, true}
	tree, err := Assemble(BinaryWidth, values, present)
	if err != nil {
		t.Fatalf("expected complete parent chain, got %v", err)
	}
	if tree.Len() != 3 || tree.Cap() != 6 {
		t.Fatalf("unexpected tree size len=%d cap=%d", tree.Len(), tree.Cap())
	}
	if kids := slices.Collect(tree.Children(2)); !slices.Equal(kids, []int{5}) {
		t.Fatalf("expected children [5] of node 2, got %v", kids)
	}
}

func TestAssembleRejectsBrokenParentChain(t *testing.T) {
	values := []int{0, 0, 0, 0, 4}
	present := []bool{true, false, false, false, true} // parent 1 absent
	if _, err := Assemble(BinaryWidth, values, present); !errors.Is(err, ErrBrokenParentChain) {
		t.Fatalf("expected ErrBrokenParentChain, got %v", err)
	}
	if _, err := Assemble(BinaryWidth, values, present[:2]); !errors.Is(err, ErrSlotMismatch) {
		t.Fatalf("expected ErrSlotMismatch, got %v", err)
	}
}

func TestCheckDetectsBrokenParentChain(t *testing.T) {
	tree := NewImplicit[int](BinaryWidth)
	tree.SetRoot(0)
	tree.put(4, 4) // parent 1 stays absent
	if err := tree.Check(); !errors.Is(err, ErrBrokenParentChain) {
		t.Fatalf("expected ErrBrokenParentChain, got %v", err)
	}
}

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for %s", what)
		}
	}()
	fn()
}
