package operator

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDefaultOperators(t *testing.T) {
	if got := Sum[int]().Combine(3, 4); got != 7 {
		t.Fatalf("expected sum 7, got %d", got)
	}
	if got := Min[uint32]().Combine(3, 4); got != 3 {
		t.Fatalf("expected min 3, got %d", got)
	}
	if got := Max[float64]().Combine(3.5, -4); got != 3.5 {
		t.Fatalf("expected max 3.5, got %g", got)
	}
	if got := Max[string]().Combine("ab", "b"); got != "b" {
		t.Fatalf("expected max \"b\", got %q", got)
	}
}

func TestFoldIsLeftToRight(t *testing.T) {
	concat := Func[string](func(l, r string) string { return l + r })
	if got := Fold[string](concat, "a", "b", "c", "d"); got != "abcd" {
		t.Fatalf("expected left-to-right fold \"abcd\", got %q", got)
	}
	if got := Fold[int](Sum[int](), 42); got != 42 {
		t.Fatalf("expected single-value fold to return its input, got %d", got)
	}
}

func TestIsAssociativeOn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()

	eq := func(a, b int) bool { return a == b }
	samples := []int{-3, 0, 1, 7, 12}
	if !IsAssociativeOn(Sum[int](), eq, samples...) {
		t.Errorf("expected sum to be associative")
	}
	if !IsAssociativeOn(Min[int](), eq, samples...) {
		t.Errorf("expected min to be associative")
	}
	minus := Func[int](func(l, r int) int { return l - r })
	if IsAssociativeOn[int](minus, eq, samples...) {
		t.Errorf("expected subtraction to be detected as non-associative")
	}
}
