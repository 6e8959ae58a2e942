package sparse

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/npillmayer/segtree/operator"
)

// ErrInvalidInput signals missing data or a missing operator.
var ErrInvalidInput = errors.New("sparse: invalid input")

// Table answers range aggregate queries over a fixed slice of values.
//
// levels[k][i] holds the aggregate of the 2^k values starting at index i.
type Table[T any] struct {
	levels [][]T
	op     operator.Operator[T]
}

// Compute builds a table over data. data is copied.
func Compute[T any](data []T, op operator.Operator[T]) (*Table[T], error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operator is required", ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrInvalidInput)
	}
	n := len(data)
	levels := make([][]T, 0, log2(n)+1)
	levels = append(levels, append([]T(nil), data...))
	for k := 1; k <= log2(n); k++ {
		prev, half := levels[k-1], 1<<(k-1)
		level := make([]T, n-(1<<k)+1)
		for i := range level {
			level[i] = op.Combine(prev[i], prev[i+half])
		}
		levels = append(levels, level)
	}
	tracer().Debugf("sparse table: %d values, %d levels", n, len(levels))
	return &Table[T]{levels: levels, op: op}, nil
}

// Len returns the number of values in the table.
func (t *Table[T]) Len() int {
	return len(t.levels[0])
}

// Query returns the aggregate of all values with index in [left, right].
//
// Query panics unless 0 <= left <= right < Len().
func (t *Table[T]) Query(left, right int) T {
	assert(left >= 0 && left <= right, "sparse table query: invalid range")
	assert(right < t.Len(), "sparse table query: right index out of bounds")
	var acc T
	first := true
	for k := log2(right - left + 1); k >= 0; k-- {
		if left+(1<<k)-1 > right {
			continue
		}
		if first {
			acc, first = t.levels[k][left], false
		} else {
			acc = t.op.Combine(acc, t.levels[k][left])
		}
		left += 1 << k
	}
	return acc
}

// log2 returns floor(log2(n)) for n > 0.
func log2(n int) int {
	return bits.Len(uint(n)) - 1
}
