package segtree

import (
	"iter"
	"slices"
)

// Source is a finite sequence of values of known length, consumed from its
// tail. Len reports the number of values not yet consumed; construction reads
// it once before taking any value.
type Source[T any] interface {
	Len() int
	NextBack() (T, bool)
}

type sliceSource[T any] struct {
	values []T
	end    int
}

// Slice returns a Source over values. The slice is read, never modified.
func Slice[T any](values []T) Source[T] {
	return &sliceSource[T]{values: values, end: len(values)}
}

// Collect drains seq and returns a Source over the collected values.
// seq must be finite.
func Collect[T any](seq iter.Seq[T]) Source[T] {
	return Slice(slices.Collect(seq))
}

func (s *sliceSource[T]) Len() int {
	return s.end
}

func (s *sliceSource[T]) NextBack() (T, bool) {
	if s.end == 0 {
		var zero T
		return zero, false
	}
	s.end--
	return s.values[s.end], true
}

// mappedSource converts values of a Source on the fly.
type mappedSource[S, T any] struct {
	src Source[S]
	f   func(S) T
}

func (m mappedSource[S, T]) Len() int {
	return m.src.Len()
}

func (m mappedSource[S, T]) NextBack() (T, bool) {
	v, ok := m.src.NextBack()
	if !ok {
		var zero T
		return zero, false
	}
	return m.f(v), true
}
