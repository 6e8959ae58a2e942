package operator

import (
	"golang.org/x/exp/constraints"
)

// Operator is an associative binary operation on values of type T.
type Operator[T any] interface {
	Combine(left, right T) T
}

// Func adapts an ordinary function to the Operator interface.
type Func[T any] func(left, right T) T

// Combine calls f(left, right).
func (f Func[T]) Combine(left, right T) T {
	return f(left, right)
}

// Number is the set of types Sum is able to add.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns an operator adding two numbers.
func Sum[T Number]() Operator[T] {
	return Func[T](func(left, right T) T {
		return left + right
	})
}

// Min returns an operator selecting the smaller of two values.
func Min[T constraints.Ordered]() Operator[T] {
	return Func[T](func(left, right T) T {
		return min(left, right)
	})
}

// Max returns an operator selecting the larger of two values.
func Max[T constraints.Ordered]() Operator[T] {
	return Func[T](func(left, right T) T {
		return max(left, right)
	})
}

// Fold combines first and rest strictly from left to right:
//
//	op(op(op(first, rest[0]), rest[1]), …)
//
// Fold is the naive reference for every range query.
func Fold[T any](op Operator[T], first T, rest ...T) T {
	acc := first
	for _, v := range rest {
		acc = op.Combine(acc, v)
	}
	return acc
}

// IsAssociativeOn reports whether op is associative for all triples drawn
// from samples. It is a brute force check meant for tests and for validating
// client operators during development; equal compares results.
func IsAssociativeOn[T any](op Operator[T], equal func(T, T) bool, samples ...T) bool {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				l := op.Combine(op.Combine(a, b), c)
				r := op.Combine(a, op.Combine(b, c))
				if !equal(l, r) {
					tracer().Debugf("operator not associative for sample triple (%v, %v, %v)", a, b, c)
					return false
				}
			}
		}
	}
	return true
}
