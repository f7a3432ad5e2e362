/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package fold

import (
	"cmp"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ARM-software/golang-folds/collection"
	"github.com/ARM-software/golang-folds/commonerrors"
	"github.com/ARM-software/golang-folds/field"
	"github.com/ARM-software/golang-folds/safecast"
)

// Sum adds up the elements. Overflow follows the arithmetic of T.
type Sum[T safecast.INumber] struct{}

func (Sum[T]) Init() (total T) { return }

func (Sum[T]) Step(state *T, x T) { *state += x }

func (Sum[T]) Output(state T) T { return state }

// Count counts the elements, whatever their value.
type Count[A any] struct{}

func (Count[A]) Init() int { return 0 }

func (Count[A]) Step(state *int, _ A) { *state++ }

func (Count[A]) Output(state int) int { return state }

// Min determines the smallest element according to the natural ordering (see cmp.Less).
// The result is nil if no element was seen.
type Min[T cmp.Ordered] struct{}

func (Min[T]) Init() *T { return nil }

func (Min[T]) Step(state **T, x T) { keepExtremum(state, x, cmp.Less[T]) }

func (Min[T]) Output(state *T) *T { return copyOptional(state) }

// Max determines the largest element according to the natural ordering (see cmp.Less).
// The result is nil if no element was seen.
type Max[T cmp.Ordered] struct{}

func (Max[T]) Init() *T { return nil }

func (Max[T]) Step(state **T, x T) {
	keepExtremum(state, x, func(candidate, current T) bool { return cmp.Less(current, candidate) })
}

func (Max[T]) Output(state *T) *T { return copyOptional(state) }

// ExtremumFold is the fold returned by MinFunc and MaxFunc.
type ExtremumFold[T any] struct {
	moreExtreme func(candidate, current T) bool
}

// MinFunc is like Min but orders elements using compare, which returns a negative number when
// a < b, a positive number when a > b and zero otherwise (see slices.SortFunc).
// Among equal minima, the first one seen is kept.
func MinFunc[T any](compare func(a, b T) int) ExtremumFold[T] {
	return ExtremumFold[T]{moreExtreme: func(candidate, current T) bool { return compare(candidate, current) < 0 }}
}

// MaxFunc is like Max but orders elements using compare. Among equal maxima, the first one seen is kept.
func MaxFunc[T any](compare func(a, b T) int) ExtremumFold[T] {
	return ExtremumFold[T]{moreExtreme: func(candidate, current T) bool { return compare(candidate, current) > 0 }}
}

func (f ExtremumFold[T]) Init() *T { return nil }

func (f ExtremumFold[T]) Step(state **T, x T) { keepExtremum(state, x, f.moreExtreme) }

func (f ExtremumFold[T]) Output(state *T) *T { return copyOptional(state) }

// keepExtremum replaces the current extremum only when the candidate is strictly more extreme.
func keepExtremum[T any](state **T, x T, moreExtreme func(candidate, current T) bool) {
	switch {
	case *state == nil:
		*state = field.ToOptional(x)
	case moreExtreme(x, **state):
		**state = x
	}
}

func copyOptional[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return field.ToOptional(*v)
}

// First keeps the first element seen; nil if there was none.
type First[T any] struct{}

func (First[T]) Init() *T { return nil }

func (First[T]) Step(state **T, x T) {
	if *state == nil {
		*state = field.ToOptional(x)
	}
}

func (First[T]) Output(state *T) *T { return copyOptional(state) }

// Last keeps the last element seen; nil if there was none.
type Last[T any] struct{}

func (Last[T]) Init() *T { return nil }

func (Last[T]) Step(state **T, x T) {
	if *state == nil {
		*state = field.ToOptional(x)
		return
	}
	**state = x
}

func (Last[T]) Output(state *T) *T { return copyOptional(state) }

// Collect gathers every element, in order.
//
// Its memory grows linearly with the input: it is not suitable for unbounded streams and mostly
// serves as a building block in tests and for small inputs. Prefer a sampling fold otherwise.
type Collect[T any] struct{}

func (Collect[T]) Init() []T { return make([]T, 0) }

func (Collect[T]) Step(state *[]T, x T) { *state = append(*state, x) }

func (Collect[T]) Output(state []T) []T { return state }

// CountDistinct counts the distinct elements exactly.
//
// Every distinct element is kept in the state, so memory grows with the cardinality of the input.
type CountDistinct[T comparable] struct{}

func (CountDistinct[T]) Init() mapset.Set[T] { return mapset.NewThreadUnsafeSet[T]() }

func (CountDistinct[T]) Step(state *mapset.Set[T], x T) { (*state).Add(x) }

func (CountDistinct[T]) Output(state mapset.Set[T]) int { return state.Cardinality() }

// ReduceFold is the fold returned by Reduce.
type ReduceFold[A, B any] struct {
	newAccumulator func() B
	reducer        collection.ReduceFunc[A, B]
}

// Reduce lifts an ordinary reducer into a fold. newAccumulator is called by every Init so that
// runs never share an accumulator holding references.
func Reduce[A, B any](newAccumulator func() B, reducer collection.ReduceFunc[A, B]) (f ReduceFold[A, B], err error) {
	if newAccumulator == nil {
		err = commonerrors.UndefinedParameter("accumulator constructor")
		return
	}
	if reducer == nil {
		err = commonerrors.UndefinedParameter("reducer")
		return
	}
	f = ReduceFold[A, B]{newAccumulator: newAccumulator, reducer: reducer}
	return
}

func (f ReduceFold[A, B]) Init() B { return f.newAccumulator() }

func (f ReduceFold[A, B]) Step(state *B, x A) { *state = f.reducer(*state, x) }

func (f ReduceFold[A, B]) Output(state B) B { return state }
