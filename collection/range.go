package collection

import (
	"iter"
	"math"

	"github.com/ARM-software/golang-folds/field"
	"github.com/ARM-software/golang-folds/safecast"
)

// Range returns a slice of numbers similar to Python's built-in range().
// https://docs.python.org/2/library/functions.html#range
//
//	Note: The stop value is always exclusive. The step defaults to 1.
func Range[T safecast.INumber](start, stop T, step *T) (result []T) {
	it, length := rangeSequence(start, stop, step)
	result = make([]T, 0, length)
	for v := range it {
		result = append(result, v)
	}
	return
}

// RangeSequence returns an iterator over a range. It is the usual way of feeding
// synthetic sequences to folds.
func RangeSequence[T safecast.INumber](start, stop T, step *T) iter.Seq[T] {
	it, _ := rangeSequence(start, stop, step)
	return it
}

func rangeSequence[T safecast.INumber](start, stop T, step *T) (it iter.Seq[T], length int) {
	s := field.Optional(step, T(1))
	length = determineRangeLength(start, stop, s)
	it = func(yield func(T) bool) {
		v := start
		for i := 0; i < length; i++ {
			if !yield(v) {
				return
			}
			v += s
		}
	}
	return
}

func determineRangeLength[T safecast.INumber](start, stop, step T) int {
	switch {
	case step > 0 && start < stop:
		return safecast.ToInt(math.Ceil(safecast.ToFloat64(stop-start) / safecast.ToFloat64(step)))
	case step < 0 && start > stop:
		return safecast.ToInt(math.Ceil(safecast.ToFloat64(start-stop) / -safecast.ToFloat64(step)))
	default:
		return 0
	}
}
