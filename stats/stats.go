/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package stats provides descriptive statistics computed in a single pass, built from the folds of package fold.
package stats

import (
	"math"

	"github.com/ARM-software/golang-folds/fold"
	"github.com/ARM-software/golang-folds/safecast"
)

// Mean returns a fold computing the arithmetic mean of numbers. The mean of no number is NaN.
func Mean[T safecast.INumber]() fold.IFold[T, float64, fold.Pair[float64, int]] {
	return fold.PostMap(
		fold.Par(fold.PreMap(fold.Sum[float64]{}, safecast.ToFloat64[T]), fold.Count[T]{}),
		average,
	)
}

func average(totalAndCount fold.Pair[float64, int]) float64 {
	total, count := totalAndCount.Values()
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}

// Summary describes the distribution of a sample. Statistics which are undefined for the sample
// (e.g. the variance of a single value) are NaN.
type Summary struct {
	Count int
	Mean  float64
	// Variance is the sample (unbiased) variance.
	Variance float64
	Skewness float64
	// Kurtosis is the non-excess kurtosis: 3 for a normal distribution.
	Kurtosis float64
}

// MomentsState holds the count, the mean and the sums of the powers of the deviations from the mean.
type MomentsState struct {
	N    int
	Mean float64
	M2   float64
	M3   float64
	M4   float64
}

// Moments returns a fold computing the first four moments of numbers using numerically stable
// online updates (https://web.archive.org/web/20140423031833/http://people.xiph.org/~tterribe/notes/homs.html).
func Moments[T safecast.INumber]() fold.IFold[T, Summary, MomentsState] {
	return fold.PostMap(fold.PreMap(centralMoments{}, safecast.ToFloat64[T]), summarise)
}

type centralMoments struct{}

func (centralMoments) Init() MomentsState { return MomentsState{} }

func (centralMoments) Step(state *MomentsState, x float64) {
	n1 := float64(state.N)
	state.N++
	n := float64(state.N)
	delta := x - state.Mean
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1
	state.Mean += deltaN
	// M4 and M3 use the previous M2 and M3.
	state.M4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*state.M2 - 4*deltaN*state.M3
	state.M3 += term1*deltaN*(n-2) - 3*deltaN*state.M2
	state.M2 += term1
}

func (centralMoments) Output(state MomentsState) MomentsState { return state }

func summarise(state MomentsState) Summary {
	summary := Summary{
		Count:    state.N,
		Mean:     math.NaN(),
		Variance: math.NaN(),
		Skewness: math.NaN(),
		Kurtosis: math.NaN(),
	}
	if state.N == 0 {
		return summary
	}
	summary.Mean = state.Mean
	if state.N < 2 {
		return summary
	}
	n := float64(state.N)
	summary.Variance = state.M2 / (n - 1)
	if state.M2 == 0 {
		return summary
	}
	summary.Skewness = math.Sqrt(n) * state.M3 / math.Pow(state.M2, 1.5)
	summary.Kurtosis = n * state.M4 / (state.M2 * state.M2)
	return summary
}
