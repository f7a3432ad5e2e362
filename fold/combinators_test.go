/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package fold

import (
	"iter"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-folds/collection"
	"github.com/ARM-software/golang-folds/field"
)

func isEven(x int) bool { return x%2 == 0 }

// countingSequence returns a sequence over xs recording how many elements were pulled from it.
func countingSequence[T any](xs []T, pulled *atomic.Int64) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range xs {
			pulled.Inc()
			if !yield(xs[i]) {
				return
			}
		}
	}
}

func TestPar(t *testing.T) {
	result := RunSlice(Par(Sum[int]{}, Count[int]{}), collection.Range(1, 6, nil))
	assert.Equal(t, NewPair(15, 5), result)
	total, count := result.Values()
	assert.Equal(t, 15, total)
	assert.Equal(t, 5, count)
}

func TestPar_Empty(t *testing.T) {
	result := RunSlice(Par(Min[int]{}, Max[int]{}), nil)
	assert.Nil(t, result.First)
	assert.Nil(t, result.Second)
}

func TestPar_Associativity(t *testing.T) {
	input := collection.Range(-10, 25, field.ToOptionalInt(3))
	left := RunSlice(Par(Par(Sum[int]{}, Count[int]{}), Max[int]{}), input)
	right := RunSlice(Par(Sum[int]{}, Par(Count[int]{}, Max[int]{})), input)
	assert.Equal(t, left.First.First, right.First)
	assert.Equal(t, left.First.Second, right.Second.First)
	assert.Equal(t, left.Second, right.Second.Second)
}

func TestFilter(t *testing.T) {
	input := collection.Range(1, 7, nil)
	assert.Equal(t, 12, RunSlice(Filter(Sum[int]{}, isEven), input))
	assert.Equal(t, 3, RunSlice(Filter(Count[int]{}, isEven), input))
	assert.Equal(t, 9, RunSlice(Reject(Sum[int]{}, isEven), input))
	assert.Equal(t, 0, RunSlice(Filter(Count[int]{}, func(int) bool { return false }), input))
}

func TestFilter_RejectedElementsLeaveStateUntouched(t *testing.T) {
	f := Filter(Last[int]{}, isEven)
	state := f.Init()
	f.Step(&state, 2)
	f.Step(&state, 3)
	require.NotNil(t, f.Output(state))
	assert.Equal(t, 2, *f.Output(state))
}

func TestPostMap(t *testing.T) {
	average := PostMap(Par(PreMap(Sum[float64]{}, func(x int) float64 { return float64(x) }), Count[int]{}),
		func(p Pair[float64, int]) float64 { return p.First / float64(p.Second) })
	assert.InDelta(t, 4.0, RunSlice(average, []int{2, 4, 6}), 1e-9)
}

func TestPreMap(t *testing.T) {
	lengths := PreMap(Sum[int]{}, func(s string) int { return len(s) })
	words := []string{faker.Word(), faker.Word(), faker.Word()}
	assert.Equal(t, len(strings.Join(words, "")), RunSlice(lengths, words))
}

func TestIdentityLaws(t *testing.T) {
	input := collection.Range(-50, 50, field.ToOptionalInt(7))
	expected := RunSlice(Sum[int]{}, input)
	assert.Equal(t, expected, RunSlice(PostMap(Sum[int]{}, collection.IdentityMapFunc[int]()), input))
	assert.Equal(t, expected, RunSlice(PreMap(Sum[int]{}, collection.IdentityMapFunc[int]()), input))
	assert.Equal(t, expected, RunSlice(Filter(Sum[int]{}, func(int) bool { return true }), input))

	expectedMax := RunSlice(Max[int]{}, input)
	require.NotNil(t, expectedMax)
	actualMax := RunSlice(PostMap(Max[int]{}, collection.IdentityMapFunc[*int]()), input)
	require.NotNil(t, actualMax)
	assert.Equal(t, *expectedMax, *actualMax)
}

func TestSinglePass(t *testing.T) {
	input := collection.Range(0, 1000, nil)
	pulled := atomic.NewInt64(0)
	stepped := atomic.NewInt64(0)
	observed := PreMap(Count[int]{}, func(x int) int {
		stepped.Inc()
		return x
	})
	f := Par(Par(Sum[int]{}, observed), Par(Filter(Min[int]{}, isEven), Reject(Max[int]{}, isEven)))
	result := Run(f, countingSequence(input, pulled))
	assert.Equal(t, int64(len(input)), pulled.Load())
	assert.Equal(t, int64(len(input)), stepped.Load())
	assert.Equal(t, 499500, result.First.First)
	assert.Equal(t, 1000, result.First.Second)
	assert.Equal(t, 0, *result.Second.First)
	assert.Equal(t, 999, *result.Second.Second)
}

func TestCombinators_AreReusable(t *testing.T) {
	f := Par(Collect[int]{}, Count[int]{})
	first := RunSlice(f, []int{1, 2})
	second := RunSlice(f, []int{3})
	assert.Equal(t, []int{1, 2}, first.First)
	assert.Equal(t, []int{3}, second.First)
	assert.Equal(t, 1, second.Second)
}
