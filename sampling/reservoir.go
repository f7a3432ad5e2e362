/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package sampling provides folds keeping a uniform random sample of a stream of unknown length.
package sampling

import (
	"slices"

	"github.com/ARM-software/golang-folds/commonerrors"
)

// ReservoirState is the state of a Reservoir run.
type ReservoirState[T any] struct {
	// Sample holds at most the capacity of the reservoir.
	Sample []T
	// Seen is the number of elements stepped so far.
	Seen int
}

// Reservoir keeps a uniform random sample of fixed capacity k (Algorithm R): after n elements, each
// of them is in the sample with probability min(k, n)/n. Memory is bounded by k whatever the length of the stream.
// It implements fold.IFold[T, []T, ReservoirState[T]]. Runs of a reservoir, including concurrent
// ones, each own their sample and only share the random source.
type Reservoir[T any] struct {
	capacity int
	source   IRandomSource
}

// NewReservoir returns a reservoir sampler of the given capacity drawing from source.
func NewReservoir[T any](capacity int, source IRandomSource) (*Reservoir[T], error) {
	if capacity < 1 {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "reservoir capacity must be at least 1 (got %v)", capacity)
	}
	if source == nil {
		return nil, commonerrors.UndefinedParameter("random source")
	}
	return &Reservoir[T]{
		capacity: capacity,
		source:   source,
	}, nil
}

// Capacity returns the maximum size of the sample.
func (r *Reservoir[T]) Capacity() int {
	return r.capacity
}

func (r *Reservoir[T]) Init() ReservoirState[T] {
	return ReservoirState[T]{
		Sample: make([]T, 0, r.capacity),
	}
}

func (r *Reservoir[T]) Step(state *ReservoirState[T], x T) {
	state.Seen++
	if len(state.Sample) < r.capacity {
		state.Sample = append(state.Sample, x)
		return
	}
	j := r.source.IntRange(1, state.Seen)
	if j <= r.capacity {
		state.Sample[j-1] = x
	}
}

// Output returns a copy of the sample: min(capacity, seen) elements in no particular order.
func (r *Reservoir[T]) Output(state ReservoirState[T]) []T {
	return slices.Clone(state.Sample)
}
