/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package fold provides composable single-pass reductions.
//
// A fold is a value describing how to reduce a sequence: it creates a private state, updates it
// once per element and converts it into a result at the end. Folds are combined with combinators
// (PostMap, PreMap, Filter, Par, ...) without any iteration taking place; a driver (Run, RunSequence,
// Accumulator, ...) then traverses the input exactly once, threading a single state value through
// every step, whatever the number of folds combined.
package fold

//go:generate mockgen -source=fold.go -destination=../mocks/mock_$GOPACKAGE.go -package=mocks

// IFold describes a single-pass reduction of elements of type A into a result of type B, using an
// intermediate state of type M which is never observable outside a run.
//
// Implementations are immutable and can be reused for any number of runs, including concurrent
// ones, as long as each run owns the state it was given by Init.
type IFold[A, B, M any] interface {
	// Init returns a fresh state in which no element has been observed. Two states returned by Init
	// never share mutable data.
	Init() M
	// Step incorporates one element into the state.
	Step(state *M, x A)
	// Output converts the state into the result. It is called once, after the last Step: the state
	// must be considered consumed afterwards and stepping it again is a precondition violation.
	Output(state M) B
}

// Pair holds the states or the results of two folds run side by side.
type Pair[T1, T2 any] struct {
	First  T1
	Second T2
}

// NewPair returns a pair.
func NewPair[T1, T2 any](first T1, second T2) Pair[T1, T2] {
	return Pair[T1, T2]{First: first, Second: second}
}

// Values returns both elements of the pair.
func (p Pair[T1, T2]) Values() (T1, T2) {
	return p.First, p.Second
}
