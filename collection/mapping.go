/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides the function types folds are built from, together with their
// counterparts working directly on sequences.
package collection

import (
	"iter"
	"slices"
)

// MapFunc defines a function that maps a value of type T1 to type T2.
type MapFunc[T1, T2 any] func(T1) T2

// IdentityMapFunc returns a mapping function that returns its input unchanged.
func IdentityMapFunc[T any]() MapFunc[T, T] {
	return func(i T) T { return i }
}

// ComposeMapFunc returns a mapping function applying f and then g.
func ComposeMapFunc[T1, T2, T3 any](f MapFunc[T1, T2], g MapFunc[T2, T3]) MapFunc[T1, T3] {
	return func(i T1) T3 { return g(f(i)) }
}

// MapSequence maps each element of s using f and returns a sequence of mapped values.
// The sequence is lazy: f is only evaluated when the consumer pulls a value.
func MapSequence[T1, T2 any](s iter.Seq[T1], f MapFunc[T1, T2]) iter.Seq[T2] {
	return func(yield func(T2) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Map applies f to each element of s and returns a slice with the results.
func Map[T1, T2 any](s []T1, f MapFunc[T1, T2]) []T2 {
	return slices.Collect(MapSequence(slices.Values(s), f))
}
