package fold

import (
	"github.com/ARM-software/golang-folds/collection"
)

// PostMapFold is the fold returned by PostMap.
type PostMapFold[A, B, B2, M any] struct {
	inner IFold[A, B, M]
	post  collection.MapFunc[B, B2]
}

// PostMap returns a fold which behaves like f but whose result is transformed by g.
func PostMap[A, B, B2, M any](f IFold[A, B, M], g collection.MapFunc[B, B2]) PostMapFold[A, B, B2, M] {
	return PostMapFold[A, B, B2, M]{inner: f, post: g}
}

func (f PostMapFold[A, B, B2, M]) Init() M { return f.inner.Init() }

func (f PostMapFold[A, B, B2, M]) Step(state *M, x A) { f.inner.Step(state, x) }

func (f PostMapFold[A, B, B2, M]) Output(state M) B2 { return f.post(f.inner.Output(state)) }

// PreMapFold is the fold returned by PreMap.
type PreMapFold[A, A2, B, M any] struct {
	inner IFold[A, B, M]
	pre   collection.MapFunc[A2, A]
}

// PreMap returns a fold consuming elements of type A2, each one being converted by g before being
// handed over to f.
func PreMap[A, A2, B, M any](f IFold[A, B, M], g collection.MapFunc[A2, A]) PreMapFold[A, A2, B, M] {
	return PreMapFold[A, A2, B, M]{inner: f, pre: g}
}

func (f PreMapFold[A, A2, B, M]) Init() M { return f.inner.Init() }

func (f PreMapFold[A, A2, B, M]) Step(state *M, x A2) { f.inner.Step(state, f.pre(x)) }

func (f PreMapFold[A, A2, B, M]) Output(state M) B { return f.inner.Output(state) }

// FilterFold is the fold returned by Filter and Reject.
type FilterFold[A, B, M any] struct {
	inner     IFold[A, B, M]
	predicate collection.Predicate[A]
}

// Filter returns a fold which only hands over to f the elements satisfying the predicate.
// Rejected elements leave the state untouched; they are not even counted.
func Filter[A, B, M any](f IFold[A, B, M], predicate collection.Predicate[A]) FilterFold[A, B, M] {
	return FilterFold[A, B, M]{inner: f, predicate: predicate}
}

// Reject is the opposite of Filter: only elements not satisfying the predicate reach f.
func Reject[A, B, M any](f IFold[A, B, M], predicate collection.Predicate[A]) FilterFold[A, B, M] {
	return Filter(f, collection.OppositeFunc(predicate))
}

func (f FilterFold[A, B, M]) Init() M { return f.inner.Init() }

func (f FilterFold[A, B, M]) Step(state *M, x A) {
	if f.predicate(x) {
		f.inner.Step(state, x)
	}
}

func (f FilterFold[A, B, M]) Output(state M) B { return f.inner.Output(state) }

// ParFold is the fold returned by Par.
type ParFold[A, B1, M1, B2, M2 any] struct {
	first  IFold[A, B1, M1]
	second IFold[A, B2, M2]
}

// Par runs two folds side by side over the same traversal: every element is handed to f1 then
// to f2, and the result is the pair of both results.
//
// Elements are passed by value to each side. Elements holding references (slices, maps,
// pointers) are shared by both sides, which must therefore not modify them.
func Par[A, B1, M1, B2, M2 any](f1 IFold[A, B1, M1], f2 IFold[A, B2, M2]) ParFold[A, B1, M1, B2, M2] {
	return ParFold[A, B1, M1, B2, M2]{first: f1, second: f2}
}

func (f ParFold[A, B1, M1, B2, M2]) Init() Pair[M1, M2] {
	return NewPair(f.first.Init(), f.second.Init())
}

func (f ParFold[A, B1, M1, B2, M2]) Step(state *Pair[M1, M2], x A) {
	f.first.Step(&state.First, x)
	f.second.Step(&state.Second, x)
}

func (f ParFold[A, B1, M1, B2, M2]) Output(state Pair[M1, M2]) Pair[B1, B2] {
	return NewPair(f.first.Output(state.First), f.second.Output(state.Second))
}
