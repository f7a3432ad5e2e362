package fold

import (
	"github.com/ARM-software/golang-folds/collection"
	"github.com/ARM-software/golang-folds/commonerrors"
)

// GroupByFold is the fold returned by GroupBy.
type GroupByFold[A, B, M any, K comparable] struct {
	inner IFold[A, B, M]
	key   collection.MapFunc[A, K]
}

// GroupBy partitions the elements by key and runs an independent instance of f per key; a key's
// state is created the first time the key is seen.
//
// The state holds one sub-state per distinct key and therefore grows with the key cardinality of
// the input: it is only suitable for bounded key spaces.
func GroupBy[A, B, M any, K comparable](f IFold[A, B, M], key collection.MapFunc[A, K]) GroupByFold[A, B, M, K] {
	return GroupByFold[A, B, M, K]{inner: f, key: key}
}

func (f GroupByFold[A, B, M, K]) Init() map[K]M { return make(map[K]M) }

func (f GroupByFold[A, B, M, K]) Step(state *map[K]M, x A) {
	if *state == nil {
		*state = f.Init()
	}
	k := f.key(x)
	sub, found := (*state)[k]
	if !found {
		sub = f.inner.Init()
	}
	f.inner.Step(&sub, x)
	(*state)[k] = sub
}

func (f GroupByFold[A, B, M, K]) Output(state map[K]M) map[K]B {
	result := make(map[K]B, len(state))
	for k, sub := range state {
		result[k] = f.inner.Output(sub)
	}
	return result
}

// ThenFold is the fold returned by Then.
type ThenFold[A, B1, M1, B2, M2 any] struct {
	first  IFold[A, B1, M1]
	second IFold[B1, B2, M2]
}

// Then composes two folds: after every step of first, its running result is handed to second,
// i.e. second folds over the scan of first. The result is second's.
//
// Only the outputs following a step are handed to second: the output of first's initial state is
// not, so Then(Sum, Max) over an empty input yields nil rather than a pointer to 0.
//
// first's Output is evaluated after every element and must therefore leave its state usable,
// which holds for folds whose state is a plain value (Sum, Count, Min, ...).
func Then[A, B1, M1, B2, M2 any](first IFold[A, B1, M1], second IFold[B1, B2, M2]) ThenFold[A, B1, M1, B2, M2] {
	return ThenFold[A, B1, M1, B2, M2]{first: first, second: second}
}

func (f ThenFold[A, B1, M1, B2, M2]) Init() Pair[M1, M2] {
	return NewPair(f.first.Init(), f.second.Init())
}

func (f ThenFold[A, B1, M1, B2, M2]) Step(state *Pair[M1, M2], x A) {
	f.first.Step(&state.First, x)
	f.second.Step(&state.Second, f.first.Output(state.First))
}

func (f ThenFold[A, B1, M1, B2, M2]) Output(state Pair[M1, M2]) B2 {
	return f.second.Output(state.Second)
}

// BatchedFold is the fold returned by Batched.
type BatchedFold[A, B, M any] struct {
	inner IFold[A, B, M]
}

// Batched returns a fold consuming chunks of elements, e.g. record batches read from storage.
// Each chunk is stepped element by element, in order, so the result is the same as running f
// over the concatenation of the chunks.
func Batched[A, B, M any](f IFold[A, B, M]) BatchedFold[A, B, M] {
	return BatchedFold[A, B, M]{inner: f}
}

func (f BatchedFold[A, B, M]) Init() M { return f.inner.Init() }

func (f BatchedFold[A, B, M]) Step(state *M, chunk []A) {
	for i := range chunk {
		f.inner.Step(state, chunk[i])
	}
}

func (f BatchedFold[A, B, M]) Output(state M) B { return f.inner.Output(state) }

// ManyFold is the fold returned by Many.
type ManyFold[A, B, M any] struct {
	inner IFold[A, B, M]
	width int
}

// Many runs width independent instances of f over a wide stream, e.g. the columns of a table:
// each element is a row whose i-th value is handed to the i-th instance. Values beyond width are
// ignored and lanes missing from a short row are not stepped.
func Many[A, B, M any](f IFold[A, B, M], width int) (many ManyFold[A, B, M], err error) {
	if f == nil {
		err = commonerrors.UndefinedParameter("fold")
		return
	}
	if width < 1 {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "width must be strictly positive (got %v)", width)
		return
	}
	many = ManyFold[A, B, M]{inner: f, width: width}
	return
}

func (f ManyFold[A, B, M]) Init() []M {
	lanes := make([]M, f.width)
	for i := range lanes {
		lanes[i] = f.inner.Init()
	}
	return lanes
}

func (f ManyFold[A, B, M]) Step(state *[]M, row []A) {
	lanes := *state
	for i := range min(len(lanes), len(row)) {
		f.inner.Step(&lanes[i], row[i])
	}
}

func (f ManyFold[A, B, M]) Output(state []M) []B {
	results := make([]B, len(state))
	for i := range state {
		results[i] = f.inner.Output(state[i])
	}
	return results
}
