package fold

import (
	"context"
	"iter"
	"slices"

	"github.com/ARM-software/golang-folds/commonerrors"
)

// Run traverses s once, stepping f with every element in order, and returns the result.
func Run[A, B, M any](f IFold[A, B, M], s iter.Seq[A]) B {
	state := f.Init()
	for x := range s {
		f.Step(&state, x)
	}
	return f.Output(state)
}

// RunSlice is like Run but over a slice.
func RunSlice[A, B, M any](f IFold[A, B, M], xs []A) B {
	return Run(f, slices.Values(xs))
}

// RunWithContext is like Run but stops pulling elements as soon as the context is done. The
// result so far is then returned together with the context error.
func RunWithContext[A, B, M any](ctx context.Context, f IFold[A, B, M], s iter.Seq[A]) (result B, err error) {
	state := f.Init()
	for x := range s {
		err = commonerrors.DetermineContextError(ctx)
		if err != nil {
			break
		}
		f.Step(&state, x)
	}
	result = f.Output(state)
	return
}

// RunChannel folds the elements received from ch until it is closed or the context is done. In
// the latter case, the result so far is returned together with the context error.
func RunChannel[A, B, M any](ctx context.Context, f IFold[A, B, M], ch <-chan A) (result B, err error) {
	state := f.Init()
	err = commonerrors.DetermineContextError(ctx)
	for err == nil {
		select {
		case <-ctx.Done():
			err = commonerrors.DetermineContextError(ctx)
		case x, ok := <-ch:
			if !ok {
				result = f.Output(state)
				return
			}
			f.Step(&state, x)
		}
	}
	result = f.Output(state)
	return
}

// Scan returns a sequence yielding the running result of f after every element of s.
//
// Output is evaluated after every step, so f must leave its state usable after Output, as the
// folds of this package do. Yielded values may share memory with the running state (e.g.
// slices): copy them if they are retained while iterating.
func Scan[A, B, M any](f IFold[A, B, M], s iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		state := f.Init()
		for x := range s {
			f.Step(&state, x)
			if !yield(f.Output(state)) {
				return
			}
		}
	}
}
