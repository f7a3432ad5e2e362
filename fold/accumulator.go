package fold

import (
	"iter"

	"github.com/ARM-software/golang-folds/commonerrors"
)

// Accumulator runs a fold over elements pushed one at a time, e.g. from callbacks, instead of
// pulling them from a sequence. It is not safe for concurrent use.
type Accumulator[A, B, M any] struct {
	fold      IFold[A, B, M]
	state     M
	seen      int
	finalised bool
}

// NewAccumulator starts a run of f.
func NewAccumulator[A, B, M any](f IFold[A, B, M]) (*Accumulator[A, B, M], error) {
	if f == nil {
		return nil, commonerrors.UndefinedParameter("fold")
	}
	return &Accumulator[A, B, M]{
		fold:  f,
		state: f.Init(),
	}, nil
}

// Add steps the fold with x.
func (a *Accumulator[A, B, M]) Add(x A) error {
	if a.finalised {
		return commonerrors.New(commonerrors.ErrInvalid, "cannot add elements to a finalised accumulator")
	}
	a.fold.Step(&a.state, x)
	a.seen++
	return nil
}

// AddAll steps the fold with every element of s.
func (a *Accumulator[A, B, M]) AddAll(s iter.Seq[A]) error {
	for x := range s {
		err := a.Add(x)
		if err != nil {
			return err
		}
	}
	return nil
}

// Seen returns the number of elements added so far.
func (a *Accumulator[A, B, M]) Seen() int {
	return a.seen
}

// Result finalises the run and returns its result. It can only be called once.
func (a *Accumulator[A, B, M]) Result() (result B, err error) {
	if a.finalised {
		err = commonerrors.New(commonerrors.ErrInvalid, "accumulator result was already retrieved")
		return
	}
	a.finalised = true
	result = a.fold.Output(a.state)
	var zero M
	a.state = zero
	return
}
