package errortest

import (
	"testing"

	"github.com/ARM-software/golang-folds/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrUndefined, commonerrors.ErrInvalid, commonerrors.ErrCancelled, commonerrors.ErrUndefined)
	AssertError(t, commonerrors.Newf(commonerrors.ErrInvalid, "capacity %v", 0), commonerrors.ErrInvalid)
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrUndefined, commonerrors.ErrInvalid, commonerrors.ErrUndefined)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.New(commonerrors.ErrInvalid, "capacity must be positive"), "capacity")
}
