package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNew(t *testing.T) {
	reason := faker.Sentence()
	err := New(ErrInvalid, reason)
	require.Error(t, err)
	assert.True(t, Any(err, ErrInvalid))
	assert.True(t, CorrespondTo(err, reason))
	assert.Equal(t, ErrInvalid, New(ErrInvalid, ""))
	assert.NoError(t, New(nil, ""))
	err = Newf(ErrOutOfRange, "capacity %v", 0)
	assert.True(t, Any(err, ErrOutOfRange))
	assert.Equal(t, "out of range: capacity 0", err.Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(ErrInvalid, nil, faker.Sentence()))
	original := errors.New(faker.Word())
	err := WrapError(ErrUnexpected, original, "")
	assert.True(t, Any(err, ErrUnexpected))
	assert.True(t, errors.Is(err, original))
	err = WrapErrorf(nil, original, "element %v", 3)
	assert.True(t, Any(err, ErrUnknown))
	assert.True(t, CorrespondTo(err, "element 3"))
}

func TestIgnore(t *testing.T) {
	assert.NoError(t, Ignore(New(ErrEOF, faker.Word()), ErrEOF))
	err := New(ErrInvalid, faker.Word())
	assert.Equal(t, err, Ignore(err, ErrEOF))
}

func TestDetermineContextError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, DetermineContextError(ctx))
	cancel()
	err := DetermineContextError(ctx)
	assert.True(t, Any(err, ErrCancelled))
	assert.True(t, Any(err, context.Canceled))

	ctx, cancel = context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	assert.True(t, Any(DetermineContextError(ctx), ErrTimeout))
	assert.True(t, Any(DetermineContextError(nil), ErrUndefined)) //nolint:staticcheck // checking nil context handling
}
