/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types returned by the fold packages and helpers to wrap and compare them.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const typeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrEmpty          = errors.New("empty")
	ErrOutOfRange     = errors.New("out of range")
	ErrTimeout        = errors.New("timeout")
	ErrCancelled      = errors.New("cancelled")
	ErrEOF            = errors.New("end of file")
	ErrNoLogger       = errors.New("missing logger")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// New creates a new error of type `errorType` with a reason.
func New(errorType error, reason string) error {
	if errorType == nil {
		if reason == "" {
			return nil
		}
		return errors.New(reason)
	}
	if reason == "" {
		return errorType
	}
	return fmt.Errorf("%w%v %v", errorType, string(typeReasonErrorSeparator), reason)
}

// Newf is similar to New but allows to format the reason.
func Newf(errorType error, msgFormat string, args ...any) error {
	return New(errorType, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error `originalError` into an error of type `targetErrorType` and adds some context.
// If originalError is nil, nil is returned.
func WrapError(targetErrorType, originalError error, message string) error {
	if originalError == nil {
		return nil
	}
	if targetErrorType == nil {
		targetErrorType = ErrUnknown
	}
	if message == "" {
		return fmt.Errorf("%w%v %w", targetErrorType, string(typeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", targetErrorType, string(typeReasonErrorSeparator), message, string(typeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but allows to format the message.
func WrapErrorf(targetErrorType, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetErrorType, originalError, fmt.Sprintf(msgFormat, args...))
}

// Ignore returns nil if `target` is of any of the `ignore` types, the original error otherwise.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// UndefinedParameter returns an undefined error for the parameter described.
func UndefinedParameter(parameterDescription string) error {
	return New(ErrUndefined, parameterDescription)
}

// ConvertContextError converts a context error into a common error.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case Any(err, context.DeadlineExceeded):
		return WrapError(ErrTimeout, err, "")
	case Any(err, context.Canceled):
		return WrapError(ErrCancelled, err, "")
	default:
		return err
	}
}

// DetermineContextError returns the error of a context converted into a common error, or nil if the context is still live.
func DetermineContextError(ctx context.Context) error {
	if ctx == nil {
		return UndefinedParameter("context")
	}
	return ConvertContextError(ctx.Err())
}
