// Package errors is the error toolkit of the shop backend. Adapters wrap
// SDK failures here (Firestore, Firebase, Mailjet, Pub/Sub) so the stack of
// the failing call reaches the 5xx logs; matching stays on the stdlib.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel without a stack. Sentinels are compared, never logged alone.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and the caller's stack. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on an SDK error returned unchanged.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error with a stack, for failures that have no SDK cause.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
