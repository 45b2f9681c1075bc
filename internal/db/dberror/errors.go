package dberror

import (
	"errors"
)

// Error is the interface implemented by all store errors. It supports
// deriving more specific errors from the sentinel values below while keeping
// errors.Is classification against the parent intact.
type Error interface {
	error
	Unwrap() error
	Msg(msg string) Error
	Err(errs ...error) Error
}

type storeError struct {
	msg string
	err error
}

func (e *storeError) Error() string {
	return e.msg
}

func (e *storeError) Unwrap() error {
	return e.err
}

// Msg derives a new error with the given message, chained to e.
func (e *storeError) Msg(msg string) Error {
	return &storeError{
		msg: msg,
		err: e,
	}
}

// Err derives a new error carrying the same message and wrapping both e and
// the supplied causes.
func (e *storeError) Err(errs ...error) Error {
	chain := append([]error{error(e)}, errs...)
	return &storeError{
		msg: e.msg,
		err: errors.Join(chain...),
	}
}

func New(msg string) Error {
	return &storeError{
		msg: msg,
	}
}

var (
	ErrDatabase      Error = New("db error")
	ErrNotFound      Error = ErrDatabase.Msg("not found")
	ErrInvalidInput  Error = ErrDatabase.Msg("invalid input")
	ErrConfiguration Error = New("store configuration error")
)
