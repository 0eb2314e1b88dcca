// Package apperr defines the error type shared by countdown packages
package apperr

import "fmt"

// Error is an application error with a user-facing message. Package-level
// values act as sentinels; Fmt and Wrap derive new errors that still match
// their sentinel with errors.Is.
type Error struct {
	Message string
	Cause   error
	parent  *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		parent:  e.root(),
	}
}

// Wrap returns a copy of the error that records err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		parent:  e.root(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.root()
}

func (e *Error) root() *Error {
	if e.parent != nil {
		return e.parent
	}

	return e
}
