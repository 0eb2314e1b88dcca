package engine

import "github.com/ayoisaiah/countdown/internal/apperr"

var (
	// ErrInvalidInput is returned when a field value is negative or outside
	// its allowed range. The configured duration is left unchanged.
	ErrInvalidInput = &apperr.Error{
		Message: "invalid input",
	}

	// ErrInvalidOperation is returned when an intent is not allowed in the
	// current state.
	ErrInvalidOperation = &apperr.Error{
		Message: "invalid operation",
	}

	errFieldRange = &apperr.Error{
		Message: "%s must be between %d and %d (got %d)",
	}

	errNotEditable = &apperr.Error{
		Message: "the duration can only be changed while the timer is reset",
	}

	errUnknownField = &apperr.Error{
		Message: "unknown field %d",
	}

	errClosed = &apperr.Error{
		Message: "the timer has been closed",
	}
)
