package pkg

import (
	"errors"
	"fmt"
)

// Error kinds shared by use cases, repositories and handlers.
// Anything that does not wrap one of them is treated as internal.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

// KindError carries a human-readable reason and unwraps to its kind.
type KindError struct {
	kind   error
	reason string
}

func (e *KindError) Error() string { return e.reason }

func (e *KindError) Unwrap() error { return e.kind }

func NotFound(format string, args ...any) error {
	return &KindError{kind: ErrNotFound, reason: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...any) error {
	return &KindError{kind: ErrInvalidArgument, reason: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &KindError{kind: ErrConflict, reason: fmt.Sprintf(format, args...)}
}
