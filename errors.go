package stackpool

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by Pop in checked mode when the head is the
	// empty-stack sentinel.
	ErrEmptyStack = errors.New("pop on empty stack")
)

// ErrInvalidHandle indicates that an operation received a handle that does
// not designate a currently live node as its precondition requires. This is
// a programmer-contract violation, not a transient fault; retrying cannot
// succeed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidHandle struct {
	Op     string
	Handle Handle
	cause  error
}

func (e *ErrInvalidHandle) Error() string {
	return fmt.Sprintf("%s: invalid handle %d", e.Op, e.Handle)
}

func (e *ErrInvalidHandle) Unwrap() error { return e.cause }
