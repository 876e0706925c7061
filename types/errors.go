package types

import (
	"errors"
	"fmt"
)

// ErrInvalidAction matches every *InvalidActionError with errors.Is
var ErrInvalidAction = errors.New("invalid action")

// InvalidActionError is returned by engines when an action cannot be interpreted
type InvalidActionError struct {
	Action any
	Reason string
}

func NewInvalidActionError(action any, reason string) *InvalidActionError {
	return &InvalidActionError{
		Action: action,
		Reason: reason,
	}
}

func (e *InvalidActionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid action: %v", e.Action)
	}
	return fmt.Sprintf("invalid action: %s", e.Reason)
}

func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}
