package booking

import "fmt"

// ValidationError reports malformed or inconsistent input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown entity ID.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ForbiddenError reports an actor who is not authorized for the
// requested booking or transition.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Message)
}

// InvalidStateError reports a transition that is not legal from the
// booking's current status.
type InvalidStateError struct {
	Current    string
	Transition string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Transition, e.Current)
}
