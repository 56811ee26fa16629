package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every input validation error.
// Callers match the whole family with errors.Is(err, ErrValidation).
var ErrValidation = errors.New("validation failed")

// Validation errors returned by value object constructors.
var (
	ErrDescriptionRequired  = fmt.Errorf("%w: description is required", ErrValidation)
	ErrGuestContactRequired = fmt.Errorf("%w: guest contact is required", ErrValidation)
	ErrStaffNameRequired    = fmt.Errorf("%w: staff name is required", ErrValidation)
	ErrInvalidEstimatedTime = fmt.Errorf("%w: estimated time must be a positive whole number of minutes", ErrValidation)
	ErrInvalidDepartment    = fmt.Errorf("%w: invalid department", ErrValidation)
	ErrInvalidUrgency       = fmt.Errorf("%w: invalid urgency", ErrValidation)
	ErrInvalidTaskStatus    = fmt.Errorf("%w: invalid task status", ErrValidation)
	ErrInvalidSortKey       = fmt.Errorf("%w: invalid sort key", ErrValidation)
	ErrInvalidLanguage      = fmt.Errorf("%w: invalid language", ErrValidation)
	ErrEmptyMessage         = fmt.Errorf("%w: message text is required", ErrValidation)
)

// Lookup errors.
var (
	// ErrTaskNotFound indicates no task carries the requested id.
	ErrTaskNotFound = errors.New("task not found")

	// ErrChatSessionNotFound indicates the chat session does not exist.
	ErrChatSessionNotFound = errors.New("chat session not found")
)

// ErrInvalidTransition is matched by every *TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError reports a lifecycle transition the task's current status does not allow.
type TransitionError struct {
	TaskID string
	From   TaskStatus
	To     TaskStatus
}

func (e *TransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("task %s: already %s, cannot move to %s", e.TaskID, e.From, e.To)
	}
	return fmt.Sprintf("task %s: cannot move from %s to %s", e.TaskID, e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) true for any TransitionError.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
