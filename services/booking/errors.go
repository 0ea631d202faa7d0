package booking

import (
	"fmt"

	"medibook/models"
)

// ValidationError reports the first violated form rule. It is local and
// recoverable by user correction; the booking store is never contacted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthorizationError signals that the user's session was absent or expired at
// submit time. Recovery is re-authentication, not retry.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

func NewAuthorizationError() error {
	return &AuthorizationError{Message: "please login to book an appointment"}
}

// SubmitConflictError signals that a submit is already in flight for this
// workflow instance.
type SubmitConflictError struct {
	WorkflowID string
}

func (e *SubmitConflictError) Error() string {
	return fmt.Sprintf("a submission is already in progress for workflow %s", e.WorkflowID)
}

// WorkflowNotFoundError signals a missing or expired workflow session, or one
// owned by a different user.
type WorkflowNotFoundError struct {
	WorkflowID string
}

func (e *WorkflowNotFoundError) Error() string {
	return fmt.Sprintf("booking workflow %s not found or expired", e.WorkflowID)
}

// WorkflowStateError signals an operation that is not allowed in the
// workflow's current state. Confirmed is terminal.
type WorkflowStateError struct {
	State models.WorkflowState
}

func (e *WorkflowStateError) Error() string {
	return fmt.Sprintf("operation not allowed in workflow state %q", e.State)
}

// PersistenceError wraps a booking-store failure. The candidate values are
// preserved so the user can resubmit without retyping.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to create booking: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
