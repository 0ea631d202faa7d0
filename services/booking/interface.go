package booking

import (
	"time"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
	"medibook/services/catalog"

	"go.uber.org/zap"
)

// BookingWorkflowService drives one booking workflow instance from entry to
// confirmation: gate on authentication, snapshot the catalog, validate and
// submit the candidate, and render the confirmation.
type BookingWorkflowService interface {
	// InitiateWorkflow starts a fresh workflow instance for the user. The
	// catalog is fetched once per instance; a load failure degrades the form
	// (empty catalog, CatalogLoadFailed flag) instead of blocking it.
	InitiateWorkflow(userID string) (*models.BookingWorkflowSession, error)

	// Submit validates the candidate against the workflow's catalog snapshot
	// and creates the booking exactly once. The in-flight guard rejects
	// re-entry until the prior call resolves.
	Submit(workflowID, userID string, candidate models.BookingCandidate) (*models.BookingConfirmation, error)

	// CancelWorkflow abandons an open workflow instance.
	CancelWorkflow(workflowID, userID string) error
}

// AuthChecker reports whether a user's session is still active. Implemented by
// the user service; the workflow depends only on this contract.
type AuthChecker interface {
	IsSessionActive(userID string) bool
}

// ConfirmationQueue accepts fire-and-forget confirmation notifications.
type ConfirmationQueue interface {
	EnqueueBookingConfirmation(payload models.ConfirmationPayload) error
}

// DefaultBookingWorkflowService implements BookingWorkflowService.
type DefaultBookingWorkflowService struct {
	Repo     bookingRepo.BookingRepository
	Catalog  catalog.CatalogService
	Store    *WorkflowStore
	Auth     AuthChecker
	Notifier ConfirmationQueue
	Logger   *zap.Logger

	// Now allows tests to pin the current date; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingWorkflowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
