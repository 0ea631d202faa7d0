package booking

import (
	"fmt"

	"medibook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateWorkflow starts a fresh workflow instance for the user.
func (s *DefaultBookingWorkflowService) InitiateWorkflow(userID string) (*models.BookingWorkflowSession, error) {
	if !s.Auth.IsSessionActive(userID) {
		return nil, NewAuthorizationError()
	}

	session := &models.BookingWorkflowSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		State:     models.WorkflowEditing,
		CreatedAt: s.now(),
	}

	services, err := s.Catalog.ListServices()
	if err != nil {
		// Non-fatal: the form stays open with nothing selectable, so any
		// submit fails service validation. Reload is the recovery path.
		s.Logger.Warn("InitiateWorkflow: failed to load catalog",
			zap.String("workflowID", session.ID), zap.Error(err))
		session.CatalogLoadFailed = true
	} else {
		session.Catalog = services
	}

	if err := s.Store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to start booking workflow: %w", err)
	}
	return session, nil
}

// Submit validates the candidate and creates the booking exactly once.
func (s *DefaultBookingWorkflowService) Submit(workflowID, userID string, candidate models.BookingCandidate) (*models.BookingConfirmation, error) {
	session, err := s.Store.Get(workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking workflow: %w", err)
	}
	if session == nil || session.UserID != userID {
		return nil, &WorkflowNotFoundError{WorkflowID: workflowID}
	}

	// A stale form must not bypass the gate: an expired session fails here
	// even when the candidate would validate, and the open form is discarded.
	if !s.Auth.IsSessionActive(userID) {
		if err := s.Store.PurgeForUser(userID); err != nil {
			s.Logger.Warn("Submit: failed to purge workflows for signed-out user",
				zap.String("userID", userID), zap.Error(err))
		}
		return nil, NewAuthorizationError()
	}

	if session.State == models.WorkflowConfirmed {
		return nil, &WorkflowStateError{State: session.State}
	}

	ok, err := s.Store.AcquireSubmitGuard(workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to guard submission: %w", err)
	}
	if !ok {
		return nil, &SubmitConflictError{WorkflowID: workflowID}
	}
	defer s.Store.ReleaseSubmitGuard(workflowID)

	if verr := ValidateCandidate(candidate, session.Catalog, s.now()); verr != nil {
		s.preserveCandidate(session, candidate)
		return nil, verr
	}

	session.State = models.WorkflowSubmitting
	if err := s.Store.Save(session); err != nil {
		return nil, fmt.Errorf("failed to update booking workflow: %w", err)
	}

	created, err := s.Repo.Create(&models.Booking{
		UserID:          userID,
		FullName:        candidate.FullName,
		PhoneNumber:     candidate.PhoneNumber,
		ServiceID:       candidate.ServiceID,
		AppointmentDate: candidate.AppointmentDate,
		AppointmentTime: candidate.AppointmentTime,
	})
	if err != nil {
		s.Logger.Error("Submit: booking store rejected create",
			zap.String("workflowID", workflowID), zap.Error(err))
		s.preserveCandidate(session, candidate)
		return nil, &PersistenceError{Err: err}
	}

	// Validation guarantees the service is present in the snapshot.
	service := resolveService(session.Catalog, created.ServiceID)

	session.State = models.WorkflowConfirmed
	session.Candidate = nil
	if err := s.Store.Save(session); err != nil {
		// The booking is already durable; the stale session only costs the
		// user a redundant error on a repeat submit.
		s.Logger.Warn("Submit: failed to mark workflow confirmed",
			zap.String("workflowID", workflowID), zap.Error(err))
	}

	s.enqueueConfirmation(created, service.Name)

	return &models.BookingConfirmation{
		BookingNumber:   created.BookingNumber,
		FullName:        created.FullName,
		PhoneNumber:     created.PhoneNumber,
		ServiceID:       created.ServiceID,
		ServiceName:     service.Name,
		AppointmentDate: created.AppointmentDate,
		AppointmentTime: created.AppointmentTime,
		Confirmation:    "Booking confirmed",
		CreatedAt:       created.CreatedAt,
	}, nil
}

// CancelWorkflow abandons an open workflow instance.
func (s *DefaultBookingWorkflowService) CancelWorkflow(workflowID, userID string) error {
	session, err := s.Store.Get(workflowID)
	if err != nil {
		return fmt.Errorf("failed to load booking workflow: %w", err)
	}
	if session == nil || session.UserID != userID {
		return &WorkflowNotFoundError{WorkflowID: workflowID}
	}
	return s.Store.Delete(workflowID, userID)
}

// preserveCandidate returns the workflow to the editable state with the
// user's entered values intact.
func (s *DefaultBookingWorkflowService) preserveCandidate(session *models.BookingWorkflowSession, candidate models.BookingCandidate) {
	session.State = models.WorkflowEditing
	session.Candidate = &candidate
	if err := s.Store.Save(session); err != nil {
		s.Logger.Warn("failed to preserve candidate on workflow",
			zap.String("workflowID", session.ID), zap.Error(err))
	}
}

// enqueueConfirmation hands the confirmation to the notification queue.
// Fire-and-forget: a queue failure is logged and never surfaced.
func (s *DefaultBookingWorkflowService) enqueueConfirmation(booking *models.Booking, serviceName string) {
	if s.Notifier == nil {
		return
	}
	payload := models.ConfirmationPayload{
		UserID:          booking.UserID,
		BookingNumber:   booking.BookingNumber,
		ServiceName:     serviceName,
		AppointmentDate: booking.AppointmentDate,
		AppointmentTime: booking.AppointmentTime,
	}
	if err := s.Notifier.EnqueueBookingConfirmation(payload); err != nil {
		s.Logger.Warn("failed to enqueue confirmation notification",
			zap.String("bookingNumber", booking.BookingNumber), zap.Error(err))
	}
}
