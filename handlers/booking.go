package handlers

import (
	"errors"
	"net/http"

	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow endpoints.
type BookingHandler struct {
	WorkflowSvc booking.BookingWorkflowService
	Logger      *zap.Logger
}

func NewBookingHandler(svc booking.BookingWorkflowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{WorkflowSvc: svc, Logger: logger}
}

// StartWorkflow handles POST /api/booking/session. It opens a fresh workflow
// instance: the catalog snapshot and the slot enumeration feed the form.
func (h *BookingHandler) StartWorkflow(c *gin.Context) {
	userID := c.GetString("userID")

	session, err := h.WorkflowSvc.InitiateWorkflow(userID)
	if err != nil {
		var authErr *booking.AuthorizationError
		if errors.As(err, &authErr) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message, "redirect": "/auth"})
			return
		}
		h.Logger.Error("StartWorkflow: failed to start workflow", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking"})
		return
	}

	resp := gin.H{
		"workflowID": session.ID,
		"state":      session.State,
		"tests":      session.Catalog,
		"timeSlots":  booking.TimeSlots(),
	}
	if session.CatalogLoadFailed {
		// Non-blocking: the form renders, nothing is selectable.
		resp["warning"] = "Failed to load tests"
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitBooking handles POST /api/booking/session/:workflowID/submit.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	userID := c.GetString("userID")
	workflowID := c.Param("workflowID")

	var candidate models.BookingCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.WorkflowSvc.Submit(workflowID, userID, candidate)
	if err != nil {
		h.renderSubmitError(c, workflowID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": confirmation})
}

// CancelWorkflow handles DELETE /api/booking/session/:workflowID.
func (h *BookingHandler) CancelWorkflow(c *gin.Context) {
	userID := c.GetString("userID")
	workflowID := c.Param("workflowID")

	if err := h.WorkflowSvc.CancelWorkflow(workflowID, userID); err != nil {
		var notFound *booking.WorkflowNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		h.Logger.Error("CancelWorkflow: failed to cancel workflow", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}

// renderSubmitError maps the workflow error taxonomy onto HTTP responses.
func (h *BookingHandler) renderSubmitError(c *gin.Context, workflowID string, err error) {
	var (
		valErr      *booking.ValidationError
		authErr     *booking.AuthorizationError
		conflictErr *booking.SubmitConflictError
		notFound    *booking.WorkflowNotFoundError
		stateErr    *booking.WorkflowStateError
		persistErr  *booking.PersistenceError
	)

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message, "field": valErr.Field})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message, "redirect": "/auth"})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "A submission is already in progress"})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": "This booking is already confirmed. Start a new session to book again."})
	case errors.As(err, &persistErr):
		h.Logger.Error("SubmitBooking: booking store failure",
			zap.String("workflowID", workflowID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
	default:
		h.Logger.Error("SubmitBooking: unexpected failure",
			zap.String("workflowID", workflowID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
	}
}
