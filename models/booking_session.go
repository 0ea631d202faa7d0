package models

import "time"

// WorkflowState is the lifecycle state of a booking workflow session.
type WorkflowState string

const (
	// WorkflowEditing: gate passed, catalog resolved, form open.
	WorkflowEditing WorkflowState = "editing"
	// WorkflowSubmitting: a submit is in flight; re-entry is rejected.
	WorkflowSubmitting WorkflowState = "submitting"
	// WorkflowConfirmed: terminal; a new session is required to book again.
	WorkflowConfirmed WorkflowState = "confirmed"
)

// BookingWorkflowSession is one instance of the booking workflow, cached in
// Redis for the lifetime of the form. The catalog snapshot is read-only once
// set; a fresh session re-fetches it.
type BookingWorkflowSession struct {
	ID                string            `json:"id"`
	UserID            string            `json:"userId"`
	State             WorkflowState     `json:"state"`
	Catalog           []Service         `json:"catalog"`
	CatalogLoadFailed bool              `json:"catalogLoadFailed"`
	Candidate         *BookingCandidate `json:"candidate,omitempty"` // preserved values after a failed submit
	CreatedAt         time.Time         `json:"createdAt"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
}
