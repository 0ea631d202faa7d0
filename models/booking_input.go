package models

// BookingCandidate holds the form's working state at submit time, before
// validation. It is transient: discarded on success, echoed back on failure
// so the user does not retype.
type BookingCandidate struct {
	FullName        string `json:"fullName"`        // 2-100 chars
	PhoneNumber     string `json:"phoneNumber"`     // 10-15 chars, length-only validation
	ServiceID       string `json:"serviceId"`       // Must reference a loaded catalog Service
	AppointmentDate string `json:"appointmentDate"` // "YYYY-MM-DD", today or later
	AppointmentTime string `json:"appointmentTime"` // One of the eight fixed slots
}
