package booking

import (
	"time"
	"unicode/utf8"

	"medibook/models"
)

const dateLayout = "2006-01-02"

// ValidateCandidate applies the form rules in order and returns the first
// violation, or nil when the candidate is valid. Rules are checked against the
// workflow's catalog snapshot; validation never contacts a store.
func ValidateCandidate(c models.BookingCandidate, catalog []models.Service, now time.Time) *ValidationError {
	// Character count, not byte length: names are routinely non-ASCII.
	if n := utf8.RuneCountInString(c.FullName); n < 2 || n > 100 {
		return &ValidationError{Field: "fullName", Message: "Name must be between 2 and 100 characters"}
	}

	if len(c.PhoneNumber) < 10 || len(c.PhoneNumber) > 15 {
		return &ValidationError{Field: "phoneNumber", Message: "Phone number must be between 10 and 15 digits"}
	}

	if c.ServiceID == "" {
		return &ValidationError{Field: "serviceId", Message: "Please select a test or department"}
	}
	if resolveService(catalog, c.ServiceID) == nil {
		return &ValidationError{Field: "serviceId", Message: "Selected test or department is not available"}
	}

	if c.AppointmentDate == "" {
		return &ValidationError{Field: "appointmentDate", Message: "Please select a date"}
	}
	date, err := time.ParseInLocation(dateLayout, c.AppointmentDate, now.Location())
	if err != nil {
		return &ValidationError{Field: "appointmentDate", Message: "Appointment date must be in YYYY-MM-DD format"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return &ValidationError{Field: "appointmentDate", Message: "Appointment date cannot be in the past"}
	}

	if c.AppointmentTime == "" {
		return &ValidationError{Field: "appointmentTime", Message: "Please select a time slot"}
	}
	if !IsValidSlot(c.AppointmentTime) {
		return &ValidationError{Field: "appointmentTime", Message: "Please select one of the available time slots"}
	}

	return nil
}

// resolveService looks up a service in the catalog snapshot by ID.
func resolveService(catalog []models.Service, serviceID string) *models.Service {
	for i := range catalog {
		if catalog[i].ID == serviceID {
			return &catalog[i]
		}
	}
	return nil
}
