// File: medibook/models/confirmation.go
package models

import "time"

// BookingConfirmation is the final response returned after a booking is created.
// ServiceName is resolved from the workflow's catalog snapshot since the
// persisted Booking carries only the service ID.
type BookingConfirmation struct {
	BookingNumber   string    `json:"bookingNumber"`
	FullName        string    `json:"fullName"`
	PhoneNumber     string    `json:"phoneNumber"`
	ServiceID       string    `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Confirmation    string    `json:"confirmation"`
	CreatedAt       time.Time `json:"createdAt"`
}
