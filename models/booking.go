package models

import "time"

// Booking represents a confirmed booking record. Immutable once created;
// no update or delete path exists in this service.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                            // Unique booking identifier (UUID)
	BookingNumber   string    `bson:"booking_number" json:"bookingNumber"`     // Human-readable number generated by the store
	UserID          string    `bson:"user_id" json:"userId"`                   // Owner, equals the authenticated user's ID
	FullName        string    `bson:"full_name" json:"fullName"`               // Patient name as entered on the form
	PhoneNumber     string    `bson:"phone_number" json:"phoneNumber"`         // Contact number as entered on the form
	ServiceID       string    `bson:"service_id" json:"serviceId"`             // References Service.ID in the catalog
	AppointmentDate string    `bson:"appointment_date" json:"appointmentDate"` // "YYYY-MM-DD"
	AppointmentTime string    `bson:"appointment_time" json:"appointmentTime"` // One of the eight fixed slots
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`             // Assigned by the store
}
