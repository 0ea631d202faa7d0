package models

// ConfirmationPayload is the queued task payload for the fire-and-forget
// booking confirmation push.
type ConfirmationPayload struct {
	UserID          string `json:"userId"`
	BookingNumber   string `json:"bookingNumber"`
	ServiceName     string `json:"serviceName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}
