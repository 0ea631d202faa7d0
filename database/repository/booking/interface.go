package bookingRepo

import "medibook/models"

// BookingRepository defines data access for booking records. Bookings are
// create-only within this service; there is no update or delete path.
type BookingRepository interface {
	// Create persists a new booking. The store assigns the ID, the
	// human-readable booking number, and the creation timestamp, and returns
	// the completed record. No partial-write state is exposed on failure.
	Create(booking *models.Booking) (*models.Booking, error)
}
