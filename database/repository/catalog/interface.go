package catalogRepo

import "medibook/models"

// CatalogRepository defines data access for the bookable-service catalog.
type CatalogRepository interface {
	// List retrieves all catalog entries ordered by category, then name.
	// A query failure is surfaced as a single aggregate error; there are no
	// partial-list semantics.
	List() ([]models.Service, error)
	// GetByID retrieves a single catalog entry.
	GetByID(id string) (*models.Service, error)
	// Count reports how many catalog entries exist.
	Count() (int64, error)
	// CreateMany inserts catalog entries (used for seeding an empty catalog).
	CreateMany(services []models.Service) error
}
