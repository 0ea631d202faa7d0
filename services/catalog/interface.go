package catalog

import (
	catalogRepo "medibook/database/repository/catalog"
	"medibook/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService exposes the bookable-service catalog.
type CatalogService interface {
	// ListServices returns the catalog ordered by category, then name.
	// Failures surface as a single aggregate error; the caller decides how to
	// degrade (the booking workflow keeps the form open with an empty list).
	ListServices() ([]models.Service, error)
	// GetServiceByID retrieves one catalog entry, or (nil, nil) when unknown.
	GetServiceByID(id string) (*models.Service, error)
	// EnsureSeeded inserts the default catalog when the store is empty.
	EnsureSeeded() error
}

// DefaultCatalogService is the production implementation, backed by the Mongo
// catalog repository with a short-lived Redis snapshot cache.
type DefaultCatalogService struct {
	Repo        catalogRepo.CatalogRepository
	CacheClient *redis.Client
}
