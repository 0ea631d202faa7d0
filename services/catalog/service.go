package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	catalogCacheKey = "catalog:tests"
	catalogCacheTTL = 5 * time.Minute
)

// ListServices returns the catalog ordered by category, then name. The Redis
// snapshot is consulted first; a cache failure falls through to Mongo.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.CacheClient != nil {
		data, err := s.CacheClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(data), &services); err == nil {
				return services, nil
			}
			utils.GetLogger().Warn("ListServices: failed to decode cached catalog, refetching")
		} else if err != redis.Nil {
			utils.GetLogger().Warn("ListServices: catalog cache lookup failed", zap.Error(err))
		}
	}

	services, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.CacheClient.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("ListServices: failed to cache catalog", zap.Error(err))
			}
		}
	}
	return services, nil
}

// GetServiceByID retrieves one catalog entry.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return svc, nil
}

// EnsureSeeded inserts the default catalog when the store is empty.
func (s *DefaultCatalogService) EnsureSeeded() error {
	n, err := s.Repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check catalog: %w", err)
	}
	if n > 0 {
		return nil
	}
	if err := s.Repo.CreateMany(defaultCatalog()); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	utils.GetLogger().Info("EnsureSeeded: seeded default test catalog",
		zap.Int("entries", len(defaultCatalog())))
	return nil
}
