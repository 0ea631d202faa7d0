package catalog

import (
	"errors"
	"testing"

	"medibook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	services    []models.Service
	listErr     error
	listCalls   int
	createCalls int
	created     []models.Service
}

func (r *stubCatalogRepo) List() ([]models.Service, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.services, nil
}

func (r *stubCatalogRepo) GetByID(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			return &r.services[i], nil
		}
	}
	return nil, nil
}

func (r *stubCatalogRepo) Count() (int64, error) {
	return int64(len(r.services)), nil
}

func (r *stubCatalogRepo) CreateMany(services []models.Service) error {
	r.createCalls++
	r.created = services
	r.services = append(r.services, services...)
	return nil
}

var sampleServices = []models.Service{
	{ID: "svc-1", Name: "ECG", Category: "Cardiology", PriceRange: "₹300 - ₹600"},
	{ID: "svc-2", Name: "EEG", Category: "Neurology", PriceRange: "₹900 - ₹1,500"},
}

func newCatalogFixture(t *testing.T, repo *stubCatalogRepo) *DefaultCatalogService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &DefaultCatalogService{Repo: repo, CacheClient: client}
}

// The second list is served from the Redis snapshot without touching Mongo.
func TestListServicesCachesSnapshot(t *testing.T) {
	repo := &stubCatalogRepo{services: sampleServices}
	svc := newCatalogFixture(t, repo)

	first, err := svc.ListServices()
	require.NoError(t, err)
	assert.Equal(t, sampleServices, first)
	assert.Equal(t, 1, repo.listCalls)

	second, err := svc.ListServices()
	require.NoError(t, err)
	assert.Equal(t, sampleServices, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListServicesWithoutCacheClient(t *testing.T) {
	repo := &stubCatalogRepo{services: sampleServices}
	svc := &DefaultCatalogService{Repo: repo}

	services, err := svc.ListServices()
	require.NoError(t, err)
	assert.Equal(t, sampleServices, services)
}

func TestListServicesPropagatesRepoFailure(t *testing.T) {
	repo := &stubCatalogRepo{listErr: errors.New("query timeout")}
	svc := newCatalogFixture(t, repo)

	_, err := svc.ListServices()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load service catalog")
}

func TestGetServiceByID(t *testing.T) {
	repo := &stubCatalogRepo{services: sampleServices}
	svc := newCatalogFixture(t, repo)

	found, err := svc.GetServiceByID("svc-2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "EEG", found.Name)

	missing, err := svc.GetServiceByID("svc-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEnsureSeededPopulatesEmptyCatalog(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := newCatalogFixture(t, repo)

	require.NoError(t, svc.EnsureSeeded())
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, defaultCatalog(), repo.created)
}

func TestEnsureSeededSkipsPopulatedCatalog(t *testing.T) {
	repo := &stubCatalogRepo{services: sampleServices}
	svc := newCatalogFixture(t, repo)

	require.NoError(t, svc.EnsureSeeded())
	assert.Zero(t, repo.createCalls)
}
