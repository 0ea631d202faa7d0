package user

import (
	"context"
	"testing"

	"medibook/models"
	"medibook/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	users   map[string]*models.User
	updates []bson.M
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) Create(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.updates = append(r.updates, updateDoc)
	if u, ok := r.users[id]; ok {
		if hash, ok := updateDoc["token_hash"].(string); ok {
			u.TokenHash = hash
		}
		if token, ok := updateDoc["fcm_token"].(string); ok {
			u.FCMToken = token
		}
	}
	return nil
}

type stubPurger struct {
	purged []string
}

func (p *stubPurger) PurgeForUser(userID string) error {
	p.purged = append(p.purged, userID)
	return nil
}

// useTestAuthCache swaps the global auth cache client for a miniredis-backed
// one for the duration of the test.
func useTestAuthCache(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	prev := utils.AuthCacheClient
	utils.AuthCacheClient = client
	t.Cleanup(func() {
		utils.AuthCacheClient = prev
		_ = client.Close()
	})
	return client
}

func TestIsSessionActiveCacheHit(t *testing.T) {
	cache := useTestAuthCache(t)
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, cache.Set(context.Background(), utils.AuthCachePrefix+"user-1", "somehash", 0).Err())

	assert.True(t, svc.IsSessionActive("user-1"))
}

func TestIsSessionActiveFallsBackToRecord(t *testing.T) {
	useTestAuthCache(t)
	repo := newStubUserRepo(&models.User{ID: "user-1", TokenHash: "somehash"})
	svc := &DefaultUserService{Repo: repo}

	assert.True(t, svc.IsSessionActive("user-1"))
}

func TestIsSessionActiveRejectsRevoked(t *testing.T) {
	useTestAuthCache(t)
	repo := newStubUserRepo(&models.User{ID: "user-1", TokenHash: ""})
	svc := &DefaultUserService{Repo: repo}

	assert.False(t, svc.IsSessionActive("user-1"))
	assert.False(t, svc.IsSessionActive("user-unknown"))
	assert.False(t, svc.IsSessionActive(""))
}

// Sign-out clears the cached hash, blanks the stored token hash, and discards
// the user's open booking workflows in the same pass.
func TestRevokeAuthToken(t *testing.T) {
	cache := useTestAuthCache(t)
	repo := newStubUserRepo(&models.User{ID: "user-1", TokenHash: "somehash"})
	purger := &stubPurger{}
	svc := &DefaultUserService{Repo: repo, Workflows: purger}

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, utils.AuthCachePrefix+"user-1", "somehash", 0).Err())

	require.NoError(t, svc.RevokeAuthToken("user-1"))

	_, err := cache.Get(ctx, utils.AuthCachePrefix+"user-1").Result()
	assert.Equal(t, redis.Nil, err)
	assert.Empty(t, repo.users["user-1"].TokenHash)
	assert.Equal(t, []string{"user-1"}, purger.purged)

	assert.False(t, svc.IsSessionActive("user-1"))
}

func TestUpdateFCMToken(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: "user-1"})
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.UpdateFCMToken("user-1", "fcm-abc"))
	assert.Equal(t, "fcm-abc", repo.users["user-1"].FCMToken)
}
