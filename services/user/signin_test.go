package user

import (
	"testing"

	"medibook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	useTestAuthCache(t)
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.RegisterUser("Jane Patient", "Jane@Example.com", "s3cret-pass", "9999999999")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "jane@example.com", reg.Email)

	// The stored hash matches the issued token.
	assert.Equal(t, utils.HashToken(reg.Token), repo.users[reg.ID].TokenHash)
	assert.True(t, svc.IsSessionActive(reg.ID))

	auth, err := svc.AuthenticateUser("jane@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, auth.ID)
	assert.NotEmpty(t, auth.Token)

	// A re-login supersedes the prior token.
	assert.Equal(t, utils.HashToken(auth.Token), repo.users[reg.ID].TokenHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	useTestAuthCache(t)
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser("Jane Patient", "jane@example.com", "s3cret-pass", "9999999999")
	require.NoError(t, err)

	_, err = svc.RegisterUser("Jane Again", "jane@example.com", "other-pass1", "8888888888")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser("Jane Patient", "jane@example.com", "short", "9999999999")
	require.Error(t, err)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	useTestAuthCache(t)
	repo := newStubUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser("Jane Patient", "jane@example.com", "s3cret-pass", "9999999999")
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("jane@example.com", "wrong-pass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")

	_, err = svc.AuthenticateUser("nobody@example.com", "s3cret-pass")
	require.Error(t, err)
}
