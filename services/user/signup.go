package user

import (
	"fmt"
	"strings"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a new patient account and issues a session token.
func (s *DefaultUserService) RegisterUser(fullName, email, password, phoneNumber string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("full name and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	newUser := &models.User{
		ID:           uuid.New().String(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  phoneNumber,
	}
	if err := s.Repo.Create(newUser); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueSession(newUser.ID, newUser.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:          newUser.ID,
		Token:       token,
		FullName:    newUser.FullName,
		Email:       newUser.Email,
		PhoneNumber: newUser.PhoneNumber,
	}, nil
}

// issueSession generates a JWT, stores its hash on the user record, and primes
// the authorization cache.
func (s *DefaultUserService) issueSession(userID, email string) (string, error) {
	token, err := utils.GenerateToken(userID, email, utils.AuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": tokenHash}); err != nil {
		return "", fmt.Errorf("failed to persist session token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()
	if err := authCache.Set(ctx, utils.AuthCachePrefix+userID, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		// Cache is an optimization; the token hash on the user record is
		// authoritative.
		utils.GetLogger().Warn("issueSession: failed to prime auth cache", zap.Error(err))
	}
	return token, nil
}
