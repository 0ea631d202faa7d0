package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// AuthenticateUser verifies credentials and issues a fresh session token.
// Any previously issued token for the account is superseded.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueSession(userRec.ID, userRec.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to issue session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		FullName:    userRec.FullName,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
	}, nil
}

// GetUserByID retrieves a user record.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}
