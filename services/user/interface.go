package user

import (
	userRepo "medibook/database/repository/user"
	"medibook/models"
)

// UserService manages patient accounts and their authenticated sessions.
type UserService interface {
	// Registration and authentication.
	RegisterUser(fullName, email, password, phoneNumber string) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)

	// RevokeAuthToken signs the user out: it invalidates the session token,
	// clears the authorization cache, and purges any open booking workflow
	// sessions so an expired session cannot keep a form alive.
	RevokeAuthToken(userID string) error

	// IsSessionActive reports whether the user currently holds a valid
	// session token. Used as the authorization precondition for submits.
	IsSessionActive(userID string) bool

	// UpdateFCMToken stores the device token used for confirmation pushes.
	UpdateFCMToken(userID, fcmToken string) error

	GetUserByID(userID string) (*models.User, error)
}

// WorkflowPurger discards a user's open booking workflow sessions. Implemented
// by the booking workflow store; injected here to keep sign-out and session
// expiry on the same notification path.
type WorkflowPurger interface {
	PurgeForUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Workflows WorkflowPurger
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	FullName    string `json:"fullName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
