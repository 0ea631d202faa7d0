package handlers

import (
	userRepo "medibook/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main for route registration.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc

	// Catalog endpoints.
	ListTestsHandler gin.HandlerFunc
	GetTestHandler   gin.HandlerFunc

	// Booking workflow endpoints.
	StartWorkflow  gin.HandlerFunc
	SubmitBooking  gin.HandlerFunc
	CancelWorkflow gin.HandlerFunc
}
