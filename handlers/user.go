package handlers

import (
	"net/http"

	"medibook/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var userService user.UserService

// SetUserService wires the user service used by the package-level handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles POST /api/users/register.
func RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		FullName    string `json:"fullName" binding:"required"`
		Email       string `json:"email" binding:"required"`
		Password    string `json:"password" binding:"required"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := userService.RegisterUser(req.FullName, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		logger.Warn("RegisterUserHandler: registration failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := userService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		logger.Warn("AuthenticateUserHandler: authentication failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeUserAuthTokenHandler handles DELETE /api/users/revoke. Signing out
// also discards any open booking workflow sessions.
func RevokeUserAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := userService.RevokeAuthToken(userID); err != nil {
		logger.Error("RevokeUserAuthTokenHandler: failed to revoke token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// UpdateFCMTokenHandler handles PUT /api/users/fcm-token.
func UpdateFCMTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := userService.UpdateFCMToken(userID, req.FCMToken); err != nil {
		logger.Error("UpdateFCMTokenHandler: failed to update token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FCM token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}
