package user

import (
	"fmt"
	"time"

	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RevokeAuthToken signs the user out. The token hash is cleared from both the
// authorization cache and the user record, and every open booking workflow
// session owned by the user is purged in the same pass, so the gate observes
// the sign-out within one notification cycle.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	authCache := utils.GetAuthCacheClient()
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()

	if err := authCache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session token: %w", err)
	}

	if s.Workflows != nil {
		if err := s.Workflows.PurgeForUser(userID); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to purge booking workflows",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}

// IsSessionActive reports whether the user currently holds a valid session
// token. The authorization cache is consulted first; on a miss the user
// record's token hash is authoritative.
func (s *DefaultUserService) IsSessionActive(userID string) bool {
	if userID == "" {
		return false
	}

	authCache := utils.GetAuthCacheClient()
	ctx, cancel := newContext(2 * time.Second)
	defer cancel()

	_, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
	if err == nil {
		return true
	}
	if err != redis.Nil {
		utils.GetLogger().Warn("IsSessionActive: auth cache lookup failed, falling back to DB", zap.Error(err))
	}

	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "token_hash": 1})
	if err != nil || usr == nil {
		return false
	}
	return usr.TokenHash != ""
}

// UpdateFCMToken stores the device token used for confirmation pushes.
func (s *DefaultUserService) UpdateFCMToken(userID, fcmToken string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"fcm_token": fcmToken}); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}
