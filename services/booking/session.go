package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"

	"github.com/go-redis/redis/v8"
)

const (
	workflowKeyPrefix   = "bookingWorkflow:"
	userWorkflowsPrefix = "userWorkflows:"
	submitGuardPrefix   = "bookingSubmit:"

	// WorkflowTTL bounds how long an abandoned form stays resumable.
	WorkflowTTL = 30 * time.Minute

	// submitGuardTTL bounds how long the in-flight guard can outlive a
	// crashed submission before the workflow unlocks itself.
	submitGuardTTL = 30 * time.Second
)

// WorkflowStore persists booking workflow sessions in Redis. It also owns the
// per-workflow submit guard and the per-user session index used to discard
// open forms on sign-out.
type WorkflowStore struct {
	Client *redis.Client
}

func NewWorkflowStore(client *redis.Client) *WorkflowStore {
	return &WorkflowStore{Client: client}
}

// Save writes the session with a sliding TTL and records it in the owner's
// session index.
func (st *WorkflowStore) Save(session *models.BookingWorkflowSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow session: %w", err)
	}

	ctx := context.Background()
	if err := st.Client.Set(ctx, workflowKeyPrefix+session.ID, data, WorkflowTTL).Err(); err != nil {
		return fmt.Errorf("failed to save workflow session: %w", err)
	}

	indexKey := userWorkflowsPrefix + session.UserID
	if err := st.Client.SAdd(ctx, indexKey, session.ID).Err(); err != nil {
		return fmt.Errorf("failed to index workflow session: %w", err)
	}
	_ = st.Client.Expire(ctx, indexKey, WorkflowTTL).Err()
	return nil
}

// Get retrieves a session by ID. Returns (nil, nil) when missing or expired.
func (st *WorkflowStore) Get(id string) (*models.BookingWorkflowSession, error) {
	ctx := context.Background()
	data, err := st.Client.Get(ctx, workflowKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workflow session: %w", err)
	}

	var session models.BookingWorkflowSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workflow session: %w", err)
	}
	return &session, nil
}

// Delete removes a session and its index entry.
func (st *WorkflowStore) Delete(id, userID string) error {
	ctx := context.Background()
	if err := st.Client.Del(ctx, workflowKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete workflow session: %w", err)
	}
	_ = st.Client.SRem(ctx, userWorkflowsPrefix+userID, id).Err()
	return nil
}

// PurgeForUser discards every open workflow session owned by the user,
// including any preserved candidate values.
func (st *WorkflowStore) PurgeForUser(userID string) error {
	ctx := context.Background()
	indexKey := userWorkflowsPrefix + userID

	ids, err := st.Client.SMembers(ctx, indexKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to list workflow sessions for user %s: %w", userID, err)
	}

	for _, id := range ids {
		if err := st.Client.Del(ctx, workflowKeyPrefix+id).Err(); err != nil {
			return fmt.Errorf("failed to purge workflow session %s: %w", id, err)
		}
	}
	if err := st.Client.Del(ctx, indexKey).Err(); err != nil {
		return fmt.Errorf("failed to clear workflow index for user %s: %w", userID, err)
	}
	return nil
}

// AcquireSubmitGuard atomically claims the in-flight flag for a workflow.
// Returns false when a submission is already pending.
func (st *WorkflowStore) AcquireSubmitGuard(workflowID string) (bool, error) {
	ctx := context.Background()
	ok, err := st.Client.SetNX(ctx, submitGuardPrefix+workflowID, "1", submitGuardTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit guard: %w", err)
	}
	return ok, nil
}

// ReleaseSubmitGuard frees the in-flight flag. Called on success and failure
// paths alike so a failed submission never leaves the workflow locked.
func (st *WorkflowStore) ReleaseSubmitGuard(workflowID string) {
	ctx := context.Background()
	_ = st.Client.Del(ctx, submitGuardPrefix+workflowID).Err()
}
