package notification

import (
	"encoding/json"
	"fmt"

	"medibook/config"
	"medibook/models"

	"github.com/hibiken/asynq"
)

// TypeConfirmationSend is the asynq task type for confirmation pushes.
const TypeConfirmationSend = "confirmation:send"

// AsynqConfirmationQueue enqueues confirmation tasks for the background worker.
type AsynqConfirmationQueue struct {
	Client *asynq.Client
}

// NewAsynqConfirmationQueue creates a queue producer against the configured
// Redis instance.
func NewAsynqConfirmationQueue() *AsynqConfirmationQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	return &AsynqConfirmationQueue{Client: client}
}

// EnqueueBookingConfirmation queues a confirmation push for delivery.
func (q *AsynqConfirmationQueue) EnqueueBookingConfirmation(payload models.ConfirmationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	task := asynq.NewTask(TypeConfirmationSend, data)
	if _, err := q.Client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
