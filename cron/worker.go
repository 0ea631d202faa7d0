package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"medibook/config"
	"medibook/models"
	"medibook/services/notification"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async confirmation worker in background.
func InitConfirmationWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeConfirmationSend, handleConfirmationTask(notifSvc))

	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendBookingConfirmationPush(ctx, p); err != nil {
			log.Printf("[ConfirmationHandler] failed to send confirmation for booking %s: %v", p.BookingNumber, err)
			return err
		}
		return nil
	}
}
