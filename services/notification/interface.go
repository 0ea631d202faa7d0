package notification

import (
	"context"
	"fmt"

	"medibook/models"
	"medibook/services/user"
	"medibook/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService delivers booking confirmation pushes. Delivery is
// fire-and-forget from the workflow's perspective: failures are logged by the
// worker, never surfaced to the booking flow.
type NotificationService interface {
	SendBookingConfirmationPush(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultNotificationService is the production implementation, sending FCM
// pushes to the user's registered device token.
type DefaultNotificationService struct {
	User user.UserService
}

func NewDefaultNotificationService(userSvc user.UserService) (*DefaultNotificationService, error) {
	if userSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: user service is nil")
	}
	return &DefaultNotificationService{User: userSvc}, nil
}

// SendBookingConfirmationPush looks up the user's FCM token and sends a push.
func (s *DefaultNotificationService) SendBookingConfirmationPush(ctx context.Context, payload models.ConfirmationPayload) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendBookingConfirmationPush: FCM client not initialized")
	}

	u, err := s.User.GetUserByID(payload.UserID)
	if err != nil {
		return fmt.Errorf("SendBookingConfirmationPush: could not find user %s: %w", payload.UserID, err)
	}
	if u == nil || u.FCMToken == "" {
		return fmt.Errorf("SendBookingConfirmationPush: user %s has no FCM token", payload.UserID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: "Booking Confirmed",
			Body: fmt.Sprintf("%s on %s, %s. Booking ID %s. Please arrive 15 minutes early.",
				payload.ServiceName, payload.AppointmentDate, payload.AppointmentTime, payload.BookingNumber),
		},
		Data: map[string]string{
			"bookingNumber":   payload.BookingNumber,
			"appointmentDate": payload.AppointmentDate,
			"appointmentTime": payload.AppointmentTime,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendBookingConfirmationPush: failed to send FCM message: %w", err)
	}
	return nil
}
