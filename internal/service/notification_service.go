package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/shop-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
// Delivery is stubbed: events are logged where a mailer or webhook call
// would go.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventOrderPlaced, n.handleOrderPlaced)
	n.dispatcher.Subscribe(events.EventPasswordResetRequested, n.handlePasswordResetRequested)
}

func (n *NotificationService) handleUserRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("UserRegistered",
		zap.String("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}

// handlePasswordResetRequested stands in for the mailer: the reset token is
// only ever delivered out-of-band, so until a real mailer integration exists
// it goes to the debug log and nowhere else.
func (n *NotificationService) handlePasswordResetRequested(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PasswordResetRequestedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("PasswordResetRequested",
		zap.String("user_id", event.UserID),
		zap.String("email", payload.Email),
		zap.Time("expires_at", payload.ExpiresAt))
	n.logger.Debug("password reset token issued",
		zap.String("email", payload.Email),
		zap.String("token", payload.Token))
	return nil
}

func (n *NotificationService) handleOrderPlaced(_ context.Context, event events.Event) error {
	n.logger.Info("OrderPlaced",
		zap.String("user_id", event.UserID),
		zap.Any("payload", event.Payload))
	return nil
}
