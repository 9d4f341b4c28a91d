package events

import (
	"time"

	"github.com/spec-kit/shop-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered         EventType = "user_registered"
	EventOrderPlaced            EventType = "order_placed"
	EventPasswordResetRequested EventType = "password_reset_requested"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
}

// PasswordResetRequestedPayload payload. The token travels only through the
// notification path, never through an HTTP response.
type PasswordResetRequestedPayload struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID   string             `json:"order_id"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
	Status    domain.OrderStatus `json:"status"`
}
