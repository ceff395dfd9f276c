package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/ucrconnect/dashboard-api/internal/logger"
)

// Event kinds published to the audit topic.
const (
	EventAdminLogin     = "admin_login"
	EventAdminLogout    = "admin_logout"
	EventUserRegistered = "user_registered"
)

// Event is one audit record of an admin action.
type Event struct {
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	Email      string    `json:"email,omitempty"`
	AuthID     string    `json:"auth_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher publishes audit events for admin actions. Publishing is
// fire-and-forget: a broker failure is logged and never fails the
// request that produced the event.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a Publisher. A nil writer disables publishing.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish sends one audit event.
func (p *Publisher) Publish(ctx context.Context, kind, email, authID string) {
	if p.writer == nil {
		logger.Log.Debugw("audit writer not configured, skipping event", "kind", kind)
		return
	}

	event := Event{
		EventID:    uuid.New().String(),
		Kind:       kind,
		Email:      email,
		AuthID:     authID,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "kind", kind, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Kind),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "kind", kind, "error", err)
		return
	}

	logger.Log.Infow("audit event published", "kind", kind, "event_id", event.EventID)
}
