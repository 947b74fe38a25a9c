package service

import (
	"context"
	"time"

	"crm/internal/domain/entity"
)

// StageChangedEvent announces a committed customer stage change.
type StageChangedEvent struct {
	EventID    string                  `json:"event_id"`
	RequestID  string                  `json:"request_id,omitempty"` // For distributed tracing
	CustomerID int64                   `json:"customer_id"`
	FromStage  entity.Stage            `json:"from_stage"`
	ToStage    entity.Stage            `json:"to_stage"`
	ActivityID *int64                  `json:"activity_id,omitempty"`
	Source     entity.TransitionSource `json:"source"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStageChanged publishes a stage change for async processing
	PublishStageChanged(ctx context.Context, event *StageChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
