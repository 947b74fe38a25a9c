package entity

import "time"

// TransitionSource records what caused a stage change.
type TransitionSource string

const (
	TransitionSourceReconciler TransitionSource = "reconciler"
	TransitionSourceOverride   TransitionSource = "override"
)

// StageTransition is one entry in a customer's stage history.
type StageTransition struct {
	ID         int64            `json:"id"`
	EventID    string           `json:"event_id"` // Dedupe key for redelivered events.
	CustomerID int64            `json:"customer_id"`
	FromStage  Stage            `json:"from_stage"`
	ToStage    Stage            `json:"to_stage"`
	ActivityID *int64           `json:"activity_id,omitempty"` // Nil for overrides.
	Source     TransitionSource `json:"source"`
	OccurredAt time.Time        `json:"occurred_at"`
}
