package usecase

import (
	"context"
	"time"

	"crm/internal/domain/entity"
)

// ActivityFailure records one activity the reconciler could not apply.
// The activity stays unprocessed and is retried next cycle.
type ActivityFailure struct {
	ActivityID int64
	CustomerID int64
	Type       entity.ActivityType
	Err        error
}

// CycleReport summarises one reconciler cycle.
type CycleReport struct {
	StartedAt       time.Time
	Duration        time.Duration
	Fetched         int // pending activities read at the start of the cycle
	Processed       int // activities marked processed in this cycle
	Transitioned    int // processed activities that changed a customer's stage
	Skipped         int // already processed by another writer
	PublishFailures int // stage events that could not be published
	Failures        []ActivityFailure
}

// Failed returns the number of activities left unprocessed because of an error.
func (r *CycleReport) Failed() int {
	return len(r.Failures)
}

// ReconcileUsecase drains pending activities into stage transitions.
type ReconcileUsecase interface {
	// RunCycle applies every activity pending at call time. Per-activity failures are
	// collected in the report; the returned error is reserved for failures that stop
	// the whole cycle, such as being unable to read the queue.
	RunCycle(ctx context.Context) (*CycleReport, error)
}
