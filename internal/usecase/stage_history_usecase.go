package usecase

import (
	"context"

	"crm/internal/domain/service"
)

// StageHistoryUsecase persists stage change events delivered to the worker.
type StageHistoryUsecase interface {
	// RecordStageTransition stores the event. A redelivered event is a no-op.
	RecordStageTransition(ctx context.Context, event *service.StageChangedEvent) error
}
