// Package reconciler runs the activity reconciler on a fixed cadence.
package reconciler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type runner struct {
	cfg       *config.ReconcilerConfig
	logger    *slog.Logger
	reconcile usecase.ReconcileUsecase

	loopCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// RunnerParams holds dependencies for the reconciler runner
type RunnerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reconcile usecase.ReconcileUsecase
}

// NewRunner creates the background reconciler. Cycles never overlap: the interval
// is measured from the end of one cycle to the start of the next.
func NewRunner(params RunnerParams) (delivery.Delivery, error) {
	if params.Cfg.Reconciler == nil {
		return nil, errors.New("reconciler config is required")
	}

	r := newRunner(params.Cfg.Reconciler, params.Logger, params.Reconcile)

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func newRunner(cfg *config.ReconcilerConfig, logger *slog.Logger, reconcile usecase.ReconcileUsecase) *runner {
	loopCtx, cancel := context.WithCancel(context.Background())

	r := &runner{
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "reconciler")),
		reconcile: reconcile,
		loopCtx:   loopCtx,
		cancel:    cancel,
	}
	// Registered before Serve is scheduled so stop always waits for the loop.
	if cfg.Enabled {
		r.wg.Add(1)
	}

	return r
}

// Serve blocks until the runner is stopped.
func (r *runner) Serve(_ context.Context) error {
	if !r.cfg.Enabled {
		r.logger.Info("Reconciler disabled")

		return nil
	}

	defer r.wg.Done()

	r.logger.Info("Starting reconciler",
		slog.Duration("interval", r.cfg.Interval),
		slog.Duration("cycleTimeout", r.cfg.CycleTimeout),
		slog.Int("batchSize", r.cfg.BatchSize),
	)

	if r.cfg.RunOnStart {
		r.runCycle()
	}

	timer := time.NewTimer(r.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-r.loopCtx.Done():
			return nil
		case <-timer.C:
			r.runCycle()
			timer.Reset(r.cfg.Interval)
		}
	}
}

func (r *runner) runCycle() {
	ctx := r.loopCtx
	if r.cfg.CycleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.CycleTimeout)
		defer cancel()
	}

	report, err := r.reconcile.RunCycle(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) && r.loopCtx.Err() != nil {
			return
		}
		r.logger.Error("Reconcile cycle failed", slog.Any("error", err))

		return
	}

	if report.Failed() > 0 {
		r.logger.Warn("Reconcile cycle left activities pending", slog.Int("failed", report.Failed()))
	}
}

// stop cancels the loop and waits for an in-flight cycle to return.
func (r *runner) stop(ctx context.Context) error {
	r.cancel()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("Reconciler stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "reconciler did not stop in time")
	}
}
