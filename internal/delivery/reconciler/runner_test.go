package reconciler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/config"
	mockUC "crm/internal/mocks/usecase"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serveAsync(r *runner) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Serve(context.Background())
	}()

	return errCh
}

func TestRunner_RunsCyclesUntilStopped(t *testing.T) {
	reconcile := mockUC.NewMockReconcileUsecase(t)
	cycles := make(chan struct{}, 16)
	reconcile.EXPECT().
		RunCycle(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.CycleReport, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			cycles <- struct{}{}

			return &usecase.CycleReport{}, nil
		})

	r := newRunner(&config.ReconcilerConfig{
		Enabled:      true,
		Interval:     5 * time.Millisecond,
		CycleTimeout: time.Second,
		RunOnStart:   true,
	}, newDiscardLogger(), reconcile)
	errCh := serveAsync(r)

	for range 3 {
		select {
		case <-cycles:
		case <-time.After(2 * time.Second):
			t.Fatal("reconcile cycle did not run")
		}
	}

	require.NoError(t, r.stop(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestRunner_ContinuesAfterFailedCycle(t *testing.T) {
	reconcile := mockUC.NewMockReconcileUsecase(t)
	cycles := make(chan struct{}, 16)
	reconcile.EXPECT().
		RunCycle(mock.Anything).
		Return(nil, errors.New("queue unavailable")).
		Once()
	reconcile.EXPECT().
		RunCycle(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.CycleReport, error) {
			cycles <- struct{}{}

			return &usecase.CycleReport{Failures: []usecase.ActivityFailure{{ActivityID: 3}}}, nil
		})

	r := newRunner(&config.ReconcilerConfig{
		Enabled:    true,
		Interval:   5 * time.Millisecond,
		RunOnStart: true,
	}, newDiscardLogger(), reconcile)
	errCh := serveAsync(r)

	select {
	case <-cycles:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler stopped after a failed cycle")
	}

	require.NoError(t, r.stop(context.Background()))
	assert.NoError(t, <-errCh)
}

func TestRunner_Disabled(t *testing.T) {
	reconcile := mockUC.NewMockReconcileUsecase(t)

	r := newRunner(&config.ReconcilerConfig{Enabled: false, Interval: time.Millisecond}, newDiscardLogger(), reconcile)

	assert.NoError(t, r.Serve(context.Background()))
	assert.NoError(t, r.stop(context.Background()))
}

func TestRunner_StopBeforeServeWaitsForLoop(t *testing.T) {
	reconcile := mockUC.NewMockReconcileUsecase(t)

	r := newRunner(&config.ReconcilerConfig{Enabled: true, Interval: time.Hour}, newDiscardLogger(), reconcile)

	stopped := make(chan error, 1)
	go func() {
		stopped <- r.stop(context.Background())
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned before the loop ran")
	case <-time.After(50 * time.Millisecond):
	}

	assert.NoError(t, r.Serve(context.Background()))

	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not return after the loop exited")
	}
}
