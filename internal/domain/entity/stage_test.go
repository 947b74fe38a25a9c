package entity

import (
	"testing"

	domainerrors "crm/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	for _, stage := range Stages() {
		got, err := ParseStage(stage.String())
		require.NoError(t, err)
		assert.Equal(t, stage, got)
	}

	for _, raw := range []string{"active", "Churned", "VIP", "", " NEW"} {
		_, err := ParseStage(raw)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStage, raw)
	}
}

func TestStage_Is(t *testing.T) {
	assert.True(t, Stage("atrisk").Is(StageAtRisk))
	assert.True(t, StageNew.Is(Stage("New")))
	assert.False(t, StageNew.Is(StageActive))
}

func TestStageForActivity(t *testing.T) {
	tests := []struct {
		activity ActivityType
		want     Stage
		ok       bool
	}{
		{activity: ActivityPurchase, want: StageActive, ok: true},
		{activity: ActivityTicketRaise, want: StageAtRisk, ok: true},
		{activity: ActivitySettlement, want: StageChurned, ok: true},
		{activity: "PURCHASE", want: StageActive, ok: true},
		{activity: ActivityCreated, ok: false},
		{activity: "refund", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.activity.String(), func(t *testing.T) {
			got, ok := StageForActivity(tt.activity)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewCustomer_StartsAtNew(t *testing.T) {
	customer := NewCustomer(CustomerDetails{FirstName: "Ada"})

	assert.Equal(t, StageNew, customer.CurrentStage)
	assert.False(t, customer.CreatedAt.IsZero())

	previous := customer.MoveTo(StageChurned)
	assert.Equal(t, StageNew, previous)
	assert.Equal(t, StageChurned, customer.CurrentStage)
}
