package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/constants"
	"crm/internal/domain/entity"
	"crm/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestEvent() *service.StageChangedEvent {
	activityID := int64(11)

	return &service.StageChangedEvent{
		EventID:    "evt-123",
		RequestID:  "req-9",
		CustomerID: 42,
		FromStage:  entity.StageNew,
		ToStage:    entity.StageActive,
		ActivityID: &activityID,
		Source:     entity.TransitionSourceReconciler,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishStageChanged(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	event := newTestEvent()

	require.NoError(t, publisher.PublishStageChanged(context.Background(), event))

	assert.Equal(t, "req-9", requestID)
	assert.Equal(t, "evt-123", received.Message.MessageID)
	assert.Equal(t, EventTypeStageChanged, received.Message.Attributes["event_type"])
	assert.Equal(t, "42", received.Message.Attributes["customer_id"])

	decoded, err := DecodeStageChanged(&received)
	require.NoError(t, err)
	assert.Equal(t, event.CustomerID, decoded.CustomerID)
	assert.Equal(t, entity.StageActive, decoded.ToStage)
	require.NotNil(t, decoded.ActivityID)
	assert.Equal(t, int64(11), *decoded.ActivityID)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.Default())
	err := publisher.PublishStageChanged(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDecodeStageChanged_FallsBackToMessageFields(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(`{"customer_id":7,"from_stage":"NEW","to_stage":"ATRISK","source":"override"}`))
	msg.Message.MessageID = "server-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	event, err := DecodeStageChanged(msg)
	require.NoError(t, err)
	assert.Equal(t, "server-1", event.EventID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, entity.TransitionSourceOverride, event.Source)
}

func TestDecodeStageChanged_Errors(t *testing.T) {
	t.Run("bad base64", func(t *testing.T) {
		msg := &PushMessage{}
		msg.Message.Data = "%%%"
		_, err := DecodeStageChanged(msg)
		assert.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		msg := &PushMessage{}
		msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{"))
		_, err := DecodeStageChanged(msg)
		assert.Error(t, err)
	})

	t.Run("other event type", func(t *testing.T) {
		msg := &PushMessage{}
		msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{}"))
		msg.Message.Attributes = map[string]string{"event_type": "customer.deleted"}
		_, err := DecodeStageChanged(msg)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "not configured", pubsub: nil, wantNoop: true},
		{name: "none", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNone}, wantNoop: true},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.Default(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			_, isNoop := publisher.(*noopPublisher)
			assert.Equal(t, tt.wantNoop, isNoop)
			if tt.wantNoop {
				assert.NoError(t, publisher.PublishStageChanged(context.Background(), &service.StageChangedEvent{EventID: "x"}))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
