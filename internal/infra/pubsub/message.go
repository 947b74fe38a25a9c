package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"crm/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// EventTypeStageChanged is carried in the event_type attribute.
	EventTypeStageChanged = "customer.stage_changed"

	attrEventType  = "event_type"
	attrEventID    = "event_id"
	attrCustomerID = "customer_id"
	attrRequestID  = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message.
// The local publisher produces it and the worker consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeStageChanged serializes an event and builds its message attributes.
func encodeStageChanged(event *service.StageChangedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		attrEventType:  EventTypeStageChanged,
		attrEventID:    event.EventID,
		attrCustomerID: strconv.FormatInt(event.CustomerID, 10),
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeStageChanged extracts the event carried by a push message.
func DecodeStageChanged(msg *PushMessage) (*service.StageChangedEvent, error) {
	if eventType, ok := msg.Message.Attributes[attrEventType]; ok && eventType != EventTypeStageChanged {
		return nil, errors.Errorf("unsupported event type: %s", eventType)
	}

	raw, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.StageChangedEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal stage changed event")
	}

	if event.EventID == "" {
		event.EventID = msg.Message.MessageID
	}
	if event.RequestID == "" {
		event.RequestID = msg.Message.Attributes[attrRequestID]
	}

	return &event, nil
}
