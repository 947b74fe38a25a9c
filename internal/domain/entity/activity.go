package entity

import (
	"slices"
	"strings"
	"time"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"
)

// ActivityType is a recorded customer event kind.
type ActivityType string

const (
	ActivityCreated     ActivityType = "created"
	ActivityPurchase    ActivityType = "purchase"
	ActivityTicketRaise ActivityType = "ticketRaise"
	ActivitySettlement  ActivityType = "settlement"
)

// ActivityTypes lists the accepted activity vocabulary.
func ActivityTypes() []ActivityType {
	return []ActivityType{ActivityCreated, ActivityPurchase, ActivityTicketRaise, ActivitySettlement}
}

// String returns the string representation of the ActivityType.
func (t ActivityType) String() string {
	return string(t)
}

// Activity is a customer event waiting for, or already accounted for by, the reconciler.
type Activity struct {
	ID          int64        `json:"id"`           // Monotonic sequence assigned by the store.
	CustomerID  int64        `json:"customer_id"`  // Owning customer.
	Type        ActivityType `json:"type"`         // Immutable once validated.
	Processed   bool         `json:"processed"`    // Flips false -> true exactly once.
	ProcessedAt *time.Time   `json:"processed_at"` // Set together with Processed.
	CreatedAt   time.Time    `json:"created_at"`
}

// ValidateActivityType checks raw against the activity vocabulary, case-sensitively.
func ValidateActivityType(raw string) error {
	if !slices.Contains(ActivityTypes(), ActivityType(raw)) {
		return errors.Wrapf(domainerrors.ErrInvalidActivityType, "activity type %q", raw)
	}

	return nil
}

// NewActivity builds a fresh unprocessed activity for a customer.
// An invalid type fails here, before anything reaches the store.
func NewActivity(customerID int64, rawType string) (*Activity, error) {
	if err := ValidateActivityType(rawType); err != nil {
		return nil, err
	}

	return &Activity{
		CustomerID: customerID,
		Type:       ActivityType(rawType),
		Processed:  false,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// ParseActivityType resolves a stored type ignoring case. The reconciler uses it
// so that rows written with a different casing still map onto the vocabulary.
func ParseActivityType(raw string) (ActivityType, error) {
	for _, known := range ActivityTypes() {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}

	return "", errors.Wrapf(domainerrors.ErrInvalidActivityType, "activity type %q", raw)
}

// MarkProcessed flags the activity as accounted for. It reports false if the
// activity had already been processed.
func (a *Activity) MarkProcessed(at time.Time) bool {
	if a.Processed {
		return false
	}

	a.Processed = true
	a.ProcessedAt = &at

	return true
}
