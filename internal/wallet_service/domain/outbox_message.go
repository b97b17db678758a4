package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Event types written to the outbox.
const (
	EventTypeAccountCreated   = "account-created"
	EventTypePaymentProcessed = "payment-processed"
)

// OutboxMessage is one to-be-published domain event, written in the same
// transaction as the ledger mutation it describes. Rows are append-only;
// the relay that drains them is a separate process.
type OutboxMessage struct {
	ID          string
	AggregateID string // affected user id
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

// BalanceChangedEvent is the payload for both event types: a denormalized
// snapshot so the relay never joins back to the accounts table.
type BalanceChangedEvent struct {
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

// NewAccountCreatedMessage builds the outbox message for a freshly created account.
func NewAccountCreatedMessage(userID string, balance decimal.Decimal) (*OutboxMessage, error) {
	return newBalanceMessage(EventTypeAccountCreated, userID, balance)
}

// NewPaymentProcessedMessage builds the outbox message for a committed deposit.
func NewPaymentProcessedMessage(userID string, newBalance decimal.Decimal) (*OutboxMessage, error) {
	return newBalanceMessage(EventTypePaymentProcessed, userID, newBalance)
}

func newBalanceMessage(eventType, userID string, balance decimal.Decimal) (*OutboxMessage, error) {
	payload, err := json.Marshal(BalanceChangedEvent{UserID: userID, Balance: balance})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return &OutboxMessage{
		AggregateID: userID,
		EventType:   eventType,
		Payload:     payload,
	}, nil
}
