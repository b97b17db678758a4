package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds the balance for a single user. The user id is assigned by the
// caller at creation time; the balance never goes negative.
type Account struct {
	UserID    string          `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewAccount returns a fresh zero-balance account for userID.
func NewAccount(userID string) *Account {
	now := time.Now().UTC()
	return &Account{
		UserID:    userID,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BalanceSnapshot is the read-model result of a deposit or balance query:
// the user id and the balance as persisted at commit time.
type BalanceSnapshot struct {
	UserID  string          `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}
