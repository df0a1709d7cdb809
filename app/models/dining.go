package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is an immutable point-in-time dining balance.
// Snapshots are append-only; the row with the greatest CreatedAt is
// the account's current balance.
type BalanceSnapshot struct {
	ID            int64           `json:"-"`
	AccountID     string          `json:"-"`
	DiningDollars decimal.Decimal `json:"dining_dollars"`
	Swipes        int             `json:"swipes"`
	GuestSwipes   int             `json:"guest_swipes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionRecord is one entry of the append-only dining dollar
// ledger. Records are never updated or deleted, and for a given
// account their dates strictly increase.
type TransactionRecord struct {
	ID          int64           `json:"-"`
	AccountID   string          `json:"-"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
}
