package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the derived balance of an account at query time:
// sum of credits minus sum of debits. It is computed, never stored.
type BalanceSnapshot struct {
	AccountNumber int64
	HolderName    string
	Balance       decimal.Decimal
	CheckedAt     time.Time
}
