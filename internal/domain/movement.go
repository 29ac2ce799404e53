package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType is the direction of a movement.
type MovementType string

const (
	// MovementCredit increases the account balance.
	MovementCredit MovementType = "C"
	// MovementDebit decreases the account balance.
	MovementDebit MovementType = "D"
)

// Valid reports whether t is one of the two canonical direction tokens.
func (t MovementType) Valid() bool {
	return t == MovementCredit || t == MovementDebit
}

// Movement is a single credit or debit entry against an account.
// Movements are append-only: once persisted they are never mutated or deleted.
type Movement struct {
	ID        string
	AccountID string
	Date      time.Time
	Type      MovementType
	Amount    decimal.Decimal
}

// ValidateAmount checks that amount is strictly positive.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidValue
	}

	return nil
}

// ValidateType checks that t is a canonical direction token.
func ValidateType(t MovementType) error {
	if !t.Valid() {
		return ErrInvalidType
	}

	return nil
}

// ValidateAccount checks account existence and activity. A nil account means
// the lookup found nothing.
func ValidateAccount(account *Account) error {
	if account == nil {
		return ErrInvalidAccount
	}

	if !account.Active {
		return ErrInactiveAccount
	}

	return nil
}
