package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/usecase"
)

// CreateMovementRequest represents a request to record a movement.
type CreateMovementRequest struct {
	AccountID      string          `json:"account_id"`
	Amount         decimal.Decimal `json:"amount"`
	Type           string          `json:"type"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMovementRequest) ToUseCaseInput() usecase.CreateMovementInput {
	return usecase.CreateMovementInput{
		AccountID:      r.AccountID,
		Amount:         r.Amount,
		Type:           domain.MovementType(r.Type),
		IdempotencyKey: r.IdempotencyKey,
	}
}
