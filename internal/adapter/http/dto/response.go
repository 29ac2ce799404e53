package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
)

// MovementCreatedResponse is the response for a recorded movement.
type MovementCreatedResponse struct {
	MovementID string `json:"movement_id"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	AccountNumber int64           `json:"account_number"`
	HolderName    string          `json:"holder_name"`
	Balance       decimal.Decimal `json:"balance"`
	CheckedAt     time.Time       `json:"checked_at"`
}

// BalanceFromDomain converts a balance snapshot to a response.
func BalanceFromDomain(s *domain.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		AccountNumber: s.AccountNumber,
		HolderName:    s.HolderName,
		Balance:       s.Balance,
		CheckedAt:     s.CheckedAt,
	}
}

// MovementResponse is one movement in a statement listing.
type MovementResponse struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Date      string          `json:"date"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// ListMovementsResponse is the response for a statement listing.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	Count     int                `json:"count"`
}

// MovementsFromDomain converts movements to a listing response.
func MovementsFromDomain(movements []*domain.Movement) ListMovementsResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, MovementResponse{
			ID:        m.ID,
			AccountID: m.AccountID,
			Date:      m.Date.Format("2006-01-02"),
			Type:      string(m.Type),
			Amount:    m.Amount,
		})
	}
	return ListMovementsResponse{Movements: out, Count: len(out)}
}

// ErrorResponse is the error envelope returned to clients.
type ErrorResponse struct {
	Tipo     string `json:"tipo"`
	Mensagem string `json:"mensagem"`
}
