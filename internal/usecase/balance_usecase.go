package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
)

// BalanceUseCase handles the balance read path.
type BalanceUseCase struct {
	accountRepo  AccountRepository
	movementRepo MovementRepository

	// Retrier, when set, reruns the aggregation on transient storage
	// failures such as deadlocks.
	Retrier Retrier
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(accountRepo AccountRepository, movementRepo MovementRepository) *BalanceUseCase {
	return &BalanceUseCase{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
	}
}

// GetBalance computes the balance snapshot for an account:
// sum of credits minus sum of debits, stamped with the query time.
// An account with no movements has balance zero.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("look up account %s: %w", accountID, err)
	}

	if err := domain.ValidateAccount(account); err != nil {
		return nil, err
	}

	var credits, debits decimal.Decimal
	err = uc.retry(ctx, func() error {
		var sumErr error

		credits, sumErr = uc.movementRepo.SumByType(ctx, accountID, domain.MovementCredit)
		if sumErr != nil {
			return fmt.Errorf("sum credits: %w", sumErr)
		}

		debits, sumErr = uc.movementRepo.SumByType(ctx, accountID, domain.MovementDebit)
		if sumErr != nil {
			return fmt.Errorf("sum debits: %w", sumErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSnapshot{
		AccountNumber: account.Number,
		HolderName:    account.HolderName,
		Balance:       credits.Sub(debits),
		CheckedAt:     time.Now().UTC(),
	}, nil
}

func (uc *BalanceUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.Retrier == nil {
		return operation()
	}

	return uc.Retrier.Retry(ctx, operation)
}
