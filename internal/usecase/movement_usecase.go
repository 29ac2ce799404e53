package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
)

// MovementUseCase handles the movement write path: idempotency guard,
// validation, persistence.
type MovementUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	movementRepo    MovementRepository
	idempotencyRepo IdempotencyRepository
	cache           IdempotencyCache
	idGen           IDGenerator

	// ReplayCounter, when set, is incremented each time a write is answered
	// from the idempotency guard instead of being executed again.
	ReplayCounter prometheus.Counter
}

// NewMovementUseCase creates a new MovementUseCase. cache may be nil; the
// durable idempotency records are always consulted.
func NewMovementUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	movementRepo MovementRepository,
	idempotencyRepo IdempotencyRepository,
	cache IdempotencyCache,
	idGen IDGenerator,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		movementRepo:    movementRepo,
		idempotencyRepo: idempotencyRepo,
		cache:           cache,
		idGen:           idGen,
	}
}

// CreateMovementInput represents input for recording a movement.
type CreateMovementInput struct {
	AccountID      string              `json:"account_id"`
	Amount         decimal.Decimal     `json:"amount"`
	Type           domain.MovementType `json:"type"`
	IdempotencyKey string              `json:"idempotency_key"`
}

// CreateMovement records a movement and returns its generated id.
//
// Replays are honored before anything else: a request whose idempotency key
// was already processed gets the stored movement id back without
// re-validation, even if the payload differs. On a concurrent duplicate
// submission the store's uniqueness constraint arbitrates; the loser re-reads
// the winner's result instead of surfacing an error.
func (uc *MovementUseCase) CreateMovement(ctx context.Context, input CreateMovementInput) (string, error) {
	result, replayed, err := uc.lookupIdempotency(ctx, input.IdempotencyKey)
	if err != nil {
		return "", err
	}
	if replayed {
		uc.countReplay()
		return result, nil
	}

	if err := uc.validate(ctx, input); err != nil {
		return "", err
	}

	movement := &domain.Movement{
		ID:        uc.idGen.Generate(),
		AccountID: input.AccountID,
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Type:      input.Type,
		Amount:    input.Amount,
	}

	serialized, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("serialize movement request: %w", err)
	}

	err = uc.persist(ctx, movement, &domain.IdempotencyRecord{
		Key:     input.IdempotencyKey,
		Request: string(serialized),
		Result:  movement.ID,
	})
	if errors.Is(err, domain.ErrDuplicateKey) {
		// Lost the duplicate-submission race: another request with the same
		// key committed first. Return its result. A single re-query, not a
		// retry loop.
		result, findErr := uc.idempotencyRepo.FindResult(ctx, input.IdempotencyKey)
		if findErr != nil {
			return "", fmt.Errorf("idempotency record vanished after conflict: %w", findErr)
		}

		uc.cacheResult(ctx, input.IdempotencyKey, result)
		uc.countReplay()

		return result, nil
	}
	if err != nil {
		return "", err
	}

	uc.cacheResult(ctx, input.IdempotencyKey, movement.ID)

	return movement.ID, nil
}

// validate applies the business rules in their required precedence:
// account exists, account active, amount positive, type canonical.
func (uc *MovementUseCase) validate(ctx context.Context, input CreateMovementInput) error {
	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("look up account %s: %w", input.AccountID, err)
	}

	if err := domain.ValidateAccount(account); err != nil {
		return err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return err
	}

	return domain.ValidateType(input.Type)
}

// persist writes the movement and its idempotency record in one transaction.
func (uc *MovementUseCase) persist(ctx context.Context, movement *domain.Movement, record *domain.IdempotencyRecord) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	if err := uc.idempotencyRepo.Create(ctx, tx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return err
		}

		return fmt.Errorf("insert idempotency record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit movement: %w", err)
	}

	return nil
}

func (uc *MovementUseCase) lookupIdempotency(ctx context.Context, key string) (string, bool, error) {
	if uc.cache != nil {
		if result, ok := uc.cache.Get(ctx, key); ok {
			return result, true, nil
		}
	}

	result, err := uc.idempotencyRepo.FindResult(ctx, key)
	if errors.Is(err, domain.ErrIdempotencyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("look up idempotency key: %w", err)
	}

	uc.cacheResult(ctx, key, result)

	return result, true, nil
}

func (uc *MovementUseCase) countReplay() {
	if uc.ReplayCounter != nil {
		uc.ReplayCounter.Inc()
	}
}

func (uc *MovementUseCase) cacheResult(ctx context.Context, key, result string) {
	if uc.cache != nil {
		uc.cache.Set(ctx, key, result)
	}
}

// ListMovementsInput represents input for listing an account's movements.
type ListMovementsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListMovements lists an account's movements, newest first.
func (uc *MovementUseCase) ListMovements(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("look up account %s: %w", input.AccountID, err)
	}

	if err := domain.ValidateAccount(account); err != nil {
		return nil, err
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.movementRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
