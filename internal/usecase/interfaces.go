package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// MovementRepository defines data access for movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	SumByType(ctx context.Context, accountID string, movementType domain.MovementType) (decimal.Decimal, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Movement, error)
}

// IdempotencyRepository defines data access for idempotency records.
type IdempotencyRepository interface {
	// FindResult returns the stored result for key, or
	// domain.ErrIdempotencyNotFound if the key has never been recorded.
	FindResult(ctx context.Context, key string) (string, error)
	// Create inserts a record. Returns domain.ErrDuplicateKey when the key
	// already exists (a concurrent duplicate submission).
	Create(ctx context.Context, tx Transaction, record *domain.IdempotencyRecord) error
}

// IdempotencyCache is a best-effort fast path in front of the durable
// idempotency records. Lookups that miss or fail fall through to the
// repository; the cache is never the source of truth.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, result string)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique movement IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}
