package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/usecase"
)

// IdempotencyRepository implements usecase.IdempotencyRepository. The unique
// constraint on idempotency_key is the arbiter for concurrent duplicate
// submissions: the second insert fails with domain.ErrDuplicateKey and the
// caller re-reads the winner's result.
type IdempotencyRepository struct {
	db conn
}

// NewIdempotencyRepository creates a new IdempotencyRepository.
func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: pool}
}

func newIdempotencyRepositoryWithConn(db conn) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// FindResult returns the stored result for key, or
// domain.ErrIdempotencyNotFound when the key was never recorded.
func (r *IdempotencyRepository) FindResult(ctx context.Context, key string) (string, error) {
	var result string

	err := r.db.QueryRow(ctx,
		`SELECT result FROM idempotency_records WHERE idempotency_key = $1`,
		key,
	).Scan(&result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrIdempotencyNotFound
		}

		return "", err
	}

	return result, nil
}

// Create inserts a record inside tx. Returns domain.ErrDuplicateKey when the
// key already exists.
func (r *IdempotencyRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.IdempotencyRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO idempotency_records (idempotency_key, request, result)
		 VALUES ($1, $2, $3)`,
		record.Key, record.Request, record.Result,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}

		return err
	}

	return nil
}
