package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/usecase"
)

// MovementRepository implements usecase.MovementRepository. The movements
// table is append-only: there is no update or delete path.
type MovementRepository struct {
	db conn
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{db: pool}
}

func newMovementRepositoryWithConn(db conn) *MovementRepository {
	return &MovementRepository{db: db}
}

// Create inserts a movement inside tx. Returns domain.ErrDuplicateKey if the
// id already exists; with generated ids that indicates a bug upstream, but it
// is surfaced rather than swallowed.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, movement *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`INSERT INTO movements (id, account_id, movement_date, movement_type, amount)
		 VALUES ($1, $2, $3, $4, $5)`,
		movement.ID,
		movement.AccountID,
		pgtype.Date{Time: movement.Date, Valid: true},
		string(movement.Type),
		decimalToNumeric(movement.Amount),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateKey
		}

		return err
	}

	return nil
}

// SumByType returns the sum of amounts for an account and direction, zero
// when no movements match.
func (r *MovementRepository) SumByType(ctx context.Context, accountID string, movementType domain.MovementType) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM movements WHERE account_id = $1 AND movement_type = $2`,
		accountID, string(movementType),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// ListByAccount retrieves an account's movements, newest first.
func (r *MovementRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Movement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, movement_date, movement_type, amount
		 FROM movements
		 WHERE account_id = $1
		 ORDER BY movement_date DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := make([]*domain.Movement, 0)
	for rows.Next() {
		var (
			movement domain.Movement
			date     pgtype.Date
			mvType   string
			amount   pgtype.Numeric
		)

		if err := rows.Scan(&movement.ID, &movement.AccountID, &date, &mvType, &amount); err != nil {
			return nil, err
		}

		movement.Date = date.Time
		movement.Type = domain.MovementType(mvType)
		movement.Amount = numericToDecimal(amount)
		movements = append(movements, &movement)
	}

	return movements, rows.Err()
}
