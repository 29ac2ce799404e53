package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvduarte/contaledger/internal/domain"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	db conn
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: pool}
}

func newAccountRepositoryWithConn(db conn) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByID retrieves an account by ID. Returns domain.ErrAccountNotFound when
// no row matches.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account

	err := r.db.QueryRow(ctx,
		`SELECT id, number, holder_name, active FROM accounts WHERE id = $1`,
		id,
	).Scan(&account.ID, &account.Number, &account.HolderName, &account.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	return &account, nil
}
