package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"

	"github.com/mvduarte/contaledger/internal/domain"
)

func TestAccountGetByID(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT id, number, holder_name, active FROM accounts WHERE id = $1`)).
		WithArgs("1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "number", "holder_name", "active"}).
			AddRow("1", int64(123), "Luis", true))

	repo := newAccountRepositoryWithConn(mockPool)

	account, err := repo.GetByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.Number != 123 || account.HolderName != "Luis" || !account.Active {
		t.Fatalf("unexpected account: %+v", account)
	}

	assertExpectations(t, mockPool)
}

func TestAccountGetByIDNotFound(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectQuery(regexp.QuoteMeta(`SELECT id, number, holder_name, active FROM accounts WHERE id = $1`)).
		WithArgs("999").
		WillReturnRows(pgxmock.NewRows([]string{"id", "number", "holder_name", "active"}))

	repo := newAccountRepositoryWithConn(mockPool)

	_, err := repo.GetByID(context.Background(), "999")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
