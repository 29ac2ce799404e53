package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mvduarte/contaledger/internal/adapter/http/dto"
	"github.com/mvduarte/contaledger/internal/domain"
)

type balanceServiceStub struct {
	getFn func(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error)
}

func (s *balanceServiceStub) GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
	return s.getFn(ctx, accountID)
}

func newBalanceRequest(accountID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", accountID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestBalanceHandler_Get_Success(t *testing.T) {
	checkedAt := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)

	handler := NewBalanceHandler(&balanceServiceStub{
		getFn: func(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
			if accountID != "1" {
				t.Fatalf("expected account id 1, got %q", accountID)
			}

			return &domain.BalanceSnapshot{
				AccountNumber: 123,
				HolderName:    "Luis",
				Balance:       decimal.RequireFromString("100.00"),
				CheckedAt:     checkedAt,
			}, nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	handler.Get(rec, newBalanceRequest("1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.BalanceResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccountNumber != 123 {
		t.Errorf("expected account number 123, got %d", resp.AccountNumber)
	}
	if resp.HolderName != "Luis" {
		t.Errorf("expected holder Luis, got %q", resp.HolderName)
	}
	if !resp.Balance.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected balance 100.00, got %s", resp.Balance)
	}
	if !resp.CheckedAt.Equal(checkedAt) {
		t.Errorf("expected checked_at %s, got %s", checkedAt, resp.CheckedAt)
	}
}

func TestBalanceHandler_Get_UnknownAccount(t *testing.T) {
	handler := NewBalanceHandler(&balanceServiceStub{
		getFn: func(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
			return nil, domain.ErrInvalidAccount
		},
	}, nil)

	rec := httptest.NewRecorder()
	handler.Get(rec, newBalanceRequest("missing"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if envelope := decodeErrorResponse(t, rec); envelope.Tipo != domain.KindInvalidAccount {
		t.Fatalf("expected tipo INVALID_ACCOUNT, got %q", envelope.Tipo)
	}
}

func TestBalanceHandler_Get_InactiveAccount(t *testing.T) {
	handler := NewBalanceHandler(&balanceServiceStub{
		getFn: func(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
			return nil, domain.ErrInactiveAccount
		},
	}, nil)

	rec := httptest.NewRecorder()
	handler.Get(rec, newBalanceRequest("2"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if envelope := decodeErrorResponse(t, rec); envelope.Tipo != domain.KindInactiveAccount {
		t.Fatalf("expected tipo INACTIVE_ACCOUNT, got %q", envelope.Tipo)
	}
}

func TestBalanceHandler_Get_StoreFailure(t *testing.T) {
	handler := NewBalanceHandler(&balanceServiceStub{
		getFn: func(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error) {
			return nil, context.DeadlineExceeded
		},
	}, nil)

	rec := httptest.NewRecorder()
	handler.Get(rec, newBalanceRequest("1"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if envelope := decodeErrorResponse(t, rec); envelope.Tipo != domain.KindInternalError {
		t.Fatalf("expected tipo INTERNAL_ERROR, got %q", envelope.Tipo)
	}
}
