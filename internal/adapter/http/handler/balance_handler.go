package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mvduarte/contaledger/internal/adapter/http/dto"
	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/infrastructure/metrics"
)

// BalanceService is the slice of the read path the handler depends on.
type BalanceService interface {
	GetBalance(ctx context.Context, accountID string) (*domain.BalanceSnapshot, error)
}

// BalanceHandler handles balance queries.
type BalanceHandler struct {
	balanceUC BalanceService
	metrics   *metrics.Metrics
}

// NewBalanceHandler creates a new BalanceHandler. m may be nil.
func NewBalanceHandler(balanceUC BalanceService, m *metrics.Metrics) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC, metrics: m}
}

// Get returns an account's current balance.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, domain.KindInvalidRequest, "missing account ID")
		return
	}

	snapshot, err := h.balanceUC.GetBalance(r.Context(), accountID)
	if err != nil {
		respondError(w, h.metrics, err)
		return
	}

	if h.metrics != nil {
		h.metrics.BalanceQueries.Inc()
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(snapshot))
}
