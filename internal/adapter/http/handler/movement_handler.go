package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mvduarte/contaledger/internal/adapter/http/dto"
	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/infrastructure/metrics"
	"github.com/mvduarte/contaledger/internal/usecase"
)

// MovementService is the slice of the write path the handler depends on.
type MovementService interface {
	CreateMovement(ctx context.Context, input usecase.CreateMovementInput) (string, error)
	ListMovements(ctx context.Context, input usecase.ListMovementsInput) ([]*domain.Movement, error)
}

// MovementHandler handles movement-related HTTP requests.
type MovementHandler struct {
	movementUC MovementService
	metrics    *metrics.Metrics
}

// NewMovementHandler creates a new MovementHandler. m may be nil.
func NewMovementHandler(movementUC MovementService, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{movementUC: movementUC, metrics: m}
}

// Create records a movement.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.KindInvalidRequest, "invalid request body")
		return
	}

	// The key may travel in the body or in the conventional header.
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = r.Header.Get("Idempotency-Key")
	}
	if req.IdempotencyKey == "" {
		writeError(w, http.StatusBadRequest, domain.KindInvalidRequest, "an idempotency key is required")
		return
	}

	start := time.Now()

	movementID, err := h.movementUC.CreateMovement(r.Context(), req.ToUseCaseInput())
	if err != nil {
		respondError(w, h.metrics, err)
		return
	}

	if h.metrics != nil {
		h.metrics.MovementsCreated.WithLabelValues(req.Type).Inc()
		h.metrics.MovementDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusCreated, dto.MovementCreatedResponse{MovementID: movementID})
}

// ListByAccount lists an account's movements, newest first.
func (h *MovementHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, domain.KindInvalidRequest, "missing account ID")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	movements, err := h.movementUC.ListMovements(r.Context(), usecase.ListMovementsInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		respondError(w, h.metrics, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MovementsFromDomain(movements))
}
