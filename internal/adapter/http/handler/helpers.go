package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mvduarte/contaledger/internal/adapter/http/dto"
	"github.com/mvduarte/contaledger/internal/domain"
	"github.com/mvduarte/contaledger/internal/infrastructure/metrics"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the error envelope.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, dto.ErrorResponse{Tipo: kind, Mensagem: message})
}

// respondError maps a failure onto the error envelope. Business rule
// violations carry their kind and get a 400; anything else is reported as an
// internal error and its details stay out of the response.
func respondError(w http.ResponseWriter, m *metrics.Metrics, err error) {
	if bizErr, ok := domain.AsBusinessError(err); ok {
		if m != nil {
			m.BusinessErrors.WithLabelValues(bizErr.Kind).Inc()
		}
		writeError(w, http.StatusBadRequest, bizErr.Kind, bizErr.Message)

		return
	}

	if m != nil {
		m.InternalErrors.Inc()
	}
	writeError(w, http.StatusInternalServerError, domain.KindInternalError, "an unexpected error occurred")
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
