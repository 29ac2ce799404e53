package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseIntQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"present", "limit=5", 5},
		{"absent", "", 20},
		{"garbage", "limit=abc", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			if got := parseIntQuery(req, "limit", 20); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWriteErrorSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusBadRequest, "INVALID_VALUE", "nope")

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
