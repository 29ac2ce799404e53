package goals

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// pageResponse renders one football_matches page for the mock server.
func pageResponse(page, totalPages int, goals ...int) string {
	data := ""
	for i, g := range goals {
		if i > 0 {
			data += ","
		}
		data += fmt.Sprintf(`{"team1":"A","team2":"B","team1goals":"%d","team2goals":"%d"}`, g, g)
	}

	return fmt.Sprintf(`{"page":%d,"total_pages":%d,"data":[%s]}`, page, totalPages, data)
}

func TestTotalScoredGoals_SumsBothSidesAcrossPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := q.Get("page")

		switch {
		case q.Get("team1") == "Chelsea" && page == "1":
			fmt.Fprint(w, pageResponse(1, 2, 2, 3))
		case q.Get("team1") == "Chelsea" && page == "2":
			fmt.Fprint(w, pageResponse(2, 2, 1))
		case q.Get("team2") == "Chelsea" && page == "1":
			fmt.Fprint(w, pageResponse(1, 1, 4))
		default:
			t.Errorf("unexpected request: %s", r.URL)
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	total, err := client.TotalScoredGoals(context.Background(), "Chelsea", 2014)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 10 {
		t.Fatalf("expected 10 goals, got %d", total)
	}
}

func TestTotalScoredGoals_EmptySeasonIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pageResponse(1, 0))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	total, err := client.TotalScoredGoals(context.Background(), "Nobody", 1900)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 goals, got %d", total)
	}
}

func TestFetchPage_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, pageResponse(1, 1, 7))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRetryWindow(10*time.Millisecond, time.Second))

	total, err := client.TotalScoredGoals(context.Background(), "A", 2013)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 7 as home plus 7 as away, the mock serves one match either way.
	if total != 14 {
		t.Fatalf("expected 14 goals, got %d", total)
	}
	if calls.Load() < 3 {
		t.Fatalf("expected a retry plus both side passes, got %d calls", calls.Load())
	}
}

func TestFetchPage_ClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithRetryWindow(10*time.Millisecond, time.Second))

	if _, err := client.TotalScoredGoals(context.Background(), "A", 2013); err == nil {
		t.Fatal("expected an error")
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestFetchPage_MalformedGoalsFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"page":1,"total_pages":1,"data":[{"team1goals":"not-a-number","team2goals":"0"}]}`)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	if _, err := client.TotalScoredGoals(context.Background(), "A", 2013); err == nil {
		t.Fatal("expected an error")
	}
}
