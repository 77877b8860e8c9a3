package leetcode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ryanmello/devboard/internal/domain"
)

func TestFetchStatsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/alice" {
			t.Errorf("Expected path /alice, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"totalSolved": 150,
			"totalQuestions": 3000,
			"easySolved": 80, "totalEasy": 800,
			"mediumSolved": 50, "totalMedium": 1600,
			"hardSolved": 20, "totalHard": 600,
			"acceptanceRate": 55.4,
			"ranking": 123456,
			"submissionCalendar": {"1755907200": 3, "1756080000": 1}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	stats, err := client.FetchStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchStats returned error: %v", err)
	}

	if stats.TotalSolved != 150 {
		t.Errorf("Expected totalSolved 150, got %d", stats.TotalSolved)
	}
	if stats.Ranking != 123456 {
		t.Errorf("Expected ranking 123456, got %d", stats.Ranking)
	}
	if len(stats.SubmissionCalendar) != 2 {
		t.Errorf("Expected 2 calendar entries, got %d", len(stats.SubmissionCalendar))
	}
	if stats.SubmissionCalendar["1755907200"] != 3 {
		t.Errorf("Unexpected calendar count: %d", stats.SubmissionCalendar["1755907200"])
	}
}

func TestFetchStatsInBandError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "user does not exist"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchStats(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Errorf("Expected ErrFeedUnavailable, got %v", err)
	}
}

func TestFetchStatsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchStats(context.Background(), "alice")
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Errorf("Expected ErrFeedUnavailable, got %v", err)
	}
}

func TestFetchStatsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.FetchStats(context.Background(), "alice")
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Errorf("Expected ErrFeedUnavailable, got %v", err)
	}
}

func TestFetchStatsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 10*time.Millisecond)
	_, err := client.FetchStats(context.Background(), "alice")
	if !errors.Is(err, domain.ErrFeedUnavailable) {
		t.Errorf("Expected ErrFeedUnavailable, got %v", err)
	}
}
