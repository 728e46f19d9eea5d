package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tanglaw_backend/internal/api/middleware"
)

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := middleware.NewRateLimiter(0, 2) // no refill, burst of 2
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("first two requests: %v, want 200,200", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("third request: %d, want 429", codes[2])
	}
}

func TestRateLimiterIsPerIP(t *testing.T) {
	rl := middleware.NewRateLimiter(0, 1)
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first ip: %d, want 200", rec.Code)
	}

	other := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Fatalf("second ip should have its own bucket: %d, want 200", rec.Code)
	}
}
