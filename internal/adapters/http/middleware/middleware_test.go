package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// TestRateLimiter_Allow tests burst exhaustion and refill.
func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Second)
	rl.now = func() time.Time { return now }

	if !rl.Allow("1.2.3.4") || !rl.Allow("1.2.3.4") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("1.2.3.4") {
		t.Error("third request in the same second should be limited")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("another IP has its own bucket")
	}
	now = now.Add(time.Second)
	if !rl.Allow("1.2.3.4") {
		t.Error("bucket should refill after the interval")
	}
}

// TestRateLimiter_Evict tests that idle visitors are dropped.
func TestRateLimiter_Evict(t *testing.T) {
	now := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5, time.Second)
	rl.now = func() time.Time { return now }
	rl.Allow("a")
	now = now.Add(visitorTTL + time.Second)
	rl.Allow("b")

	if n := rl.evict(); n != 1 {
		t.Errorf("evict() = %d, want 1", n)
	}
	if _, ok := rl.visitors["b"]; !ok {
		t.Error("recent visitor should be kept")
	}
}

// TestRateLimit_Middleware tests the 429 response and the static exemption.
func TestRateLimit_Middleware(t *testing.T) {
	handler := RateLimit(NewRateLimiter(1, time.Hour))(okHandler)
	codes := make([]int, 0, 3)
	for _, path := range []string{"/", "/", "/static/a.png"} {
		req := httptest.NewRequest("GET", path, nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	want := []int{http.StatusOK, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d status = %d, want %d", i, codes[i], want[i])
		}
	}
}

// TestSecurityHeaders tests that the OWASP headers are present.
func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(okHandler).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	for _, h := range []string{"Content-Security-Policy", "X-Frame-Options", "X-Content-Type-Options", "Referrer-Policy"} {
		if rr.Header().Get(h) == "" {
			t.Errorf("missing header %s", h)
		}
	}
}

// TestCSRF tests that form posts need a token and JSON posts do not.
func TestCSRF(t *testing.T) {
	handler := CSRF(bytes.Repeat([]byte("k"), 32), []string{"example.com"}, false)(okHandler)

	form := httptest.NewRequest("POST", "/checkin/1/toggle", nil)
	form.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, form)
	if rr.Code != http.StatusForbidden {
		t.Errorf("form post without token = %d, want 403", rr.Code)
	}

	api := httptest.NewRequest("POST", "/api/checkins/1/toggle", nil)
	api.Header.Set("Content-Type", "application/json")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, api)
	if rr.Code != http.StatusOK {
		t.Errorf("json post = %d, want 200", rr.Code)
	}

	get := httptest.NewRequest("GET", "/checkin", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, get)
	if rr.Code != http.StatusOK {
		t.Errorf("get = %d, want 200", rr.Code)
	}
}

// TestRecover tests that a panic becomes a 500.
func TestRecover(t *testing.T) {
	rr := httptest.NewRecorder()
	Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

// TestChain tests that the last middleware listed runs first.
func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	Chain(okHandler, mark("inner"), mark("outer")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("order = %v, want [outer inner]", order)
	}
}
