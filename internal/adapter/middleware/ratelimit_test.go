package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimit_MemoryStore(t *testing.T) {
	l, err := NewLimiter("2-M", nil)
	if err != nil {
		t.Fatalf("NewLimiter: %v", err)
	}
	e := echo.New()
	e.POST("/users/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimit(l))

	hit := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := hit("10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("request %d => %d, want 200", i+1, rec.Code)
		}
	}
	rec := hit("10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("third request => %d, want 429", rec.Code)
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatalf("remaining = %q, want 0", rec.Header().Get("X-RateLimit-Remaining"))
	}
	if rec := hit("10.0.0.2"); rec.Code != http.StatusOK {
		t.Fatalf("other ip => %d, want 200", rec.Code)
	}
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	l, err := NewLimiter("1-H", rdb)
	if err != nil {
		t.Fatalf("NewLimiter: %v", err)
	}
	e := echo.New()
	e.POST("/users/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimit(l))

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v, want [200 429]", codes)
	}
}

func TestNewLimiter_BadRate(t *testing.T) {
	if _, err := NewLimiter("lots", nil); err == nil {
		t.Fatalf("expected error for malformed rate")
	}
}
