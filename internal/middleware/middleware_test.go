package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"missionmind/internal/middleware"
	"missionmind/pkg/log"
)

func newLimitedRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: requestsPerMin})
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func ping(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit_DeniesAfterBurst(t *testing.T) {
	// 60/min gives a burst of 6 tokens per client.
	router := newLimitedRouter(60)

	for i := 0; i < 6; i++ {
		if w := ping(router, "203.0.113.7:51000"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := ping(router, "203.0.113.7:51000")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status after burst = %d, want 429", w.Code)
	}

	var body struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.ErrorCode != 429 || body.Message != "Too many requests" {
		t.Errorf("body = %+v, want 429 / Too many requests", body)
	}
}

func TestRateLimit_SeparateClients(t *testing.T) {
	router := newLimitedRouter(60)

	for i := 0; i < 7; i++ {
		ping(router, "203.0.113.7:51000")
	}

	// A different client keeps its own bucket.
	if w := ping(router, "198.51.100.9:40000"); w.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", w.Code)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	router := newLimitedRouter(0)

	for i := 0; i < 20; i++ {
		if w := ping(router, "203.0.113.7:51000"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200 with limiter off", i+1, w.Code)
		}
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), middleware.Config{})
	r := gin.New()
	r.Use(mw.RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	if w := ping(r, "203.0.113.7:51000"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
