package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"preplan.flightworks.org/internal/clock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddlewareAllowsWithinLimit(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))
	rl := NewRateLimitMiddleware(2, time.Second, nil, mockClock)
	defer rl.Stop()

	handler := rl.Handler()(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/preplan/current-time.json?key=TEST", nil))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/preplan/current-time.json?key=TEST", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["text"])
	references := body["data"].(map[string]interface{})["references"].(map[string]interface{})
	assert.Contains(t, references, "airports")
	assert.Contains(t, references, "requirements")
}

func TestRateLimitMiddlewareTracksKeysSeparately(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))
	rl := NewRateLimitMiddleware(1, time.Second, nil, mockClock)
	defer rl.Stop()

	handler := rl.Handler()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?key=alpha", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?key=alpha", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different key has its own bucket.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?key=beta", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddlewareExemptKeys(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))
	rl := NewRateLimitMiddleware(1, time.Second, []string{"vip"}, mockClock)
	defer rl.Stop()

	handler := rl.Handler()(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?key=vip", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimitMiddlewareCleanupEvictsIdleClients(t *testing.T) {
	mockClock := clock.NewMockClock(time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC))
	rl := NewRateLimitMiddleware(10, time.Second, nil, mockClock)
	defer rl.Stop()

	handler := rl.Handler()(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/?key=idle", nil))

	rl.mu.RLock()
	assert.Len(t, rl.limiters, 1)
	rl.mu.RUnlock()

	mockClock.Advance(11 * time.Minute)
	rl.cleanupOnce()

	rl.mu.RLock()
	assert.Empty(t, rl.limiters)
	rl.mu.RUnlock()
}
