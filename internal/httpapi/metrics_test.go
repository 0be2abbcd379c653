package httpapi

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesRegisteredCollectors(t *testing.T) {
	m := NewMetrics()
	m.observeSolve("greedy", "assigned", 10*time.Millisecond, 1.0)
	m.observeRequest("/solve", 200)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "timetable_solve_duration_seconds")
	assert.Contains(t, body, "timetable_solves_total")
	assert.Contains(t, body, "timetable_http_requests_total")
}
