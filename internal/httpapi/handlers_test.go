package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-scheduler/internal/export"
)

const solveBody = `{
	"mode": "greedy",
	"deadline_seconds": 1,
	"time_slots": [{"id": 1, "day": 1, "start_hour": 8, "end_hour": 9}],
	"professors": [{"id": 1, "name": "P1", "available_slot_ids": [1], "teachable_course_codes": ["MATH"]}],
	"courses": [{"id": 1, "name": "Math I", "code": "MATH", "credits": 15, "semester": 1, "requires_professor": true}],
	"groups": [{"id": 1, "semester": 1, "course_ids": [1]}]
}`

func TestHandleHealthReportsOK(t *testing.T) {
	app := NewApp(NewMetrics())
	req := httptest.NewRequest("GET", "/healthz", nil)

	resp, err := app.fiber.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleSolveReturnsAssignmentsForAValidRequest(t *testing.T) {
	app := NewApp(NewMetrics())
	req := httptest.NewRequest("POST", "/solve", bytes.NewBufferString(solveBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var doc export.ScheduleExport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, 1, doc.Summary.SessionsAssigned)
	require.Len(t, doc.Assignments, 1)
}

func TestHandleSolveRejectsAnInvalidMode(t *testing.T) {
	app := NewApp(NewMetrics())
	body := bytes.Replace([]byte(solveBody), []byte(`"mode": "greedy"`), []byte(`"mode": "quantum"`), 1)
	req := httptest.NewRequest("POST", "/solve", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.fiber.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleSolveRejectsMalformedBody(t *testing.T) {
	app := NewApp(NewMetrics())
	req := httptest.NewRequest("POST", "/solve", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
