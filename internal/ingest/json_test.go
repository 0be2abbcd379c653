package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-scheduler/internal/timetable"
)

const validDocument = `{
	"time_slots": [{"id": 1, "day": 1, "start_hour": 8, "end_hour": 9}],
	"professors": [{"id": 1, "name": "P1", "available_slot_ids": [1], "teachable_course_codes": ["MATH"]}],
	"courses": [{"id": 1, "name": "Math I", "code": "MATH", "credits": 15, "semester": 1, "requires_professor": true}],
	"groups": [{"id": 1, "semester": 1, "course_ids": [1]}]
}`

func TestLoadJSONBuildsASolvableBuilder(t *testing.T) {
	b, err := LoadJSON([]byte(validDocument))
	require.NoError(t, err)

	solved, err := b.Solve(timetable.ModeGreedy, 0)
	require.NoError(t, err)
	assert.True(t, solved)
	assert.Len(t, b.GetSolution(), 1)
}

func TestLoadJSONRejectsMissingRequiredFields(t *testing.T) {
	_, err := LoadJSON([]byte(`{"time_slots": [], "professors": [], "courses": [], "groups": []}`))
	assert.Error(t, err)
}

func TestLoadJSONRejectsMalformedJSON(t *testing.T) {
	_, err := LoadJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadJSONFileWrapsAMissingFile(t *testing.T) {
	_, err := LoadJSONFile("/nonexistent/path/to/instance.json")
	assert.Error(t, err)
}
