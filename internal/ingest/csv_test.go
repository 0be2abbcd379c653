package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "professors.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadProfessorsCSVParsesPipeSeparatedLists(t *testing.T) {
	path := writeTempCSV(t, "1,P1,1|2|3,MATH|PHYS\n2,P2,4,CHEM\n")

	docs, err := LoadProfessorsCSV(path)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, ProfessorDoc{ID: 1, Name: "P1", AvailableSlotIDs: []int{1, 2, 3}, TeachableCourseCodes: []string{"MATH", "PHYS"}}, docs[0])
	assert.Equal(t, ProfessorDoc{ID: 2, Name: "P2", AvailableSlotIDs: []int{4}, TeachableCourseCodes: []string{"CHEM"}}, docs[1])
}

func TestLoadProfessorsCSVRejectsShortRows(t *testing.T) {
	path := writeTempCSV(t, "1,P1,1\n")

	_, err := LoadProfessorsCSV(path)

	assert.Error(t, err)
}

func TestLoadProfessorsCSVWrapsAMissingFile(t *testing.T) {
	_, err := LoadProfessorsCSV("/nonexistent/professors.csv")
	assert.Error(t, err)
}
