package ingest

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readCSV mirrors the teacher's LoadCSV (open, csv.NewReader, ReadAll) but
// wraps failures with pkg/errors instead of baking a formatted string into
// a plain errors.New.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading csv %s", path)
	}
	return records, nil
}

// splitInts parses a pipe-separated list of integers, e.g. "1|2|3".
func splitInts(field string) ([]int, error) {
	if field == "" {
		return nil, nil
	}
	parts := strings.Split(field, "|")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing integer list field %q", field)
		}
		out = append(out, n)
	}
	return out, nil
}

func splitStrings(field string) []string {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// LoadProfessorsCSV reads rows of (id, name, available_slot_ids,
// teachable_course_codes), pipe-separated list columns, no header row.
func LoadProfessorsCSV(path string) ([]ProfessorDoc, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	docs := make([]ProfessorDoc, 0, len(rows))
	for i, row := range rows {
		if len(row) < 4 {
			return nil, errors.Errorf("row %d: expected 4 columns, got %d", i, len(row))
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: parsing id", i)
		}
		slots, err := splitInts(row[2])
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		docs = append(docs, ProfessorDoc{
			ID:                   id,
			Name:                 strings.TrimSpace(row[1]),
			AvailableSlotIDs:     slots,
			TeachableCourseCodes: splitStrings(row[3]),
		})
	}
	return docs, nil
}
