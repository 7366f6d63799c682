package upload

import (
	"strings"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/model"
)

// Recognized columns. Header names are trimmed before matching, any other
// column is ignored.
const (
	columnFirstName = "FirstName"
	columnPhone     = "Phone"
	columnNotes     = "Notes"
)

// Normalize coerces raw rows into canonical customer records preserving
// the original file order. Header keys are trimmed to tolerate files with
// accidental padding, missing fields default to an empty string. A row is
// kept only if its trimmed FirstName or Phone is non-empty.
func Normalize(rows []Row) ([]model.CustomerRecord, error) {
	customers := make([]model.CustomerRecord, 0, len(rows))

	for _, row := range rows {
		clean := make(map[string]string, len(row))
		for key, value := range row {
			clean[strings.TrimSpace(key)] = value
		}

		record := model.CustomerRecord{
			FirstName: clean[columnFirstName],
			Phone:     clean[columnPhone],
			Notes:     clean[columnNotes],
		}

		if strings.TrimSpace(record.FirstName) == "" && strings.TrimSpace(record.Phone) == "" {
			continue
		}
		customers = append(customers, record)
	}

	if len(customers) == 0 {
		return nil, apperrors.ErrNoValidRecords
	}
	return customers, nil
}
