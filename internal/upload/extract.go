// Package upload implements the ingestion side of the distribution
// pipeline: raw file extraction, normalization and round-robin
// partitioning of customer leads.
package upload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "leadassign/internal/errors"
)

// Row is a raw spreadsheet row keyed by column header. Rows are an
// internal parsing artifact and never cross the normalizer boundary.
type Row map[string]string

// Extract converts the uploaded file content into an ordered sequence of
// raw rows based on the declared extension (lowercase, dot included).
func Extract(content []byte, ext string) ([]Row, error) {
	switch strings.ToLower(ext) {
	case ".csv":
		return extractCSV(content)
	case ".xls", ".xlsx":
		return extractWorkbook(content)
	default:
		return nil, &apperrors.UnsupportedFormatError{Ext: ext}
	}
}

// extractCSV treats the first record as the header row. Blank lines are
// skipped by the reader itself, ragged rows are tolerated - missing cells
// become empty strings, extra cells are ignored.
func extractCSV(content []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	if len(records) == 0 {
		return []Row{}, nil
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, buildRow(headers, record))
	}
	return rows, nil
}

// extractWorkbook reads only the first sheet of the workbook and keys
// every row by the sheet's own header row.
func extractWorkbook(content []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParseError(errors.New("workbook has no sheets"))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	if len(records) == 0 {
		return []Row{}, nil
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, buildRow(headers, record))
	}
	return rows, nil
}

func buildRow(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, header := range headers {
		if i < len(record) {
			row[header] = record[i]
		} else {
			row[header] = ""
		}
	}
	return row
}
