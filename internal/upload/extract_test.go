package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "leadassign/internal/errors"
)

func TestExtractCSV(t *testing.T) {
	content := []byte("FirstName,Phone,Notes\nJohn,111222333,vip\nJane,444555666,\n")

	rows, err := Extract(content, ".csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "John", rows[0]["FirstName"])
	assert.Equal(t, "111222333", rows[0]["Phone"])
	assert.Equal(t, "vip", rows[0]["Notes"])
	assert.Equal(t, "Jane", rows[1]["FirstName"])
	assert.Equal(t, "", rows[1]["Notes"])
}

func TestExtractCSVRaggedRows(t *testing.T) {
	content := []byte("FirstName,Phone,Notes\nJohn\nJane,444555666,note,extra\n")

	rows, err := Extract(content, ".csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "John", rows[0]["FirstName"])
	assert.Equal(t, "", rows[0]["Phone"], "missing cells must default to empty string")
	assert.Equal(t, "", rows[0]["Notes"])
	assert.Equal(t, "note", rows[1]["Notes"], "extra cells must be dropped")
}

func TestExtractCSVHeaderOnly(t *testing.T) {
	rows, err := Extract([]byte("FirstName,Phone,Notes\n"), ".csv")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExtractCSVMalformed(t *testing.T) {
	content := []byte("FirstName,Phone\n\"unclosed,111\n")

	_, err := Extract(content, ".csv")
	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExtractXlsx(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"FirstName", "Phone", "Notes"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"John", "111222333", "vip"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Jane", "444555666"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := Extract(buf.Bytes(), ".xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "John", rows[0]["FirstName"])
	assert.Equal(t, "vip", rows[0]["Notes"])
	assert.Equal(t, "Jane", rows[1]["FirstName"])
	assert.Equal(t, "", rows[1]["Notes"])
}

func TestExtractXlsxMalformed(t *testing.T) {
	_, err := Extract([]byte("definitely not a workbook"), ".xlsx")
	var parseErr *apperrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	_, err := Extract([]byte("whatever"), ".pdf")
	var unsupportedErr *apperrors.UnsupportedFormatError
	require.ErrorAs(t, err, &unsupportedErr)
	assert.Equal(t, ".pdf", unsupportedErr.Ext)
}

func TestExtractExtensionCaseInsensitive(t *testing.T) {
	rows, err := Extract([]byte("FirstName,Phone\nJohn,111\n"), ".CSV")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
