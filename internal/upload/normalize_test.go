package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "leadassign/internal/errors"
)

func TestNormalize(t *testing.T) {
	rows := []Row{
		{"FirstName": "John", "Phone": "111222333", "Notes": "vip"},
		{"FirstName": "Jane", "Phone": "444555666"},
	}

	customers, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, "John", customers[0].FirstName)
	assert.Equal(t, "111222333", customers[0].Phone)
	assert.Equal(t, "vip", customers[0].Notes)
	assert.Equal(t, "", customers[1].Notes, "missing column must default to empty string")
}

func TestNormalizeTrimsHeaderKeys(t *testing.T) {
	rows := []Row{
		{" FirstName ": "John", "Phone\t": "111222333", "Notes": "vip"},
	}

	customers, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, customers, 1)

	assert.Equal(t, "John", customers[0].FirstName)
	assert.Equal(t, "111222333", customers[0].Phone)
}

func TestNormalizeDropsEmptyRows(t *testing.T) {
	rows := []Row{
		{"FirstName": "John", "Phone": "111222333"},
		{"FirstName": "", "Phone": "", "Notes": "only notes"},
		{"FirstName": "   ", "Phone": "\t"},
		{"FirstName": "", "Phone": "999"},
	}

	customers, err := Normalize(rows)
	require.NoError(t, err)
	require.Len(t, customers, 2, "rows with neither first name nor phone must be dropped")

	assert.Equal(t, "John", customers[0].FirstName)
	assert.Equal(t, "999", customers[1].Phone)
}

func TestNormalizePreservesOrder(t *testing.T) {
	rows := []Row{
		{"FirstName": "A", "Phone": "1"},
		{"FirstName": "B", "Phone": "2"},
		{"FirstName": "C", "Phone": "3"},
	}

	customers, err := Normalize(rows)
	require.NoError(t, err)

	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.FirstName)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestNormalizeNoValidRecords(t *testing.T) {
	rows := []Row{
		{"FirstName": "", "Phone": " ", "Notes": "ignored"},
	}

	_, err := Normalize(rows)
	assert.ErrorIs(t, err, apperrors.ErrNoValidRecords)
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, apperrors.ErrNoValidRecords)
}
