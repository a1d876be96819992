package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"drinks-api/core/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes sheets of string rows (header first) into an xlsx buffer.
func buildWorkbook(t *testing.T, sheets map[string][][]any, order ...string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadWorkbook_XLSX(t *testing.T) {
	buf := buildWorkbook(t, map[string][][]any{
		"Countries": {
			{"id", "name", "isoCode"},
			{"cl", "Chile", "CL"},
			{nil, nil, nil},
			{"ar", "Argentina", "AR"},
		},
		"Packaging": {
			{"id", "name"},
		},
	}, "Countries", "Packaging")

	sheets, err := ingest.ReadWorkbook(buf, "catalog.XLSX")
	require.NoError(t, err)
	require.Len(t, sheets, 2)

	countries := sheets[0]
	assert.Equal(t, "Countries", countries.Name)
	require.Len(t, countries.Rows, 2)
	assert.Equal(t, 2, countries.Rows[0].Line)
	assert.Equal(t, map[string]any{"id": "cl", "name": "Chile", "isoCode": "CL"}, countries.Rows[0].Values)
	assert.Equal(t, 4, countries.Rows[1].Line, "blank row keeps its line")

	assert.Equal(t, "Packaging", sheets[1].Name)
	assert.Empty(t, sheets[1].Rows)
}

func TestReadWorkbook_CSV(t *testing.T) {
	data := "\ufeffname,brandId,alcoholByVolume,extra\nLager X,b1,5\n,,\nStout,b1,7.5,ignored\n"
	sheets, err := ingest.ReadWorkbook(strings.NewReader(data), "uploads/beers.csv")
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0]
	assert.Equal(t, "beers", sheet.Name)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, map[string]any{"name": "Lager X", "brandId": "b1", "alcoholByVolume": "5"}, sheet.Rows[0].Values)
	assert.Equal(t, 4, sheet.Rows[1].Line)
	assert.Equal(t, "ignored", sheet.Rows[1].Values["extra"])
}

func TestReadWorkbook_Unsupported(t *testing.T) {
	_, err := ingest.ReadWorkbook(strings.NewReader("x"), "beers.pdf")
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFile)

	_, err = ingest.ReadWorkbook(strings.NewReader("not a zip"), "beers.xlsx")
	assert.ErrorContains(t, err, "failed to open workbook")
}
