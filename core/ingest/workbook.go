package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ValuesSheet is the lookup sheet of exported templates; it never holds records.
const ValuesSheet = "VALUES"

// ErrUnsupportedFile is returned for uploads that are neither xlsx nor csv.
var ErrUnsupportedFile = errors.New("unsupported file type, expected .xlsx or .csv")

// Row is one data row of a sheet.
type Row struct {
	// Line is the 1-based row number in the sheet; the header is line 1.
	Line int
	// Values maps header names to raw cell text. Empty cells are absent.
	Values map[string]any
}

// Sheet is a named table of rows keyed by its header row.
type Sheet struct {
	Name string
	Rows []Row
}

// ReadWorkbook parses an uploaded spreadsheet. The file name picks the format.
// Blank rows are skipped but keep their line numbers from counting the rows after them.
func ReadWorkbook(r io.Reader, filename string) ([]Sheet, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readXLSX(r)
	case ".csv":
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		sheet, err := readCSV(r, name)
		if err != nil {
			return nil, err
		}
		return []Sheet{sheet}, nil
	default:
		return nil, ErrUnsupportedFile
	}
}

func readXLSX(r io.Reader) ([]Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		cells, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: toRows(cells)})
	}
	return sheets, nil
}

func readCSV(r io.Reader, name string) (Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	cells, err := reader.ReadAll()
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to read csv: %w", err)
	}
	return Sheet{Name: name, Rows: toRows(cells)}, nil
}

func toRows(cells [][]string) []Row {
	if len(cells) == 0 {
		return nil
	}
	header := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]Row, 0, len(cells)-1)
	for i, line := range cells[1:] {
		values := make(map[string]any, len(header))
		for col, cell := range line {
			if col >= len(header) || header[col] == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			values[header[col]] = cell
		}
		if len(values) == 0 {
			continue
		}
		rows = append(rows, Row{Line: i + 2, Values: values})
	}
	return rows
}
