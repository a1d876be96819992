package ingest

// RowError is one rejected row, or a sheet level failure when Row is 0.
type RowError struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Stats counts what an import did. It is not part of the response body.
type Stats struct {
	Sheets   int
	Rows     int
	Applied  int
	Rejected int
	// Created counts product formats or catalog rows that did not exist before.
	Created int
}

// Report is the outcome of a batch import. Success is always true: a batch never
// aborts for a row, failures are listed in Errors.
type Report struct {
	Success bool       `json:"success"`
	Errors  []RowError `json:"errors"`
	Stats   Stats      `json:"-"`
}

func newReport() *Report {
	return &Report{Success: true, Errors: []RowError{}}
}

func (r *Report) add(sheet string, row int, msg string) {
	r.Errors = append(r.Errors, RowError{Sheet: sheet, Row: row, Error: msg})
}
