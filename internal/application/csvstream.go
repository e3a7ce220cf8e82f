package application

import (
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM lets spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReportWriter streams a CSV report: a UTF-8 byte-order mark, one header
// record, then data records.
type ReportWriter struct {
	w       io.Writer
	csv     *csv.Writer
	written int
}

// NewReportWriter writes the byte-order mark and header to w.
func NewReportWriter(w io.Writer, header []string) (*ReportWriter, error) {
	if _, err := w.Write(utf8BOM); err != nil {
		return nil, fmt.Errorf("write byte order mark: %w", err)
	}

	rw := &ReportWriter{w: w, csv: csv.NewWriter(w)}
	if err := rw.csv.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	return rw, nil
}

// Write appends one record.
func (rw *ReportWriter) Write(record []string) error {
	if err := rw.csv.Write(record); err != nil {
		return fmt.Errorf("write record %d: %w", rw.written+1, err)
	}
	rw.written++
	return nil
}

// Flush pushes buffered records to the underlying writer.
func (rw *ReportWriter) Flush() error {
	rw.csv.Flush()
	if err := rw.csv.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// Written returns the number of data records written so far.
func (rw *ReportWriter) Written() int {
	return rw.written
}
