package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/luckyakhi/selfservicereporting/report"
)

// CSVFormatter writes a result table as CSV.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header row followed by one record per row, in the
// table's column order.
func (c *CSVFormatter) Format(table report.ResultTable) error {
	csvWriter := csv.NewWriter(c.writer)
	if err := writeTable(csvWriter, table); err != nil {
		return err
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// Serialize renders the table as the exported delimited-text blob: header
// line plus one line per row, joined by single newlines with no trailing
// newline. Values containing a comma or quote are quote-wrapped with
// internal quotes doubled, so the blob round-trips through standard
// delimited-text parsers and spreadsheet tools.
func Serialize(table report.ResultTable) string {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	// strings.Builder never errors, so write errors cannot occur here.
	_ = writeTable(w, table)
	w.Flush()
	return strings.TrimSuffix(buf.String(), "\n")
}

func writeTable(w *csv.Writer, table report.ResultTable) error {
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := w.Write(record(table.Columns, row)); err != nil {
			return err
		}
	}
	return nil
}

// record projects a row onto the column order; missing values serialize as
// empty strings.
func record(columns []string, row report.Row) []string {
	rec := make([]string, len(columns))
	for i, col := range columns {
		rec[i] = formatValue(row[col])
	}
	return rec
}

// formatValue converts a cell value to its textual form for export.
func formatValue(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
