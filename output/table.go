package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/luckyakhi/selfservicereporting/report"
)

// TableFormatter writes a result table as an aligned plain-text table for
// terminal preview.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new plain-text table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the table with the result columns as the header.
func (t *TableFormatter) Format(table report.ResultTable) error {
	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(table.Columns)
	tw.SetAutoFormatHeaders(false)
	for _, row := range table.Rows {
		tw.Append(record(table.Columns, row))
	}
	tw.Render()
	return nil
}
