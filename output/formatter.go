// Package output renders result tables for display and export.
//
// Supported formats:
//   - CSV: comma-separated values with header row (the export format)
//   - JSON Lines: one JSON object per row
//   - Table: aligned plain-text table for terminal preview
//
// All formatters consume a report.ResultTable and respect its column order.
package output

import (
	"io"

	"github.com/luckyakhi/selfservicereporting/report"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a result table in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format renders the table in the formatter's specific format
	Format(table report.ResultTable) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
