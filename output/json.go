package output

import (
	"encoding/json"
	"io"

	"github.com/luckyakhi/selfservicereporting/report"
)

// JSONFormatter writes a result table as JSON Lines (one object per row).
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row. Column order is not meaningful in
// JSON objects; missing values are simply omitted from the object.
func (j *JSONFormatter) Format(table report.ResultTable) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range table.Rows {
		if err := encoder.Encode(row); err != nil {
			return err
		}
	}
	return nil
}

// MarshalConfig serializes a report configuration as an indented JSON
// document, the structured-text form handed to a download collaborator
// alongside the CSV blob.
func MarshalConfig(cfg report.Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
