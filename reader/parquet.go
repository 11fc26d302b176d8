// Package reader loads report datasets from Apache Parquet files.
//
// It uses the segmentio/parquet-go library to read row groups into memory
// and infers the dataset's attribute schema from the parquet schema, so a
// file can be dropped into the catalog and reported on directly.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/luckyakhi/selfservicereporting/report"
)

// Reader reads a parquet file and exposes it as rows plus a schema.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens and validates path as a parquet file.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ReadAll reads every row into memory as attribute-name-keyed maps. The
// whole file is materialized, so this is not suitable for files larger
// than memory.
func (r *Reader) ReadAll() ([]report.Row, error) {
	rows := make([]report.Row, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, report.Row(row))
	}

	return rows, nil
}

// Schema returns the parquet file schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// Close releases the underlying file handle. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// LoadDataset reads a parquet file into an in-memory dataset. The attribute
// schema is inferred from the parquet schema's leaf fields: numeric
// physical types map to the number type, everything else to string. Labels
// default to the column name; callers may retype or relabel attributes
// afterwards (e.g. marking a string column as a date).
func LoadDataset(path, id, name string) (*report.Dataset, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	return &report.Dataset{
		ID:         id,
		Name:       name,
		Attributes: inferAttributes(r.Schema()),
		Rows:       rows,
	}, nil
}

// inferAttributes maps the schema's top-level leaf fields to report
// attributes. Nested groups are skipped: the reporting row model is flat.
func inferAttributes(schema *parquet.Schema) []report.Attribute {
	var attrs []report.Attribute
	for _, field := range schema.Fields() {
		if len(field.Fields()) > 0 {
			continue
		}
		attrs = append(attrs, report.Attribute{
			Name:  field.Name(),
			Label: field.Name(),
			Type:  attrType(field),
		})
	}
	return attrs
}

func attrType(field parquet.Field) report.AttrType {
	if field.Type() == nil {
		return report.TypeString
	}
	switch field.Type().Kind() {
	case parquet.Int32, parquet.Int64, parquet.Int96, parquet.Float, parquet.Double:
		return report.TypeNumber
	default:
		return report.TypeString
	}
}
