package report

import (
	"errors"
	"fmt"
)

var (
	// ErrNilDataset is returned when the pipeline is run without a dataset.
	ErrNilDataset = errors.New("dataset is nil")

	// ErrUnknownColumn is returned when a selected column does not exist
	// in the dataset schema.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownGroupBy is returned when a group-by attribute does not
	// exist in the dataset schema.
	ErrUnknownGroupBy = errors.New("unknown group-by attribute")

	// ErrUnknownAggregate is returned when an aggregation references an
	// attribute absent from the dataset schema.
	ErrUnknownAggregate = errors.New("unknown aggregation attribute")

	// ErrUnknownSort is returned when the sort attribute is neither a
	// dataset attribute nor a column derived by the configuration.
	ErrUnknownSort = errors.New("unknown sort attribute")
)

// Validate checks that every schema reference in the configuration resolves
// against the dataset. These are the fatal configuration errors; filter
// references are deliberately excluded (unknown-attribute filters degrade
// permissively instead, see ApplyFilters).
//
// The sort attribute may name either a dataset attribute or a column the
// configuration derives (a grouped attribute or an aggregate column such as
// "sum(balance)"), since grouped results are sorted on output columns.
func Validate(ds *Dataset, cfg Config) error {
	if ds == nil {
		return ErrNilDataset
	}
	for _, col := range cfg.Columns {
		if !ds.HasAttribute(col) {
			return fmt.Errorf("%w: %q not in dataset %q", ErrUnknownColumn, col, ds.ID)
		}
	}
	for _, col := range cfg.GroupBy {
		if !ds.HasAttribute(col) {
			return fmt.Errorf("%w: %q not in dataset %q", ErrUnknownGroupBy, col, ds.ID)
		}
	}
	for _, agg := range cfg.Aggregations {
		if !ds.HasAttribute(agg.Attribute) {
			return fmt.Errorf("%w: %q not in dataset %q", ErrUnknownAggregate, agg.Attribute, ds.ID)
		}
	}
	if s := cfg.Sort.Attribute; s != "" && !ds.HasAttribute(s) && !derivesColumn(cfg, s) {
		return fmt.Errorf("%w: %q not in dataset %q", ErrUnknownSort, s, ds.ID)
	}
	return nil
}

// derivesColumn reports whether the configuration's grouped output would
// contain the named column.
func derivesColumn(cfg Config, name string) bool {
	for _, agg := range cfg.Aggregations {
		if agg.Column() == name {
			return true
		}
	}
	return false
}

// validFilters strips filters whose attribute is not in the dataset schema.
// A filter against a non-existent attribute is meaningless and is ignored
// rather than miscompared or rejected.
func validFilters(ds *Dataset, filters []Filter) []Filter {
	kept := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if ds.HasAttribute(f.Attribute) {
			kept = append(kept, f)
		}
	}
	return kept
}
