package report

import "sort"

// Run executes the full pipeline: validation, filtering, grouping or
// projection, sorting, and the row cap. The dataset and configuration are
// read-only; the returned table is freshly allocated.
func Run(ds *Dataset, cfg Config) (ResultTable, error) {
	if err := Validate(ds, cfg); err != nil {
		return ResultTable{}, err
	}

	rows := ApplyFilters(ds.Rows, validFilters(ds, cfg.Filters))

	var table ResultTable
	if cfg.Grouped() {
		table = ResultTable{
			Columns: groupedColumns(cfg),
			Rows:    Aggregate(rows, cfg.GroupBy, cfg.Aggregations),
		}
	} else {
		cols := projectionColumns(ds, cfg)
		table = ResultTable{
			Columns: cols,
			Rows:    Project(rows, cols),
		}
	}

	table.Rows = SortRows(table.Rows, cfg.Sort)
	table.Rows = applyLimit(table.Rows, cfg.Limit)
	return table, nil
}

// groupedColumns is the output column order for the aggregation path:
// grouped attributes first, then one column per aggregation.
func groupedColumns(cfg Config) []string {
	cols := make([]string, 0, len(cfg.GroupBy)+len(cfg.Aggregations))
	cols = append(cols, cfg.GroupBy...)
	for _, agg := range cfg.Aggregations {
		cols = append(cols, agg.Column())
	}
	return cols
}

// projectionColumns is the output column order for the ungrouped path: the
// explicit selection, or the dataset's first six attributes when none is
// chosen.
func projectionColumns(ds *Dataset, cfg Config) []string {
	if len(cfg.Columns) > 0 {
		cols := make([]string, len(cfg.Columns))
		copy(cols, cfg.Columns)
		return cols
	}
	names := ds.AttributeNames()
	if len(names) > DefaultColumnCount {
		names = names[:DefaultColumnCount]
	}
	return names
}

// Project copies each row onto the column subset, preserving row order.
// Attributes absent from a row stay absent in the projection.
func Project(rows []Row, columns []string) []Row {
	projected := make([]Row, 0, len(rows))
	for _, row := range rows {
		out := make(Row, len(columns))
		for _, col := range columns {
			if val, exists := row[col]; exists {
				out[col] = val
			}
		}
		projected = append(projected, out)
	}
	return projected
}

// SortRows orders rows by a single key with native ordering: numeric when
// both values coerce to numbers, lexicographic text otherwise. Desc
// reverses the comparison; an empty sort attribute returns the input
// (already a fresh slice from the previous stage) unchanged.
func SortRows(rows []Row, spec SortSpec) []Row {
	if spec.Attribute == "" || len(rows) == 0 {
		return rows
	}
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareValues(sorted[i][spec.Attribute], sorted[j][spec.Attribute])
		if spec.Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// compareValues returns -1, 0, or +1. Absent/nil values order first.
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	aNum, aOK := toNumber(a)
	bNum, bOK := toNumber(b)
	if aOK && bOK {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}

	aText, bText := toText(a), toText(b)
	switch {
	case aText < bText:
		return -1
	case aText > bText:
		return 1
	default:
		return 0
	}
}

// applyLimit keeps the first limit rows. A non-positive limit means no cap.
func applyLimit(rows []Row, limit int) []Row {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
