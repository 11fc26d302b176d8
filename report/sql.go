package report

import (
	"fmt"
	"strings"
)

// QueryText renders the configuration as a single-line, SQL-like string for
// display and copy-paste. It is a readability aid only: it is never
// executed, values are not escaped, and malformed bound strings render
// literally.
func QueryText(ds *Dataset, cfg Config) string {
	var q strings.Builder

	q.WriteString("SELECT ")
	q.WriteString(selectClause(cfg))

	q.WriteString(" FROM ")
	if ds != nil && ds.Name != "" {
		q.WriteString(ds.Name)
	} else {
		q.WriteString(cfg.DatasetID)
	}

	if len(cfg.Filters) > 0 {
		q.WriteString(" WHERE ")
		predicates := make([]string, len(cfg.Filters))
		for i, f := range cfg.Filters {
			predicates[i] = renderFilter(ds, f)
		}
		q.WriteString(strings.Join(predicates, " AND "))
	}

	if len(cfg.GroupBy) > 0 {
		q.WriteString(" GROUP BY ")
		q.WriteString(strings.Join(cfg.GroupBy, ", "))
	}

	if cfg.Sort.Attribute != "" {
		q.WriteString(" ORDER BY ")
		q.WriteString(cfg.Sort.Attribute)
		if cfg.Sort.Desc {
			q.WriteString(" DESC")
		} else {
			q.WriteString(" ASC")
		}
	}

	if cfg.Limit > 0 {
		fmt.Fprintf(&q, " LIMIT %d", cfg.Limit)
	}

	return q.String()
}

// selectClause renders the column list: the explicit selection when
// present, else group-by columns followed by aliased aggregate calls, else
// a bare star.
func selectClause(cfg Config) string {
	if len(cfg.Columns) > 0 {
		return strings.Join(cfg.Columns, ", ")
	}
	if cfg.Grouped() {
		parts := make([]string, 0, len(cfg.GroupBy)+len(cfg.Aggregations))
		parts = append(parts, cfg.GroupBy...)
		for _, agg := range cfg.Aggregations {
			parts = append(parts, fmt.Sprintf("%s(%s) AS %q",
				strings.ToUpper(string(agg.Func)), agg.Attribute, agg.Column()))
		}
		return strings.Join(parts, ", ")
	}
	return "*"
}

func renderFilter(ds *Dataset, f Filter) string {
	switch f.Operator {
	case OpContains:
		return fmt.Sprintf("%s LIKE '%%%s%%'", f.Attribute, f.Value)
	case OpStartsWith:
		return fmt.Sprintf("%s LIKE '%s%%'", f.Attribute, f.Value)
	case OpEndsWith:
		return fmt.Sprintf("%s LIKE '%%%s'", f.Attribute, f.Value)

	case OpBetween:
		lo, hi, ok := normalizedBounds(f.Value)
		if !ok {
			// Malformed bound string renders literally.
			return fmt.Sprintf("%s BETWEEN %s", f.Attribute, f.Value)
		}
		return fmt.Sprintf("%s BETWEEN %s AND %s", f.Attribute, lo, hi)

	case OpRange:
		parts := strings.SplitN(f.Value, ",", 2)
		if len(parts) != 2 {
			return fmt.Sprintf("%s BETWEEN '%s'", f.Attribute, f.Value)
		}
		return fmt.Sprintf("%s BETWEEN '%s' AND '%s'",
			f.Attribute, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))

	case OpOn:
		return fmt.Sprintf("%s = '%s'", f.Attribute, f.Value)
	case OpBefore:
		return fmt.Sprintf("%s < '%s'", f.Attribute, f.Value)
	case OpAfter:
		return fmt.Sprintf("%s > '%s'", f.Attribute, f.Value)

	case OpEqual, OpNotEqual, OpGreater, OpGreaterEq, OpLess, OpLessEq:
		return fmt.Sprintf("%s %s %s", f.Attribute, f.Operator, renderValue(ds, f))

	default:
		return fmt.Sprintf("%s %s '%s'", f.Attribute, f.Operator, f.Value)
	}
}

// renderValue quotes the operand unless the attribute is numeric-typed and
// the value parses as a number.
func renderValue(ds *Dataset, f Filter) string {
	if ds != nil {
		if attr, ok := ds.Attribute(f.Attribute); ok && attr.Type.Numeric() {
			if _, numeric := toNumber(f.Value); numeric {
				return f.Value
			}
		}
	}
	return "'" + f.Value + "'"
}

// normalizedBounds splits a "lo,hi" numeric bound string and orders the
// bounds so the rendered BETWEEN matches the evaluator's min/max policy.
func normalizedBounds(value string) (lo, hi string, ok bool) {
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	lo, hi = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	loNum, okLo := toNumber(lo)
	hiNum, okHi := toNumber(hi)
	if !okLo || !okHi {
		return "", "", false
	}
	if loNum > hiNum {
		lo, hi = hi, lo
	}
	return lo, hi, true
}
