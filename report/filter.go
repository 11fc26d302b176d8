package report

import (
	"strings"
	"time"
)

// ApplyFilters returns the subset of rows for which every filter predicate
// holds (logical AND). An empty filter list is the identity. A new slice is
// always allocated; the input is never mutated.
func ApplyFilters(rows []Row, filters []Filter) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, filters) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func matchesAll(row Row, filters []Filter) bool {
	for _, f := range filters {
		if !Matches(row, f) {
			return false
		}
	}
	return true
}

// Matches evaluates a single filter predicate against a row.
//
// Degradation policy (this is a preview tool, not a transactional system):
// an unrecognized operator never excludes a row; numeric coercion failure
// on either side makes a numeric comparison false; an unparsable date makes
// before/after/range false in both directions.
func Matches(row Row, f Filter) bool {
	value := row[f.Attribute]

	switch f.Operator {
	case OpContains:
		return strings.Contains(lower(value), strings.ToLower(f.Value))
	case OpStartsWith:
		return strings.HasPrefix(lower(value), strings.ToLower(f.Value))
	case OpEndsWith:
		return strings.HasSuffix(lower(value), strings.ToLower(f.Value))

	case OpEqual:
		return toText(value) == f.Value
	case OpNotEqual:
		return toText(value) != f.Value

	case OpGreater, OpGreaterEq, OpLess, OpLessEq:
		left, okLeft := toNumber(value)
		right, okRight := toNumber(f.Value)
		if !okLeft || !okRight {
			return false
		}
		switch f.Operator {
		case OpGreater:
			return left > right
		case OpGreaterEq:
			return left >= right
		case OpLess:
			return left < right
		default:
			return left <= right
		}

	case OpBetween:
		return matchBetween(value, f.Value)

	case OpOn:
		return toText(value) == f.Value
	case OpBefore:
		day, lim, ok := dateOperands(value, f.Value)
		return ok && day.Before(lim)
	case OpAfter:
		day, lim, ok := dateOperands(value, f.Value)
		return ok && day.After(lim)
	case OpRange:
		return matchDateRange(value, f.Value)

	default:
		// Unknown operators are permissive: they never exclude a row.
		return true
	}
}

func lower(v interface{}) string {
	return strings.ToLower(toText(v))
}

// matchBetween checks a numeric value against a "lo,hi" bound string. The
// bounds are normalized (min/max taken) so operand order does not matter.
func matchBetween(value interface{}, bounds string) bool {
	parts := strings.SplitN(bounds, ",", 2)
	if len(parts) != 2 {
		return false
	}
	n, ok := toNumber(value)
	lo, okLo := toNumber(strings.TrimSpace(parts[0]))
	hi, okHi := toNumber(strings.TrimSpace(parts[1]))
	if !ok || !okLo || !okHi {
		return false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return n >= lo && n <= hi
}

// matchDateRange checks a date value against a "from,to" bound string.
// Unlike between, the bounds are NOT normalized: the first part is always
// the lower bound, so a reversed pair selects nothing.
func matchDateRange(value interface{}, bounds string) bool {
	parts := strings.SplitN(bounds, ",", 2)
	if len(parts) != 2 {
		return false
	}
	day, ok := parseDate(toText(value))
	from, okFrom := parseDate(strings.TrimSpace(parts[0]))
	to, okTo := parseDate(strings.TrimSpace(parts[1]))
	if !ok || !okFrom || !okTo {
		return false
	}
	return !day.Before(from) && !day.After(to)
}

// dateOperands parses both sides of a chronological comparison. ok is false
// when either side fails to parse, which callers resolve to a false match.
func dateOperands(value interface{}, operand string) (day, lim time.Time, ok bool) {
	day, okDay := parseDate(toText(value))
	lim, okLim := parseDate(operand)
	return day, lim, okDay && okLim
}
