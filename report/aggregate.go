package report

import (
	"math"
	"strings"
)

// accumulator is the private running state for one aggregation within one
// group. It is consumed incrementally, one row at a time, and converted to
// a public value by finalize; it never appears in a result row.
type accumulator struct {
	agg   Aggregation
	sum   float64
	count int64
	min   float64
	max   float64
	seen  bool // at least one numeric contribution for min/max
	// avg tracks non-missing numeric contributions separately so its
	// running state stays independent of sum's coerce-to-zero policy.
	avgSum   float64
	avgCount int64
}

func newAccumulator(agg Aggregation) *accumulator {
	return &accumulator{
		agg: agg,
		min: math.Inf(1),
		max: math.Inf(-1),
	}
}

// add consumes one row's value for the aggregated attribute. Coercion
// failures (absent attribute, non-numeric text) contribute zero to sum,
// nothing to avg and the extrema, and still count toward count.
func (a *accumulator) add(value interface{}) {
	a.count++
	n, ok := toNumber(value)
	if !ok {
		return
	}
	a.sum += n
	a.avgSum += n
	a.avgCount++
	if n < a.min {
		a.min = n
	}
	if n > a.max {
		a.max = n
	}
	a.seen = true
}

// finalize converts the running state into the emitted value. min/max fall
// back to 0 when no numeric value was ever seen so an infinity can never
// surface; avg falls back to 0 when its contribution count is 0.
func (a *accumulator) finalize() interface{} {
	switch a.agg.Func {
	case AggSum:
		return a.sum
	case AggCount:
		return a.count
	case AggMin:
		if !a.seen {
			return 0.0
		}
		return a.min
	case AggMax:
		if !a.seen {
			return 0.0
		}
		return a.max
	case AggAvg:
		if a.avgCount == 0 {
			return 0.0
		}
		return a.avgSum / float64(a.avgCount)
	default:
		return nil
	}
}

// group holds one distinct group-key combination's grouped values and
// accumulators.
type group struct {
	values Row
	accs   []*accumulator
}

// Aggregate reduces rows to one output row per distinct group-by key
// combination, in first-seen key order. A grouped attribute keeps its own
// column name; each aggregation emits its value under Column(). No group is
// ever emitted for a key combination with zero rows, so with an empty input
// the result is empty even when groupBy is empty.
func Aggregate(rows []Row, groupBy []string, aggs []Aggregation) []Row {
	groups := make(map[string]*group)
	order := make([]string, 0)

	for _, row := range rows {
		key := groupKey(row, groupBy)
		g, exists := groups[key]
		if !exists {
			g = &group{values: make(Row, len(groupBy)), accs: make([]*accumulator, len(aggs))}
			for _, col := range groupBy {
				g.values[col] = row[col]
			}
			for i, agg := range aggs {
				g.accs[i] = newAccumulator(agg)
			}
			groups[key] = g
			order = append(order, key)
		}
		for _, acc := range g.accs {
			acc.add(row[acc.agg.Attribute])
		}
	}

	result := make([]Row, 0, len(order))
	for _, key := range order {
		g := groups[key]
		out := make(Row, len(groupBy)+len(aggs))
		for col, val := range g.values {
			out[col] = val
		}
		for _, acc := range g.accs {
			out[acc.agg.Column()] = acc.finalize()
		}
		result = append(result, out)
	}
	return result
}

// groupKey builds the hash key for a row's group-by tuple. Values are
// compared by exact text equality (numbers stringified); the NUL separators
// keep adjacent values from colliding across columns.
func groupKey(row Row, groupBy []string) string {
	var key strings.Builder
	for i, col := range groupBy {
		if i > 0 {
			key.WriteString("\x00||\x00")
		}
		key.WriteString(col)
		key.WriteString("\x00:\x00")
		key.WriteString(toText(row[col]))
	}
	return key.String()
}
