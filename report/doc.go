// Package report implements the ad-hoc reporting pipeline: filter
// evaluation, grouping and aggregation, projection, sorting, row capping,
// and SQL-like query text generation.
//
// The pipeline is a pure transformation over in-memory rows. The caller
// supplies a Dataset and a Config and receives a ResultTable; every stage
// allocates new output rather than mutating its input, so repeated runs
// with the same inputs are idempotent and safe to run concurrently from
// independent report sessions.
//
// Example usage:
//
//	table, err := report.Run(dataset, report.Config{
//	    GroupBy:      []string{"region"},
//	    Aggregations: []report.Aggregation{{Attribute: "balance", Func: report.AggSum}},
//	    Limit:        100,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
package report
