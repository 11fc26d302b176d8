package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/luckyakhi/selfservicereporting/catalog"
	"github.com/luckyakhi/selfservicereporting/output"
	"github.com/luckyakhi/selfservicereporting/reader"
	"github.com/luckyakhi/selfservicereporting/report"
)

// multiFlag collects repeatable string flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, "; ") }

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

var (
	dataFlag    = flag.String("data", "", "Parquet file to report on")
	nameFlag    = flag.String("name", "", "Dataset name (defaults to the file path)")
	sampleFlag  = flag.Int("sample", 0, "Use the built-in sample dataset with N rows instead of -data")
	seedFlag    = flag.Int64("seed", 1, "Seed for the sample dataset")
	columnsFlag = flag.String("columns", "", "Comma-separated columns to select")
	groupFlag   = flag.String("group", "", "Comma-separated group-by attributes")
	sortFlag    = flag.String("sort", "", "Sort attribute")
	descFlag    = flag.Bool("desc", false, "Sort descending")
	limitFlag   = flag.Int("limit", 100, "Row cap (0 = no cap)")
	formatFlag  = flag.String("f", "table", "Output format: table, csv, jsonl")
	queryFlag   = flag.Bool("show-query", false, "Print the equivalent query text to stderr")
	configFlag  = flag.Bool("show-config", false, "Print the report configuration as JSON to stderr")

	filterFlags multiFlag
	aggFlags    multiFlag
)

func main() {
	flag.Var(&filterFlags, "filter", "Filter as attribute:operator:value (repeatable)")
	flag.Var(&aggFlags, "agg", "Aggregation as function:attribute (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Compose an ad-hoc report over a parquet file or the sample dataset.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -sample 500 -group region -agg sum:balance -sort 'sum(balance)' -desc\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data accounts.parquet -filter 'region:=:EU' -f csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -data accounts.parquet -filter 'balance:between:100,5000' -show-query\n", os.Args[0])
	}

	flag.Parse()

	if *limitFlag < 0 {
		fmt.Fprintf(os.Stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		os.Exit(1)
	}

	ds, err := loadDataset()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", *dataFlag)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	cfg, err := buildConfig(ds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	table, err := report.Run(ds, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running report: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nAvailable columns: %s\n", strings.Join(ds.AttributeNames(), ", "))
		os.Exit(1)
	}

	if *queryFlag {
		fmt.Fprintln(os.Stderr, report.QueryText(ds, cfg))
	}
	if *configFlag {
		doc, err := output.MarshalConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshalling config: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, string(doc))
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: table, csv, jsonl\n")
		os.Exit(1)
	}

	if err := formatter.Format(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

func loadDataset() (*report.Dataset, error) {
	if *sampleFlag > 0 {
		return catalog.SampleAccounts(*sampleFlag, *seedFlag), nil
	}
	if *dataFlag == "" {
		return nil, fmt.Errorf("either -data or -sample is required")
	}
	name := *nameFlag
	if name == "" {
		name = *dataFlag
	}
	return reader.LoadDataset(*dataFlag, *dataFlag, name)
}

func buildConfig(ds *report.Dataset) (report.Config, error) {
	cfg := report.Config{
		DatasetID: ds.ID,
		Columns:   splitList(*columnsFlag),
		GroupBy:   splitList(*groupFlag),
		Sort:      report.SortSpec{Attribute: *sortFlag, Desc: *descFlag},
		Limit:     *limitFlag,
	}

	for _, raw := range filterFlags {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return report.Config{}, fmt.Errorf("invalid -filter %q, want attribute:operator:value", raw)
		}
		f := report.Filter{Attribute: parts[0], Operator: parts[1], Value: parts[2]}
		if attr, ok := ds.Attribute(f.Attribute); ok && !catalog.ValidOperator(attr.Type, f.Operator) {
			return report.Config{}, fmt.Errorf("operator %q is not valid for %s attribute %q (valid: %s)",
				f.Operator, attr.Type, f.Attribute, strings.Join(catalog.OperatorsFor(attr.Type), ", "))
		}
		cfg.Filters = append(cfg.Filters, f)
	}

	for _, raw := range aggFlags {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return report.Config{}, fmt.Errorf("invalid -agg %q, want function:attribute", raw)
		}
		cfg.Aggregations = append(cfg.Aggregations, report.Aggregation{
			Func:      report.AggFunc(parts[0]),
			Attribute: parts[1],
		})
	}

	return cfg, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
