package report

import "fmt"

// AttrType classifies an attribute's values. It drives which filter
// operators are legal for the attribute and whether the attribute is
// treated as numeric during aggregation and sorting.
type AttrType string

const (
	TypeString   AttrType = "string"
	TypeNumber   AttrType = "number"
	TypeDate     AttrType = "date"
	TypeCurrency AttrType = "currency"
)

// Numeric reports whether values of this type participate in numeric
// comparison and arithmetic aggregation.
func (t AttrType) Numeric() bool {
	return t == TypeNumber || t == TypeCurrency
}

// Attribute describes one column of a dataset.
type Attribute struct {
	Name  string   `json:"name"`
	Label string   `json:"label"`
	Type  AttrType `json:"type"`
}

// Row maps attribute names to scalar values (text or number). Missing keys
// are treated as empty/absent, never as an error.
type Row map[string]interface{}

// Dataset is an immutable in-memory table: an ordered attribute schema plus
// rows. It is owned by the catalog layer and read-only to the pipeline.
type Dataset struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Attributes  []Attribute `json:"attributes"`
	Rows        []Row       `json:"rows,omitempty"`
}

// Attribute returns the attribute with the given name, if present.
func (d *Dataset) Attribute(name string) (Attribute, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasAttribute reports whether the dataset schema contains name.
func (d *Dataset) HasAttribute(name string) bool {
	_, ok := d.Attribute(name)
	return ok
}

// AttributeNames returns the schema's attribute names in order.
func (d *Dataset) AttributeNames() []string {
	names := make([]string, len(d.Attributes))
	for i, a := range d.Attributes {
		names[i] = a.Name
	}
	return names
}

// Filter operators. Which operators apply to an attribute depends on its
// type; see catalog.OperatorsFor. An operator outside this set never
// excludes a row (permissive default).
const (
	OpContains   = "contains"
	OpStartsWith = "startsWith"
	OpEndsWith   = "endsWith"
	OpEqual      = "="
	OpNotEqual   = "!="
	OpGreater    = ">"
	OpGreaterEq  = ">="
	OpLess       = "<"
	OpLessEq     = "<="
	OpBetween    = "between"
	OpOn         = "on"
	OpBefore     = "before"
	OpAfter      = "after"
	OpRange      = "range"
)

// Filter is a single predicate over one attribute. Value is raw text
// interpreted per operator (e.g. a "lo,hi" pair for between/range).
// Filters combine by logical AND.
type Filter struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
}

// AggFunc is a reduction applied to one attribute within a group.
type AggFunc string

const (
	AggSum   AggFunc = "sum"
	AggAvg   AggFunc = "avg"
	AggMin   AggFunc = "min"
	AggMax   AggFunc = "max"
	AggCount AggFunc = "count"
)

// Aggregation requests one reduction over one attribute.
type Aggregation struct {
	Attribute string  `json:"attribute"`
	Func      AggFunc `json:"function"`
}

// Column returns the result column name for the aggregation, e.g.
// "sum(balance)". The scheme guarantees aggregate columns never collide
// with grouped attribute columns.
func (a Aggregation) Column() string {
	return fmt.Sprintf("%s(%s)", a.Func, a.Attribute)
}

// SortSpec selects a single sort key. An empty Attribute means no
// reordering. Desc reverses the comparison.
type SortSpec struct {
	Attribute string `json:"attribute,omitempty"`
	Desc      bool   `json:"desc,omitempty"`
}

// Config is the declarative report configuration, the sole input to the
// pipeline. It is constructed by the caller and treated as a read-only
// value per invocation.
type Config struct {
	DatasetID    string        `json:"datasetId"`
	Columns      []string      `json:"columns,omitempty"`
	Filters      []Filter      `json:"filters,omitempty"`
	GroupBy      []string      `json:"groupBy,omitempty"`
	Aggregations []Aggregation `json:"aggregations,omitempty"`
	Sort         SortSpec      `json:"sort,omitempty"`
	Limit        int           `json:"limit"`
}

// Grouped reports whether the configuration requests grouping or
// aggregation (the aggregation path of the pipeline).
func (c Config) Grouped() bool {
	return len(c.GroupBy) > 0 || len(c.Aggregations) > 0
}

// ResultTable is the output of one pipeline run: an ordered column list and
// ordered rows. It has no identity beyond the configuration that produced
// it and is produced fresh on every run.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// DefaultColumnCount is how many leading attributes are projected when the
// configuration selects no columns explicitly.
const DefaultColumnCount = 6
