// Package catalog owns the datasets available for reporting and the
// per-type filter operator sets used to validate operator choices. It is
// the external collaborator the report pipeline reads from; the pipeline
// itself never mutates a dataset.
package catalog

import (
	"errors"
	"fmt"

	"github.com/luckyakhi/selfservicereporting/report"
)

// ErrDatasetNotFound is returned when a dataset ID is not registered.
var ErrDatasetNotFound = errors.New("dataset not found")

// Catalog is a registry of datasets keyed by ID, preserving registration
// order for browsing.
type Catalog struct {
	datasets map[string]*report.Dataset
	order    []string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{datasets: make(map[string]*report.Dataset)}
}

// Add registers a dataset. Re-registering an ID replaces the dataset but
// keeps its original browse position.
func (c *Catalog) Add(ds *report.Dataset) {
	if _, exists := c.datasets[ds.ID]; !exists {
		c.order = append(c.order, ds.ID)
	}
	c.datasets[ds.ID] = ds
}

// Get returns the dataset with the given ID.
func (c *Catalog) Get(id string) (*report.Dataset, error) {
	ds, ok := c.datasets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, id)
	}
	return ds, nil
}

// List returns the registered datasets in registration order.
func (c *Catalog) List() []*report.Dataset {
	out := make([]*report.Dataset, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.datasets[id])
	}
	return out
}

// OperatorsFor returns the filter operators legal for an attribute type.
func OperatorsFor(t report.AttrType) []string {
	switch t {
	case report.TypeString:
		return []string{
			report.OpContains, report.OpStartsWith, report.OpEndsWith,
			report.OpEqual, report.OpNotEqual,
		}
	case report.TypeNumber, report.TypeCurrency:
		return []string{
			report.OpEqual, report.OpNotEqual,
			report.OpGreater, report.OpGreaterEq, report.OpLess, report.OpLessEq,
			report.OpBetween,
		}
	case report.TypeDate:
		return []string{
			report.OpOn, report.OpBefore, report.OpAfter, report.OpRange,
		}
	default:
		return nil
	}
}

// ValidOperator reports whether op is legal for attributes of type t.
func ValidOperator(t report.AttrType, op string) bool {
	for _, candidate := range OperatorsFor(t) {
		if candidate == op {
			return true
		}
	}
	return false
}
