package report

import (
	"reflect"
	"testing"
)

func TestMatches_StringOperators(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		filter Filter
		want   bool
	}{
		{"contains match", Row{"a": "foobar"}, Filter{"a", OpContains, "foo"}, true},
		{"contains no match", Row{"a": "bar"}, Filter{"a", OpContains, "foo"}, false},
		{"contains case insensitive", Row{"a": "FOOBAR"}, Filter{"a", OpContains, "foo"}, true},
		{"contains absent field", Row{}, Filter{"a", OpContains, "foo"}, false},
		{"contains empty value always matches", Row{}, Filter{"a", OpContains, ""}, true},

		{"startsWith match", Row{"a": "Foobar"}, Filter{"a", OpStartsWith, "foo"}, true},
		{"startsWith no match", Row{"a": "barfoo"}, Filter{"a", OpStartsWith, "foo"}, false},
		{"endsWith match", Row{"a": "barFOO"}, Filter{"a", OpEndsWith, "foo"}, true},
		{"endsWith no match", Row{"a": "foobar"}, Filter{"a", OpEndsWith, "foo"}, false},

		{"equal text", Row{"a": "x"}, Filter{"a", OpEqual, "x"}, true},
		{"equal case sensitive", Row{"a": "X"}, Filter{"a", OpEqual, "x"}, false},
		{"equal coerces number to text", Row{"a": 42}, Filter{"a", OpEqual, "42"}, true},
		{"equal float coerces to text", Row{"a": 42.5}, Filter{"a", OpEqual, "42.5"}, true},
		{"not equal", Row{"a": "x"}, Filter{"a", OpNotEqual, "y"}, true},
		{"not equal same", Row{"a": "x"}, Filter{"a", OpNotEqual, "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.row, tt.filter); got != tt.want {
				t.Errorf("Matches(%v, %+v) = %v, want %v", tt.row, tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatches_NumericOperators(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		filter Filter
		want   bool
	}{
		{"greater", Row{"n": 10}, Filter{"n", OpGreater, "5"}, true},
		{"greater equal boundary", Row{"n": 5}, Filter{"n", OpGreaterEq, "5"}, true},
		{"less", Row{"n": 3.5}, Filter{"n", OpLess, "4"}, true},
		{"less equal boundary", Row{"n": 4.0}, Filter{"n", OpLessEq, "4"}, true},
		{"greater false", Row{"n": 5}, Filter{"n", OpGreater, "5"}, false},
		{"numeric string row value", Row{"n": "12"}, Filter{"n", OpGreater, "10"}, true},

		// Non-numeric operands coerce to "not a number": comparison is false.
		{"non-numeric row value", Row{"n": "abc"}, Filter{"n", OpGreater, "5"}, false},
		{"non-numeric filter value", Row{"n": 10}, Filter{"n", OpGreater, "five"}, false},
		{"absent field", Row{}, Filter{"n", OpLess, "5"}, false},

		{"between inside", Row{"n": 25}, Filter{"n", OpBetween, "10,50"}, true},
		{"between boundary low", Row{"n": 10}, Filter{"n", OpBetween, "10,50"}, true},
		{"between boundary high", Row{"n": 50}, Filter{"n", OpBetween, "10,50"}, true},
		{"between outside", Row{"n": 51}, Filter{"n", OpBetween, "10,50"}, false},
		// Bounds are normalized, so reversed operands still select.
		{"between reversed bounds", Row{"n": 25}, Filter{"n", OpBetween, "50,10"}, true},
		{"between malformed bounds", Row{"n": 25}, Filter{"n", OpBetween, "50"}, false},
		{"between non-numeric bound", Row{"n": 25}, Filter{"n", OpBetween, "a,50"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.row, tt.filter); got != tt.want {
				t.Errorf("Matches(%v, %+v) = %v, want %v", tt.row, tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatches_DateOperators(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		filter Filter
		want   bool
	}{
		{"on exact text", Row{"d": "2024-03-01"}, Filter{"d", OpOn, "2024-03-01"}, true},
		{"on different day", Row{"d": "2024-03-02"}, Filter{"d", OpOn, "2024-03-01"}, false},

		{"before", Row{"d": "2024-01-15"}, Filter{"d", OpBefore, "2024-02-01"}, true},
		{"before same day", Row{"d": "2024-02-01"}, Filter{"d", OpBefore, "2024-02-01"}, false},
		{"after", Row{"d": "2024-03-01"}, Filter{"d", OpAfter, "2024-02-01"}, true},
		{"after earlier day", Row{"d": "2024-01-01"}, Filter{"d", OpAfter, "2024-02-01"}, false},

		// Unparsable dates compare false in both directions.
		{"before unparsable value", Row{"d": "not-a-date"}, Filter{"d", OpBefore, "2024-02-01"}, false},
		{"after unparsable value", Row{"d": "not-a-date"}, Filter{"d", OpAfter, "2024-02-01"}, false},
		{"before unparsable operand", Row{"d": "2024-01-01"}, Filter{"d", OpBefore, "soon"}, false},

		{"range inside", Row{"d": "2024-01-15"}, Filter{"d", OpRange, "2024-01-01,2024-02-01"}, true},
		{"range boundary low", Row{"d": "2024-01-01"}, Filter{"d", OpRange, "2024-01-01,2024-02-01"}, true},
		{"range boundary high", Row{"d": "2024-02-01"}, Filter{"d", OpRange, "2024-01-01,2024-02-01"}, true},
		{"range outside", Row{"d": "2024-03-01"}, Filter{"d", OpRange, "2024-01-01,2024-02-01"}, false},
		// Range bounds are order-sensitive: a reversed pair selects nothing.
		{"range reversed bounds select nothing", Row{"d": "2024-01-15"}, Filter{"d", OpRange, "2024-02-01,2024-01-01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.row, tt.filter); got != tt.want {
				t.Errorf("Matches(%v, %+v) = %v, want %v", tt.row, tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatches_UnknownOperatorIsPermissive(t *testing.T) {
	row := Row{"a": "anything"}
	if !Matches(row, Filter{Attribute: "a", Operator: "soundsLike", Value: "x"}) {
		t.Error("unknown operator should never exclude a row")
	}
}

func TestApplyFilters_EmptyListIsIdentity(t *testing.T) {
	rows := []Row{{"a": "x"}, {"a": "y"}}
	got := ApplyFilters(rows, nil)
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("ApplyFilters(rows, nil) = %v, want %v", got, rows)
	}
}

func TestApplyFilters_AndSemantics(t *testing.T) {
	rows := []Row{
		{"region": "EU", "balance": 100},
		{"region": "EU", "balance": 5},
		{"region": "NA", "balance": 100},
	}
	filters := []Filter{
		{Attribute: "region", Operator: OpEqual, Value: "EU"},
		{Attribute: "balance", Operator: OpGreaterEq, Value: "50"},
	}

	got := ApplyFilters(rows, filters)
	if len(got) != 1 {
		t.Fatalf("ApplyFilters() returned %d rows, want 1", len(got))
	}
	if got[0]["region"] != "EU" || got[0]["balance"] != 100 {
		t.Errorf("ApplyFilters() kept wrong row: %v", got[0])
	}
}

func TestApplyFilters_ResultIsSubset(t *testing.T) {
	rows := []Row{
		{"a": "foobar", "n": 1},
		{"a": "bar", "n": 2},
		{"a": "FooD", "n": 3},
	}
	got := ApplyFilters(rows, []Filter{{Attribute: "a", Operator: OpContains, Value: "foo"}})

	if len(got) != 2 {
		t.Fatalf("ApplyFilters() returned %d rows, want 2", len(got))
	}
	for _, row := range got {
		found := false
		for _, orig := range rows {
			if reflect.DeepEqual(row, orig) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("filtered row %v is not in the input set", row)
		}
	}
}
