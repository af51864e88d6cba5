// Package tabular provides an in-memory columnar dataset with filter, join
// and group-by primitives over the six e-commerce collections the support
// engine trains on. Cells are optional: missing values are first-class and
// skipped by aggregations.
package tabular

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is an optional cell. The zero Value is null.
type Value struct {
	raw   string
	valid bool
}

// String constructs a present string value.
func String(s string) Value {
	return Value{raw: s, valid: true}
}

// Float constructs a present numeric value.
func Float(f float64) Value {
	return Value{raw: strconv.FormatFloat(f, 'f', -1, 64), valid: true}
}

// Int constructs a present integer value.
func Int(i int64) Value {
	return Value{raw: strconv.FormatInt(i, 10), valid: true}
}

// Null constructs a missing value.
func Null() Value {
	return Value{}
}

// IsNull reports whether the value is missing.
func (v Value) IsNull() bool {
	return !v.valid
}

// Text returns the string form, or "" when null.
func (v Value) Text() string {
	return v.raw
}

// Float64 returns the numeric form. ok is false when the value is
// null or not parseable as a number.
func (v Value) Float64() (float64, bool) {
	if !v.valid {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int64 returns the integer form. ok is false when the value is null
// or not parseable as an integer.
func (v Value) Int64() (int64, bool) {
	if !v.valid {
		return 0, false
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v.raw), 10, 64)
	if err != nil {
		f, ok := v.Float64()
		if !ok {
			return 0, false
		}
		return int64(f), true
	}
	return i, true
}

// Row is one record keyed by column name. Absent columns read as null.
type Row map[string]Value

// Get returns the cell for a column, null when the column is absent.
func (r Row) Get(col string) Value {
	return r[col]
}

// Text returns the string form of a column, "" when null or absent.
func (r Row) Text(col string) string {
	return r[col].Text()
}

// Float64 returns the numeric form of a column.
func (r Row) Float64(col string) (float64, bool) {
	return r[col].Float64()
}

// Int64 returns the integer form of a column.
func (r Row) Int64(col string) (int64, bool) {
	return r[col].Int64()
}

// Table is an ordered collection of rows sharing a column set.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column set.
func NewTable(name string, columns ...string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// validatePrimaryKey rejects tables whose key column carries duplicate
// or missing values.
func (t *Table) validatePrimaryKey(col string) error {
	seen := make(map[string]struct{}, len(t.Rows))
	for i, row := range t.Rows {
		v := row.Get(col)
		if v.IsNull() {
			return fmt.Errorf("table %s: row %d has null %s", t.Name, i, col)
		}
		key := v.Text()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("table %s: duplicate %s %q", t.Name, col, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
