package tabular

import "sort"

// Filter returns a new table containing the rows for which pred is true.
func (t *Table) Filter(pred func(Row) bool) *Table {
	out := &Table{Name: t.Name, Columns: t.Columns}
	for _, row := range t.Rows {
		if pred(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// First returns the first row for which pred is true.
func (t *Table) First(pred func(Row) bool) (Row, bool) {
	for _, row := range t.Rows {
		if pred(row) {
			return row, true
		}
	}
	return nil, false
}

// InnerJoin joins two tables on equality of leftCol and rightCol. Rows
// whose join key is null on either side are dropped. Right-side columns
// that collide with a left-side column are prefixed with the right
// table's name and an underscore.
func InnerJoin(left, right *Table, leftCol, rightCol string) *Table {
	index := make(map[string][]Row)
	for _, row := range right.Rows {
		key := row.Get(rightCol)
		if key.IsNull() {
			continue
		}
		index[key.Text()] = append(index[key.Text()], row)
	}

	leftCols := make(map[string]struct{}, len(left.Columns))
	for _, c := range left.Columns {
		leftCols[c] = struct{}{}
	}

	out := &Table{Name: left.Name, Columns: append([]string(nil), left.Columns...)}
	for _, c := range right.Columns {
		if _, clash := leftCols[c]; clash {
			out.Columns = append(out.Columns, right.Name+"_"+c)
		} else {
			out.Columns = append(out.Columns, c)
		}
	}

	for _, lrow := range left.Rows {
		key := lrow.Get(leftCol)
		if key.IsNull() {
			continue
		}
		for _, rrow := range index[key.Text()] {
			merged := make(Row, len(lrow)+len(rrow))
			for k, v := range lrow {
				merged[k] = v
			}
			for k, v := range rrow {
				if _, clash := leftCols[k]; clash {
					merged[right.Name+"_"+k] = v
				} else {
					merged[k] = v
				}
			}
			out.Rows = append(out.Rows, merged)
		}
	}
	return out
}

// Group is one bucket of a group-by, identified by the grouping key.
type Group struct {
	Key  string
	Rows *Table
}

// GroupBy buckets rows by the string form of col, dropping rows where
// col is null. Groups come back sorted by key for deterministic output.
func (t *Table) GroupBy(col string) []Group {
	buckets := make(map[string]*Table)
	for _, row := range t.Rows {
		v := row.Get(col)
		if v.IsNull() {
			continue
		}
		key := v.Text()
		b, ok := buckets[key]
		if !ok {
			b = &Table{Name: t.Name, Columns: t.Columns}
			buckets[key] = b
		}
		b.Rows = append(b.Rows, row)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Rows: buckets[k]})
	}
	return groups
}

// Count returns the number of non-null cells in col.
func (t *Table) Count(col string) int {
	n := 0
	for _, row := range t.Rows {
		if !row.Get(col).IsNull() {
			n++
		}
	}
	return n
}

// Sum adds the numeric values of col, skipping nulls and non-numeric
// cells.
func (t *Table) Sum(col string) float64 {
	var total float64
	for _, row := range t.Rows {
		if f, ok := row.Float64(col); ok {
			total += f
		}
	}
	return total
}

// Mean averages the numeric values of col, skipping nulls and
// non-numeric cells. ok is false when no cell contributed.
func (t *Table) Mean(col string) (float64, bool) {
	var total float64
	n := 0
	for _, row := range t.Rows {
		if f, ok := row.Float64(col); ok {
			total += f
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// Min returns the smallest numeric value of col, skipping nulls.
func (t *Table) Min(col string) (float64, bool) {
	best := 0.0
	found := false
	for _, row := range t.Rows {
		if f, ok := row.Float64(col); ok {
			if !found || f < best {
				best = f
				found = true
			}
		}
	}
	return best, found
}

// Max returns the largest numeric value of col, skipping nulls.
func (t *Table) Max(col string) (float64, bool) {
	best := 0.0
	found := false
	for _, row := range t.Rows {
		if f, ok := row.Float64(col); ok {
			if !found || f > best {
				best = f
				found = true
			}
		}
	}
	return best, found
}
