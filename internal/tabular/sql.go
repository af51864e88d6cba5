package tabular

import (
	"context"
	"database/sql"
	"fmt"
)

// loadSQLStore reads the six collections out of a SQL database, one
// SELECT per table. Cells come back as nullable strings so numeric and
// timestamp columns survive driver differences.
func loadSQLStore(ctx context.Context, db *sql.DB, source string) (*Store, error) {
	store := &Store{}
	for name := range primaryKeys {
		table, err := loadSQLTable(ctx, db, name)
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}
		store.setCollection(name, table)
	}
	return store, nil
}

func loadSQLTable(ctx context.Context, db *sql.DB, name string) (*Table, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+name)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", name, err)
	}

	table := NewTable(name, cols...)
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if cells[i].Valid {
				row[col] = String(cells[i].String)
			} else {
				row[col] = Null()
			}
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", name, err)
	}
	return table, nil
}
