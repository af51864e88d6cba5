package tabular

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource loads the six collections from one workbook, one sheet
// per collection named after it.
type XLSXSource struct {
	path string
}

// NewXLSXSource creates a spreadsheet workbook source.
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Name() string {
	return "xlsx:" + s.path
}

func (s *XLSXSource) Load(ctx context.Context) (*Store, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("open workbook: %w", err)}
	}
	defer f.Close()

	store := &Store{}
	for name := range primaryKeys {
		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		table, err := s.loadSheet(f, name)
		if err != nil {
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		store.setCollection(name, table)
	}
	return store, nil
}

func (s *XLSXSource) loadSheet(f *excelize.File, name string) (*Table, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s: missing header row", name)
	}

	header := rows[0]
	table := NewTable(name, header...)
	for _, rec := range rows[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i >= len(rec) || rec[i] == "" {
				row[col] = Null()
			} else {
				row[col] = String(rec[i])
			}
		}
		table.Append(row)
	}
	return table, nil
}
