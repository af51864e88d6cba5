package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// CSVSource loads the six collections from <dir>/<collection>.csv files.
type CSVSource struct {
	dir string
}

// NewCSVSource creates a CSV directory source.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.dir
}

func (s *CSVSource) Load(ctx context.Context) (*Store, error) {
	store := &Store{}
	for name := range primaryKeys {
		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		table, err := s.loadTable(name)
		if err != nil {
			return nil, &LoadError{Source: s.Name(), Err: err}
		}
		store.setCollection(name, table)
	}
	return store, nil
}

func (s *CSVSource) loadTable(name string) (*Table, error) {
	path := filepath.Join(s.dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: missing header row", path)
	}

	header := records[0]
	table := NewTable(name, header...)
	for _, rec := range records[1:] {
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

// setCollection assigns a loaded table to its slot on the store.
func (s *Store) setCollection(name string, t *Table) {
	switch name {
	case CollectionDistributionCenters:
		s.DistributionCenters = t
	case CollectionProducts:
		s.Products = t
	case CollectionInventoryItems:
		s.InventoryItems = t
	case CollectionOrders:
		s.Orders = t
	case CollectionOrderItems:
		s.OrderItems = t
	case CollectionUsers:
		s.Users = t
	}
}
