package tabular

import (
	"context"
	"fmt"

	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/observability"
)

// Collection names for the six record sets the engine trains on.
const (
	CollectionDistributionCenters = "distribution_centers"
	CollectionProducts            = "products"
	CollectionInventoryItems      = "inventory_items"
	CollectionOrders              = "orders"
	CollectionOrderItems          = "order_items"
	CollectionUsers               = "users"
)

// primaryKeys maps each collection to its identifier column.
var primaryKeys = map[string]string{
	CollectionDistributionCenters: "id",
	CollectionProducts:            "id",
	CollectionInventoryItems:      "id",
	CollectionOrders:              "order_id",
	CollectionOrderItems:          "id",
	CollectionUsers:               "id",
}

// Store holds the six record collections. It is immutable after load:
// a reload produces a fresh Store that callers swap in wholesale.
type Store struct {
	DistributionCenters *Table
	Products            *Table
	InventoryItems      *Table
	Orders              *Table
	OrderItems          *Table
	Users               *Table

	// Synthetic is true when the store was populated from the built-in
	// fixture instead of an external source.
	Synthetic bool
}

// LoadError reports a failure to read or parse an external source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Source loads the six collections from an external backing store.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Store, error)
}

// Collection returns the table for a collection name, nil when unknown.
func (s *Store) Collection(name string) *Table {
	switch name {
	case CollectionDistributionCenters:
		return s.DistributionCenters
	case CollectionProducts:
		return s.Products
	case CollectionInventoryItems:
		return s.InventoryItems
	case CollectionOrders:
		return s.Orders
	case CollectionOrderItems:
		return s.OrderItems
	case CollectionUsers:
		return s.Users
	}
	return nil
}

// Empty reports whether every collection is empty. A nil store is
// empty.
func (s *Store) Empty() bool {
	if s == nil {
		return true
	}
	for _, n := range s.RowCounts() {
		if n > 0 {
			return false
		}
	}
	return true
}

// RowCounts returns the per-collection row counts.
func (s *Store) RowCounts() map[string]int {
	return map[string]int{
		CollectionDistributionCenters: s.DistributionCenters.Len(),
		CollectionProducts:            s.Products.Len(),
		CollectionInventoryItems:      s.InventoryItems.Len(),
		CollectionOrders:              s.Orders.Len(),
		CollectionOrderItems:          s.OrderItems.Len(),
		CollectionUsers:               s.Users.Len(),
	}
}

// validate checks primary key uniqueness for every collection.
func (s *Store) validate() error {
	for name, pk := range primaryKeys {
		t := s.Collection(name)
		if t == nil {
			return fmt.Errorf("missing collection %s", name)
		}
		if err := t.validatePrimaryKey(pk); err != nil {
			return err
		}
	}
	return nil
}

// NewSource builds a Source from the configured data driver.
func NewSource(cfg config.DataConfig) (Source, error) {
	switch cfg.Source {
	case "csv":
		return NewCSVSource(cfg.CSV.Dir), nil
	case "sqlite":
		return NewSQLiteSource(cfg.SQLite.Path), nil
	case "postgres":
		return NewPostgresSource(cfg.Postgres), nil
	case "xlsx":
		return NewXLSXSource(cfg.XLSX.Path), nil
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Source)
	}
}

// Open loads the store from the configured source, falling back to
// the synthetic fixture when the source cannot be read. Load failures
// are logged, never surfaced to the caller.
func Open(ctx context.Context, cfg config.DataConfig, logger *observability.Logger) *Store {
	src, err := NewSource(cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid data source configuration, using synthetic fixture")
		return Fixture()
	}

	store, err := src.Load(ctx)
	if err != nil {
		logger.Warn().
			Str("source", src.Name()).
			Err(err).
			Msg("Failed to load data source, using synthetic fixture")
		return Fixture()
	}

	if err := store.validate(); err != nil {
		logger.Warn().
			Str("source", src.Name()).
			Err(err).
			Msg("Loaded data failed validation, using synthetic fixture")
		return Fixture()
	}

	logger.Info().
		Str("source", src.Name()).
		Int("products", store.Products.Len()).
		Int("orders", store.Orders.Len()).
		Int("inventory_items", store.InventoryItems.Len()).
		Msg("Data store loaded")

	return store
}
