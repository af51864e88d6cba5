package tabular

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/stylebot-ai/support-engine/internal/config"
)

// PostgresSource loads the six collections from a Postgres database.
type PostgresSource struct {
	cfg config.PostgresConfig
}

// NewPostgresSource creates a Postgres source.
func NewPostgresSource(cfg config.PostgresConfig) *PostgresSource {
	return &PostgresSource{cfg: cfg}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Load(ctx context.Context) (*Store, error) {
	db, err := sql.Open("postgres", s.cfg.DSN)
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()

	db.SetMaxOpenConns(s.cfg.MaxOpenConns)
	db.SetConnMaxLifetime(s.cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("ping database: %w", err)}
	}

	return loadSQLStore(ctx, db, s.Name())
}
