package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteSource loads the six collections from a SQLite database file.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a SQLite file source.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

func (s *SQLiteSource) Name() string {
	return "sqlite:" + s.path
}

func (s *SQLiteSource) Load(ctx context.Context) (*Store, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("stat database: %w", err)}
	}

	db, err := sql.Open("sqlite3", s.path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Source: s.Name(), Err: fmt.Errorf("open database: %w", err)}
	}
	defer db.Close()

	return loadSQLStore(ctx, db, s.Name())
}
