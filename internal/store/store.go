// Package store provides the in-memory analytical store backing the
// platform's read-only data lookups: CRM accounts and opportunities,
// billing subscriptions, and usage metrics.
//
// The store is embedded SQLite seeded with demo data at open time. It is
// injected into agents as narrow read-only interfaces; there is no
// process-wide singleton.
package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

// Store wraps the SQLite connection serving read-only lookups.
type Store struct {
	conn *sql.DB
}

// Open creates an in-memory SQLite store, creates the schema, and seeds
// the demo dataset. The connection pool is pinned to a single connection
// so the in-memory database survives across queries.
func Open() (*Store, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, types.WrapError(types.STORE_OPEN_FAILED, "failed to open analytics store", err)
	}

	// An in-memory SQLite database is scoped to its connection.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, types.WrapError(types.STORE_OPEN_FAILED, "failed to ping analytics store", err)
	}

	s := &Store{conn: conn}
	if err := s.seed(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the underlying connection. The in-memory database is
// destroyed with it.
func (s *Store) Close() error {
	return s.conn.Close()
}
