package store

import (
	"context"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/types"
)

const schema = `
CREATE TABLE accounts (
	account_id    TEXT PRIMARY KEY,
	customer_name TEXT NOT NULL,
	segment       TEXT NOT NULL,
	region        TEXT NOT NULL
);

CREATE TABLE opportunities (
	opportunity_id         TEXT PRIMARY KEY,
	account_id             TEXT NOT NULL REFERENCES accounts(account_id),
	stage                  TEXT NOT NULL,
	requested_discount_pct INTEGER NOT NULL CHECK (requested_discount_pct BETWEEN 0 AND 100),
	payment_terms          TEXT NOT NULL,
	owner                  TEXT NOT NULL
);

CREATE TABLE subscriptions (
	customer_name        TEXT PRIMARY KEY,
	mrr_usd              INTEGER NOT NULL CHECK (mrr_usd >= 0),
	status               TEXT NOT NULL,
	on_time_payment_rate REAL NOT NULL CHECK (on_time_payment_rate BETWEEN 0.0 AND 1.0)
);

CREATE TABLE usage_metrics (
	customer_name       TEXT NOT NULL,
	month               TEXT NOT NULL,
	active_seats        INTEGER NOT NULL CHECK (active_seats >= 0),
	weekly_active_ratio REAL NOT NULL CHECK (weekly_active_ratio BETWEEN 0.0 AND 1.0)
);
`

// seed creates the schema and loads the demo dataset the lookups serve.
func (s *Store) seed(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, schema); err != nil {
		return types.WrapError(types.STORE_SEED_FAILED, "failed to create schema", err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.STORE_SEED_FAILED, "failed to begin seed transaction", err)
	}
	defer tx.Rollback()

	inserts := []struct {
		query string
		rows  [][]any
	}{
		{
			query: `INSERT INTO accounts (account_id, customer_name, segment, region) VALUES (?, ?, ?, ?)`,
			rows: [][]any{
				{"ACC_001", "Acme", "ENT", "NA"},
				{"ACC_002", "BetaCo", "SMB", "EU"},
			},
		},
		{
			query: `INSERT INTO opportunities
				(opportunity_id, account_id, stage, requested_discount_pct, payment_terms, owner)
				VALUES (?, ?, ?, ?, ?, ?)`,
			rows: [][]any{
				{"OPP_1001", "ACC_001", "Negotiation", 15, "NET_30", "sales.rep@company.com"},
			},
		},
		{
			query: `INSERT INTO subscriptions (customer_name, mrr_usd, status, on_time_payment_rate) VALUES (?, ?, ?, ?)`,
			rows: [][]any{
				{"Acme", 8000, "active", 0.96},
				{"BetaCo", 1200, "active", 0.89},
			},
		},
		{
			query: `INSERT INTO usage_metrics (customer_name, month, active_seats, weekly_active_ratio) VALUES (?, ?, ?, ?)`,
			rows: [][]any{
				{"Acme", "2025-10", 220, 0.72},
				{"Acme", "2025-11", 235, 0.74},
				{"Acme", "2025-12", 240, 0.76},
			},
		},
	}

	for _, ins := range inserts {
		for _, row := range ins.rows {
			if _, err := tx.ExecContext(ctx, ins.query, row...); err != nil {
				return types.WrapError(types.STORE_SEED_FAILED, "failed to seed row", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.STORE_SEED_FAILED, "failed to commit seed transaction", err)
	}
	return nil
}
