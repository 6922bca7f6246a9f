package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ticket_payments (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		amount BIGINT NOT NULL CHECK (amount >= 0),
		transaction_ref VARCHAR(32) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS seat_reservations (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL CHECK (account_id > 0),
		total_seats BIGINT NOT NULL CHECK (total_seats >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_payments_account_id ON ticket_payments (account_id)`,
	`CREATE INDEX IF NOT EXISTS idx_seat_reservations_account_id ON seat_reservations (account_id)`,
}

// Migrate creates the ledger tables when they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
