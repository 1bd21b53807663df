package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// lockKey takes a transaction-scoped advisory lock on the given key.
// Guards read current state and the caller then writes; serializing
// writers per affected key (classroom+day, student+semester,
// course+semester) closes the race between check and insert. The lock
// releases automatically at commit or rollback.
func lockKey(ctx context.Context, tx pgx.Tx, key string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return fmt.Errorf("advisory lock %q: %w", key, err)
	}
	return nil
}
