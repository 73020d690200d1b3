package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoAccounts are credited by Seed when no explicit grants are given.
var DemoAccounts = map[string]int64{
	"alice": 1_000_000,
	"bob":   1_000_000,
	"carol": 1_000_000,
}

// Seed opens the granted accounts in one transaction so that a fresh
// database can run a campaign end to end. Accounts that already exist are
// left alone, so running Seed on every start never mints value twice.
func Seed(ctx context.Context, pool *pgxpool.Pool, grants map[string]int64) error {
	if len(grants) == 0 {
		grants = DemoAccounts
	}
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for account, amount := range grants {
			batch.Queue(`INSERT INTO accounts (id, balance) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
				account, amount)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
		return nil
	})
}
