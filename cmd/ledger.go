package main

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// newLedger builds the configured ledger and returns a func releasing it.
func newLedger(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Ledger, func(), error) {
	grants, err := cfg.Ledger.FaucetGrants()
	if err != nil {
		return nil, nil, err
	}
	minBalance := domain.Amount(cfg.Ledger.MinBalance)

	if cfg.Ledger.Backend == configs.LedgerMemory {
		ledger := memory.NewLedger(memory.WithMinBalance(minBalance))
		for account, amount := range grants {
			if err = ledger.Deposit(domain.AccountID(account), domain.Amount(amount)); err != nil {
				return nil, nil, fmt.Errorf("faucet %s: %w", account, err)
			}
		}
		logger.Info("memory ledger ready", slog.Int("funded_accounts", len(grants)))
		return ledger, func() {}, nil
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.Seed || len(grants) > 0 {
		if err = db.Seed(ctx, pool, grants); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("accounts seeded")
	}
	return postgres.NewLedger(pool, postgres.WithMinBalance(minBalance)), pool.Close, nil
}
