package configs

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	LedgerMemory   = "memory"
	LedgerPostgres = "postgres"
)

// Ledger selects and tunes the ledger backing the escrow.
type Ledger struct {
	// Backend is "memory" or "postgres".
	Backend string `env:"BACKEND" envDefault:"memory"`
	// MinBalance is the smallest non-zero balance a debit may leave behind.
	// Zero disables the rule.
	MinBalance int64 `env:"MIN_BALANCE" envDefault:"0"`
	// Faucet lists account=amount pairs credited at startup, e.g.
	// "alice=1000,bob=500". On postgres only accounts that do not exist yet
	// are opened, so restarts do not credit them again.
	Faucet []string `env:"FAUCET" envSeparator:","`
}

// Validate rejects unknown backends and negative minimums.
func (c Ledger) Validate() error {
	switch c.Backend {
	case LedgerMemory, LedgerPostgres:
	default:
		return fmt.Errorf("unknown ledger backend %q", c.Backend)
	}
	if c.MinBalance < 0 {
		return fmt.Errorf("ledger min balance must not be negative, got %d", c.MinBalance)
	}
	_, err := c.FaucetGrants()
	return err
}

// FaucetGrants parses Faucet into account -> amount.
func (c Ledger) FaucetGrants() (map[string]int64, error) {
	grants := make(map[string]int64, len(c.Faucet))
	for _, pair := range c.Faucet {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		account, raw, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(account) == "" {
			return nil, fmt.Errorf("faucet entry %q: want account=amount", pair)
		}
		amount, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("faucet entry %q: amount must be a positive integer", pair)
		}
		grants[strings.TrimSpace(account)] += amount
	}
	return grants, nil
}
