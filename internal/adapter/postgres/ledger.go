package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// numericOutOfRange is the SQLSTATE raised when a bigint overflows.
const numericOutOfRange = "22003"

// Ledger implements port.Ledger using pgxpool for PostgreSQL. Each unit is
// one transaction; the campaign row is locked with FOR UPDATE so units on
// the same campaign serialize while other campaigns proceed.
type Ledger struct {
	pool       *pgxpool.Pool
	minBalance domain.Amount
	now        func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithMinBalance sets the smallest non-zero balance a debit may leave.
func WithMinBalance(min domain.Amount) Option {
	return func(l *Ledger) { l.minBalance = min }
}

// WithClock replaces the database clock.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger returns a new ledger instance.
func NewLedger(pool *pgxpool.Pool, opts ...Option) *Ledger {
	l := &Ledger{pool: pool}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Atomic implements port.Ledger.
func (l *Ledger) Atomic(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx port.LedgerTx) error) (err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = fmt.Errorf("commit tx: %w", cerr)
		}
	}()
	return fn(ctx, &ledgerTx{tx: tx, l: l, campaign: id})
}

// Deposit credits account outside any escrow unit. It backs seeding and
// lets operators push value to an account directly.
func (l *Ledger) Deposit(ctx context.Context, account domain.AccountID, amount domain.Amount) error {
	if account == "" || amount <= 0 {
		return &domain.TransferError{To: account, Amount: amount, Err: domain.ErrInvalidTransfer}
	}
	return credit(ctx, l.pool, account, amount)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func credit(ctx context.Context, db execer, account domain.AccountID, amount domain.Amount) error {
	_, err := db.Exec(ctx, `INSERT INTO accounts (id, balance) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`,
		string(account), int64(amount))
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == numericOutOfRange {
		return &domain.TransferError{To: account, Amount: amount, Err: domain.ErrArithmeticOverflow}
	}
	if err != nil {
		return fmt.Errorf("credit %s: %w", account, err)
	}
	return nil
}

type ledgerTx struct {
	tx       pgx.Tx
	l        *Ledger
	campaign domain.CampaignID
}

func (t *ledgerTx) Now(ctx context.Context) (time.Time, error) {
	if t.l.now != nil {
		return t.l.now(), nil
	}
	var now time.Time
	if err := t.tx.QueryRow(ctx, `SELECT statement_timestamp()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("read clock: %w", err)
	}
	return now, nil
}

func (t *ledgerTx) Transfer(ctx context.Context, from, to domain.AccountID, amount domain.Amount) error {
	if domain.IsVaultAddress(from) {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrUnauthorizedDebit}
	}
	return t.move(ctx, from, to, amount)
}

func (t *ledgerTx) TransferFromVault(ctx context.Context, auth port.VaultAuthority, to domain.AccountID, amount domain.Amount) error {
	if auth == nil || auth.ScopedTo() != t.campaign {
		return &domain.TransferError{From: domain.VaultAddress(t.campaign), To: to, Amount: amount, Err: domain.ErrUnauthorizedDebit}
	}
	return t.move(ctx, domain.VaultAddress(auth.ScopedTo()), to, amount)
}

func (t *ledgerTx) move(ctx context.Context, from, to domain.AccountID, amount domain.Amount) error {
	if from == "" || to == "" || from == to || amount < 0 {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrInvalidTransfer}
	}
	if amount == 0 {
		return nil
	}

	var rest int64
	err := t.tx.QueryRow(ctx, `UPDATE accounts SET balance = balance - $2, updated_at = now()
WHERE id = $1 AND balance >= $2 RETURNING balance`, string(from), int64(amount)).Scan(&rest)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrInsufficientFunds}
	}
	if err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if rest > 0 && domain.Amount(rest) < t.l.minBalance {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrBelowMinimumBalance}
	}

	err = credit(ctx, t.tx, to, amount)
	var terr *domain.TransferError
	if errors.As(err, &terr) {
		terr.From = from
	}
	return err
}

// BalanceOf locks the row when account is this unit's vault, so value pushed
// into the vault concurrently waits for the unit instead of landing between
// the read and a sweeping debit.
func (t *ledgerTx) BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error) {
	query := `SELECT balance FROM accounts WHERE id = $1`
	if account == domain.VaultAddress(t.campaign) {
		query += ` FOR UPDATE`
	}
	var balance int64
	err := t.tx.QueryRow(ctx, query, string(account)).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", account, err)
	}
	return domain.Amount(balance), nil
}

// CreateCampaign holds a transaction-scoped advisory lock on the campaign id.
// There is no row to lock yet, and the lock keeps concurrent creates of the
// same (creator, name) in order.
func (t *ledgerTx) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	if _, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, c.ID.String()); err != nil {
		return fmt.Errorf("lock campaign %s: %w", c.ID, err)
	}
	ct, err := t.tx.Exec(ctx, `INSERT INTO campaigns (id, creator, name, goal, raised, deadline, claimed, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT DO NOTHING`,
		uuid.UUID(c.ID), string(c.Creator), c.Name, int64(c.Goal), int64(c.Raised), c.Deadline, c.Claimed, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrCampaignExists
	}
	return nil
}

func (t *ledgerTx) GetCampaign(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		rawID   uuid.UUID
		creator string
		goal    int64
		raised  int64
	)
	err := t.tx.QueryRow(ctx, `SELECT id, creator, name, goal, raised, deadline, claimed, created_at
FROM campaigns WHERE id = $1 FOR UPDATE`, uuid.UUID(id)).
		Scan(&rawID, &creator, &c.Name, &goal, &raised, &c.Deadline, &c.Claimed, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("select campaign: %w", err)
	}
	c.ID = domain.CampaignID(rawID)
	c.Creator = domain.AccountID(creator)
	c.Goal = domain.Amount(goal)
	c.Raised = domain.Amount(raised)
	return c, nil
}

func (t *ledgerTx) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	ct, err := t.tx.Exec(ctx, `UPDATE campaigns SET raised = $2, claimed = $3 WHERE id = $1`,
		uuid.UUID(c.ID), int64(c.Raised), c.Claimed)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (t *ledgerTx) GetContribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) (domain.Contribution, bool, error) {
	c := domain.Contribution{CampaignID: id, Contributor: contributor}
	var amount int64
	err := t.tx.QueryRow(ctx, `SELECT amount FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		uuid.UUID(id), string(contributor)).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, false, nil
	}
	if err != nil {
		return c, false, fmt.Errorf("select contribution: %w", err)
	}
	c.Amount = domain.Amount(amount)
	return c, true, nil
}

func (t *ledgerTx) PutContribution(ctx context.Context, c domain.Contribution) error {
	_, err := t.tx.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount) VALUES ($1, $2, $3)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount = EXCLUDED.amount`,
		uuid.UUID(c.CampaignID), string(c.Contributor), int64(c.Amount))
	if err != nil {
		return fmt.Errorf("upsert contribution: %w", err)
	}
	return nil
}

func (t *ledgerTx) DeleteContribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) error {
	_, err := t.tx.Exec(ctx, `DELETE FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		uuid.UUID(id), string(contributor))
	if err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	return nil
}
