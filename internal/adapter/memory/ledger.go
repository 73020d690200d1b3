// Package memory implements port.Ledger in process memory. It backs the
// server when no database is configured and is the ledger the escrow tests
// run against.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

type contributionKey struct {
	campaign    domain.CampaignID
	contributor domain.AccountID
}

// Ledger keeps balances and escrow records in maps. Units on one campaign
// are serialized by a per-campaign mutex; the shared maps are guarded by mu,
// which is only held for the duration of a single read or mutation.
type Ledger struct {
	now        func() time.Time
	minBalance domain.Amount

	locksMu sync.Mutex
	locks   map[domain.CampaignID]*sync.Mutex

	mu            sync.Mutex
	balances      map[domain.AccountID]domain.Amount
	campaigns     map[domain.CampaignID]domain.Campaign
	contributions map[contributionKey]domain.Contribution
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithMinBalance sets the smallest non-zero balance an account may be left
// with after a debit.
func WithMinBalance(min domain.Amount) Option {
	return func(l *Ledger) { l.minBalance = min }
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		now:           func() time.Time { return time.Now().UTC() },
		locks:         make(map[domain.CampaignID]*sync.Mutex),
		balances:      make(map[domain.AccountID]domain.Amount),
		campaigns:     make(map[domain.CampaignID]domain.Campaign),
		contributions: make(map[contributionKey]domain.Contribution),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Atomic implements port.Ledger.
func (l *Ledger) Atomic(ctx context.Context, id domain.CampaignID, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	lock := l.campaignLock(id)
	lock.Lock()
	defer lock.Unlock()

	t := &tx{l: l, campaign: id, credits: make(map[domain.AccountID]domain.Amount)}
	if err := fn(ctx, t); err != nil {
		t.rollback()
		return err
	}
	if err := t.commit(); err != nil {
		t.rollback()
		return err
	}
	return nil
}

func (l *Ledger) campaignLock(id domain.CampaignID) *sync.Mutex {
	l.locksMu.Lock()
	defer l.locksMu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// Deposit credits account from outside the escrow. It is how user accounts
// get funded and how a third party can push value straight into a vault.
func (l *Ledger) Deposit(account domain.AccountID, amount domain.Amount) error {
	if account == "" || amount <= 0 {
		return &domain.TransferError{To: account, Amount: amount, Err: domain.ErrInvalidTransfer}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	next, err := domain.CheckedAdd(l.balances[account], amount)
	if err != nil {
		return &domain.TransferError{To: account, Amount: amount, Err: err}
	}
	l.balances[account] = next
	return nil
}

// Balance returns the current balance of account.
func (l *Ledger) Balance(account domain.AccountID) domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[account]
}

// Contributions returns the live contribution records of a campaign ordered
// by contributor.
func (l *Ledger) Contributions(id domain.CampaignID) []domain.Contribution {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.Contribution
	for k, c := range l.contributions {
		if k.campaign == id {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Contributor < out[j].Contributor })
	return out
}

// tx is one atomic unit. Debits hit the shared balances at once, so the
// value is reserved; credits are staged in credits and only become visible
// to other units on commit. Every applied mutation pushes its inverse onto
// undo.
type tx struct {
	l        *Ledger
	campaign domain.CampaignID
	credits  map[domain.AccountID]domain.Amount
	undo     []func()
}

func (t *tx) rollback() {
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	clear(t.credits)
}

// commit publishes the staged credits. It applies all of them or none.
func (t *tx) commit() error {
	l := t.l
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make(map[domain.AccountID]domain.Amount, len(t.credits))
	for account, amount := range t.credits {
		sum, err := domain.CheckedAdd(l.balances[account], amount)
		if err != nil {
			return &domain.TransferError{To: account, Amount: amount, Err: err}
		}
		next[account] = sum
	}
	for account, balance := range next {
		l.balances[account] = balance
	}
	clear(t.credits)
	t.undo = nil
	return nil
}

func (t *tx) inScope(id domain.CampaignID) error {
	if id != t.campaign {
		return fmt.Errorf("memory: campaign %s is outside unit %s", id, t.campaign)
	}
	return nil
}

func (t *tx) Now(context.Context) (time.Time, error) {
	return t.l.now(), nil
}

func (t *tx) Transfer(_ context.Context, from, to domain.AccountID, amount domain.Amount) error {
	if domain.IsVaultAddress(from) {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrUnauthorizedDebit}
	}
	return t.move(from, to, amount)
}

func (t *tx) TransferFromVault(_ context.Context, auth port.VaultAuthority, to domain.AccountID, amount domain.Amount) error {
	if auth == nil || auth.ScopedTo() != t.campaign {
		return &domain.TransferError{From: domain.VaultAddress(t.campaign), To: to, Amount: amount, Err: domain.ErrUnauthorizedDebit}
	}
	return t.move(domain.VaultAddress(auth.ScopedTo()), to, amount)
}

func (t *tx) move(from, to domain.AccountID, amount domain.Amount) error {
	if from == "" || to == "" || from == to || amount < 0 {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrInvalidTransfer}
	}
	if amount == 0 {
		return nil
	}

	l := t.l
	l.mu.Lock()
	defer l.mu.Unlock()

	staged := t.credits[from]
	available, err := domain.CheckedAdd(l.balances[from], staged)
	if err != nil {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: err}
	}
	if available < amount {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrInsufficientFunds}
	}
	rest := available - amount
	if rest > 0 && rest < l.minBalance {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: domain.ErrBelowMinimumBalance}
	}
	pending, err := domain.CheckedAdd(t.credits[to], amount)
	if err == nil {
		_, err = domain.CheckedAdd(l.balances[to], pending)
	}
	if err != nil {
		return &domain.TransferError{From: from, To: to, Amount: amount, Err: err}
	}

	// Spend this unit's own staged credit first, then committed balance.
	fromStaged := min(staged, amount)
	fromCommitted := amount - fromStaged
	t.credits[from] = staged - fromStaged
	if fromCommitted > 0 {
		l.balances[from] -= fromCommitted
		t.undo = append(t.undo, func() { l.balances[from] += fromCommitted })
	}
	t.credits[to] = pending
	return nil
}

func (t *tx) BalanceOf(_ context.Context, account domain.AccountID) (domain.Amount, error) {
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	return domain.CheckedAdd(t.l.balances[account], t.credits[account])
}

func (t *tx) CreateCampaign(_ context.Context, c domain.Campaign) error {
	if err := t.inScope(c.ID); err != nil {
		return err
	}
	l := t.l
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.campaigns[c.ID]; ok {
		return domain.ErrCampaignExists
	}
	l.campaigns[c.ID] = c
	t.undo = append(t.undo, func() { delete(l.campaigns, c.ID) })
	return nil
}

func (t *tx) GetCampaign(_ context.Context, id domain.CampaignID) (domain.Campaign, error) {
	if err := t.inScope(id); err != nil {
		return domain.Campaign{}, err
	}
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	c, ok := t.l.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (t *tx) UpdateCampaign(_ context.Context, c domain.Campaign) error {
	if err := t.inScope(c.ID); err != nil {
		return err
	}
	l := t.l
	l.mu.Lock()
	defer l.mu.Unlock()
	prev, ok := l.campaigns[c.ID]
	if !ok {
		return domain.ErrCampaignNotFound
	}
	l.campaigns[c.ID] = c
	t.undo = append(t.undo, func() { l.campaigns[c.ID] = prev })
	return nil
}

func (t *tx) GetContribution(_ context.Context, id domain.CampaignID, contributor domain.AccountID) (domain.Contribution, bool, error) {
	if err := t.inScope(id); err != nil {
		return domain.Contribution{}, false, err
	}
	t.l.mu.Lock()
	defer t.l.mu.Unlock()
	c, ok := t.l.contributions[contributionKey{id, contributor}]
	return c, ok, nil
}

func (t *tx) PutContribution(_ context.Context, c domain.Contribution) error {
	if err := t.inScope(c.CampaignID); err != nil {
		return err
	}
	l := t.l
	key := contributionKey{c.CampaignID, c.Contributor}
	l.mu.Lock()
	defer l.mu.Unlock()
	prev, existed := l.contributions[key]
	l.contributions[key] = c
	t.undo = append(t.undo, func() {
		if existed {
			l.contributions[key] = prev
		} else {
			delete(l.contributions, key)
		}
	})
	return nil
}

func (t *tx) DeleteContribution(_ context.Context, id domain.CampaignID, contributor domain.AccountID) error {
	if err := t.inScope(id); err != nil {
		return err
	}
	l := t.l
	key := contributionKey{id, contributor}
	l.mu.Lock()
	defer l.mu.Unlock()
	prev, existed := l.contributions[key]
	if !existed {
		return nil
	}
	delete(l.contributions, key)
	t.undo = append(t.undo, func() { l.contributions[key] = prev })
	return nil
}
