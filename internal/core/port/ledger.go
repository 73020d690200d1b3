package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// Ledger is the outbound port to the host that moves value, keeps time and
// persists escrow records. It is the only place where state lives.
type Ledger interface {
	// Atomic runs fn as one indivisible unit scoped to a campaign. Units on
	// the same campaign are serialized; units on different campaigns must not
	// contend. If fn returns an error every transfer and record mutation made
	// through tx is discarded and the error is returned unchanged.
	Atomic(ctx context.Context, campaign domain.CampaignID, fn func(ctx context.Context, tx LedgerTx) error) error
}

// LedgerTx is the view of the ledger available inside one atomic unit.
type LedgerTx interface {
	Clock
	Bank
	RecordStore
}

// Clock reports the ledger's wall-clock time. Readings never go backwards.
type Clock interface {
	Now(ctx context.Context) (time.Time, error)
}

// Bank moves value between accounts. Refusals are *domain.TransferError.
type Bank interface {
	// Transfer moves amount from a user account. A vault is never a valid
	// source for Transfer.
	Transfer(ctx context.Context, from, to domain.AccountID, amount domain.Amount) error
	// TransferFromVault debits the vault of auth.ScopedTo().
	TransferFromVault(ctx context.Context, auth VaultAuthority, to domain.AccountID, amount domain.Amount) error
	// BalanceOf returns the value currently held by account.
	BalanceOf(ctx context.Context, account domain.AccountID) (domain.Amount, error)
}

// RecordStore persists campaigns and contributions.
type RecordStore interface {
	// CreateCampaign fails with domain.ErrCampaignExists when the id is taken.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign fails with domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id domain.CampaignID) (domain.Campaign, error)
	UpdateCampaign(ctx context.Context, c domain.Campaign) error
	// GetContribution returns found=false when the pair has no record.
	GetContribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) (c domain.Contribution, found bool, err error)
	PutContribution(ctx context.Context, c domain.Contribution) error
	DeleteContribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) error
}

// VaultAuthority is a signing capability over exactly one campaign vault.
// Only the escrow use case issues it and it never leaves an operation.
type VaultAuthority interface {
	ScopedTo() domain.CampaignID
}
