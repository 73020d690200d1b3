package port

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
)

// EscrowUseCase defines the operations exposed by the escrow. This interface
// is the primary port into the application domain. Each mutating call either
// fully succeeds or fails with one of the domain errors and changes nothing.
type EscrowUseCase interface {
	// CreateCampaign opens a campaign keyed by (creator, name). No value moves.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// Contribute moves value from the contributor into the campaign vault
	// and credits the contributor's stake. Only allowed before the deadline.
	Contribute(ctx context.Context, req ContributeReq) (*ContributionResp, error)

	// Withdraw pays the whole vault to the creator once the goal was met and
	// the deadline passed. It succeeds at most once per campaign.
	Withdraw(ctx context.Context, req WithdrawReq) (*SettlementResp, error)

	// Refund returns a contributor's stake, or part of it, after the deadline
	// of a campaign that missed its goal. The refund that empties the campaign
	// sweeps whatever the vault holds.
	Refund(ctx context.Context, req RefundReq) (*SettlementResp, error)

	// Campaign returns a point-in-time view of one campaign.
	Campaign(ctx context.Context, id domain.CampaignID) (*CampaignView, error)

	// Contribution returns the outstanding stake of contributor, zero when
	// no record exists.
	Contribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) (*domain.Contribution, error)
}

type CreateCampaignReq struct {
	Creator  domain.AccountID
	Name     string
	Goal     domain.Amount
	Deadline time.Time
}

type ContributeReq struct {
	CampaignID  domain.CampaignID
	Contributor domain.AccountID
	Amount      domain.Amount
}

type WithdrawReq struct {
	CampaignID domain.CampaignID
	Caller     domain.AccountID
}

// RefundReq asks for Amount back; zero means the contributor's full stake.
type RefundReq struct {
	CampaignID  domain.CampaignID
	Contributor domain.AccountID
	Amount      domain.Amount
}

// ContributionResp reports the stake and campaign total after a contribution.
type ContributionResp struct {
	Contribution domain.Contribution
	Raised       domain.Amount
}

// SettlementResp reports a payout from the vault. Transferred is what
// actually moved; Remaining is the caller's stake left after a refund.
type SettlementResp struct {
	CampaignID  domain.CampaignID
	Recipient   domain.AccountID
	Transferred domain.Amount
	Remaining   domain.Amount
	Raised      domain.Amount
}

// CampaignView is a campaign together with its vault balance and state as
// observed at At.
type CampaignView struct {
	Campaign     domain.Campaign
	VaultBalance domain.Amount
	State        domain.State
	At           time.Time
}
