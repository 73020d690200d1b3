package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// EscrowUseCase implements port.EscrowUseCase on top of a port.Ledger. It
// holds no campaign state of its own: every call is a function of what the
// ledger reports and the arguments it is given.
type EscrowUseCase struct {
	ledger    port.Ledger
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEscrowUseCase creates the escrow core. publisher may be nil.
func NewEscrowUseCase(ledger port.Ledger, publisher port.EventPublisher, logger *slog.Logger) *EscrowUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &EscrowUseCase{ledger: ledger, publisher: publisher, logger: logger}
}

// CreateCampaign validates the request against the ledger clock and stores
// a fresh campaign with nothing raised.
func (u *EscrowUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if req.Creator == "" {
		return nil, domain.ErrInvalidAccount
	}
	if len(req.Name) > domain.MaxNameLen {
		return nil, domain.ErrNameTooLong
	}
	if req.Goal <= 0 {
		return nil, domain.ErrInvalidGoal
	}

	id := domain.NewCampaignID(req.Creator, req.Name)
	var created domain.Campaign
	err := u.ledger.Atomic(ctx, id, func(ctx context.Context, tx port.LedgerTx) error {
		now, err := tx.Now(ctx)
		if err != nil {
			return err
		}
		if !req.Deadline.After(now) {
			return domain.ErrInvalidDeadline
		}
		created = domain.Campaign{
			ID:        id,
			Creator:   req.Creator,
			Name:      req.Name,
			Goal:      req.Goal,
			Deadline:  req.Deadline,
			CreatedAt: now,
		}
		return tx.CreateCampaign(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("campaign created",
		slog.String("campaign_id", id.String()),
		slog.String("creator", string(req.Creator)),
		slog.Int64("goal", int64(req.Goal)),
		slog.Time("deadline", req.Deadline))
	u.emit(ctx, domain.EventCampaignCreated, id, req.Creator, 0, 0, created.CreatedAt)
	return &created, nil
}

// Contribute checks the campaign is open and that both totals can absorb the
// amount before any value moves.
func (u *EscrowUseCase) Contribute(ctx context.Context, req port.ContributeReq) (*port.ContributionResp, error) {
	if req.Contributor == "" {
		return nil, domain.ErrInvalidAccount
	}
	if req.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var (
		resp port.ContributionResp
		at   time.Time
	)
	err := u.ledger.Atomic(ctx, req.CampaignID, func(ctx context.Context, tx port.LedgerTx) error {
		campaign, err := tx.GetCampaign(ctx, req.CampaignID)
		if err != nil {
			return err
		}
		if at, err = tx.Now(ctx); err != nil {
			return err
		}
		if campaign.Ended(at) {
			return domain.ErrCampaignEnded
		}

		stake, _, err := tx.GetContribution(ctx, campaign.ID, req.Contributor)
		if err != nil {
			return err
		}
		stake.CampaignID, stake.Contributor = campaign.ID, req.Contributor

		raised, err := domain.CheckedAdd(campaign.Raised, req.Amount)
		if err != nil {
			return err
		}
		stakeAmount, err := domain.CheckedAdd(stake.Amount, req.Amount)
		if err != nil {
			return err
		}

		if err = tx.Transfer(ctx, req.Contributor, campaign.Vault(), req.Amount); err != nil {
			return err
		}

		campaign.Raised = raised
		stake.Amount = stakeAmount
		if err = tx.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if err = tx.PutContribution(ctx, stake); err != nil {
			return err
		}
		resp = port.ContributionResp{Contribution: stake, Raised: raised}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("contributed",
		slog.String("campaign_id", req.CampaignID.String()),
		slog.String("contributor", string(req.Contributor)),
		slog.Int64("amount", int64(req.Amount)),
		slog.Int64("raised", int64(resp.Raised)))
	u.emit(ctx, domain.EventContributed, req.CampaignID, req.Contributor, req.Amount, resp.Raised, at)
	return &resp, nil
}

// Withdraw pays out the vault's entire balance, including any dust sent to
// it directly, and marks the campaign claimed.
func (u *EscrowUseCase) Withdraw(ctx context.Context, req port.WithdrawReq) (*port.SettlementResp, error) {
	var (
		resp port.SettlementResp
		at   time.Time
	)
	err := u.ledger.Atomic(ctx, req.CampaignID, func(ctx context.Context, tx port.LedgerTx) error {
		campaign, err := tx.GetCampaign(ctx, req.CampaignID)
		if err != nil {
			return err
		}
		if req.Caller == "" || req.Caller != campaign.Creator {
			return domain.ErrNotAuthorized
		}
		if campaign.Claimed {
			return domain.ErrAlreadyClaimed
		}
		if !campaign.GoalMet() {
			return domain.ErrGoalNotMet
		}
		if at, err = tx.Now(ctx); err != nil {
			return err
		}
		if !campaign.Ended(at) {
			return domain.ErrCampaignNotEnded
		}

		balance, err := tx.BalanceOf(ctx, campaign.Vault())
		if err != nil {
			return err
		}
		if err = tx.TransferFromVault(ctx, authorityFor(campaign.ID), campaign.Creator, balance); err != nil {
			return err
		}

		campaign.Claimed = true
		if err = tx.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		resp = port.SettlementResp{
			CampaignID:  campaign.ID,
			Recipient:   campaign.Creator,
			Transferred: balance,
			Raised:      campaign.Raised,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("withdrawn",
		slog.String("campaign_id", req.CampaignID.String()),
		slog.String("creator", string(resp.Recipient)),
		slog.Int64("amount", int64(resp.Transferred)))
	u.emit(ctx, domain.EventWithdrawn, req.CampaignID, resp.Recipient, resp.Transferred, resp.Raised, at)
	return &resp, nil
}

// Refund returns part or all of a contributor's stake from a failed
// campaign. The refund that brings raised to zero transfers the vault's
// whole balance so that no dust is stranded behind it.
func (u *EscrowUseCase) Refund(ctx context.Context, req port.RefundReq) (*port.SettlementResp, error) {
	if req.Contributor == "" {
		return nil, domain.ErrInvalidAccount
	}
	if req.Amount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	var (
		resp port.SettlementResp
		at   time.Time
	)
	err := u.ledger.Atomic(ctx, req.CampaignID, func(ctx context.Context, tx port.LedgerTx) error {
		campaign, err := tx.GetCampaign(ctx, req.CampaignID)
		if err != nil {
			return err
		}
		if campaign.Claimed {
			return domain.ErrAlreadyClaimed
		}
		if at, err = tx.Now(ctx); err != nil {
			return err
		}
		if !campaign.Ended(at) {
			return domain.ErrCampaignNotEnded
		}
		if campaign.GoalMet() {
			return domain.ErrGoalMetCannotRefund
		}

		stake, found, err := tx.GetContribution(ctx, campaign.ID, req.Contributor)
		if err != nil {
			return err
		}
		if !found || stake.Amount <= 0 {
			return domain.ErrInsufficientContribution
		}
		amount := req.Amount
		if amount == 0 {
			amount = stake.Amount
		}
		if amount > stake.Amount {
			return domain.ErrInsufficientContribution
		}

		raised, err := domain.CheckedSub(campaign.Raised, amount)
		if err != nil {
			return err
		}
		remaining, err := domain.CheckedSub(stake.Amount, amount)
		if err != nil {
			return err
		}

		payout := amount
		if raised == 0 {
			if payout, err = tx.BalanceOf(ctx, campaign.Vault()); err != nil {
				return err
			}
		}
		if err = tx.TransferFromVault(ctx, authorityFor(campaign.ID), req.Contributor, payout); err != nil {
			return err
		}

		campaign.Raised = raised
		if err = tx.UpdateCampaign(ctx, campaign); err != nil {
			return err
		}
		if remaining == 0 {
			err = tx.DeleteContribution(ctx, campaign.ID, req.Contributor)
		} else {
			stake.Amount = remaining
			err = tx.PutContribution(ctx, stake)
		}
		if err != nil {
			return err
		}
		resp = port.SettlementResp{
			CampaignID:  campaign.ID,
			Recipient:   req.Contributor,
			Transferred: payout,
			Remaining:   remaining,
			Raised:      raised,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("refunded",
		slog.String("campaign_id", req.CampaignID.String()),
		slog.String("contributor", string(req.Contributor)),
		slog.Int64("amount", int64(resp.Transferred)),
		slog.Int64("raised", int64(resp.Raised)))
	u.emit(ctx, domain.EventRefunded, req.CampaignID, req.Contributor, resp.Transferred, resp.Raised, at)
	return &resp, nil
}

// Campaign reads a campaign and its vault balance in one unit.
func (u *EscrowUseCase) Campaign(ctx context.Context, id domain.CampaignID) (*port.CampaignView, error) {
	var view port.CampaignView
	err := u.ledger.Atomic(ctx, id, func(ctx context.Context, tx port.LedgerTx) error {
		campaign, err := tx.GetCampaign(ctx, id)
		if err != nil {
			return err
		}
		now, err := tx.Now(ctx)
		if err != nil {
			return err
		}
		balance, err := tx.BalanceOf(ctx, campaign.Vault())
		if err != nil {
			return err
		}
		view = port.CampaignView{
			Campaign:     campaign,
			VaultBalance: balance,
			State:        campaign.State(now),
			At:           now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Contribution returns the contributor's outstanding stake.
func (u *EscrowUseCase) Contribution(ctx context.Context, id domain.CampaignID, contributor domain.AccountID) (*domain.Contribution, error) {
	stake := domain.Contribution{CampaignID: id, Contributor: contributor}
	err := u.ledger.Atomic(ctx, id, func(ctx context.Context, tx port.LedgerTx) error {
		if _, err := tx.GetCampaign(ctx, id); err != nil {
			return err
		}
		found, ok, err := tx.GetContribution(ctx, id, contributor)
		if err != nil {
			return err
		}
		if ok {
			stake.Amount = found.Amount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stake, nil
}

// emit publishes a committed outcome. Failures are logged only: the
// operation has already been applied.
func (u *EscrowUseCase) emit(ctx context.Context, kind domain.EventKind, id domain.CampaignID, account domain.AccountID, amount, raised domain.Amount, at time.Time) {
	if u.publisher == nil {
		return
	}
	ev := domain.Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		CampaignID: id,
		Account:    account,
		Amount:     amount,
		Raised:     raised,
		At:         at,
	}
	if err := u.publisher.Publish(ctx, ev); err != nil {
		u.logger.Warn("publish escrow event failed",
			slog.String("kind", string(kind)),
			slog.String("campaign_id", id.String()),
			slog.Any("error", err))
	}
}
