package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	creator domain.AccountID = "creator"
	alice   domain.AccountID = "alice"
	bob     domain.AccountID = "bob"
	mallory domain.AccountID = "mallory"
)

type fixture struct {
	clock  *memory.ManualClock
	ledger *memory.Ledger
	svc    *EscrowUseCase
}

func newFixture(t *testing.T, publisher port.EventPublisher, opts ...memory.Option) *fixture {
	t.Helper()
	clock := memory.NewManualClock(t0)
	ledger := memory.NewLedger(append([]memory.Option{memory.WithClock(clock.Now)}, opts...)...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{clock: clock, ledger: ledger, svc: NewEscrowUseCase(ledger, publisher, logger)}
}

func (f *fixture) fund(t *testing.T, account domain.AccountID, amount domain.Amount) {
	t.Helper()
	require.NoError(t, f.ledger.Deposit(account, amount))
}

// open creates a campaign by creator with the deadline d after t0.
func (f *fixture) open(t *testing.T, name string, goal domain.Amount, d time.Duration) domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator:  creator,
		Name:     name,
		Goal:     goal,
		Deadline: t0.Add(d),
	})
	require.NoError(t, err)
	return *c
}

func (f *fixture) contribute(t *testing.T, id domain.CampaignID, who domain.AccountID, amount domain.Amount) {
	t.Helper()
	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: id, Contributor: who, Amount: amount})
	require.NoError(t, err)
}

func (f *fixture) view(t *testing.T, id domain.CampaignID) port.CampaignView {
	t.Helper()
	v, err := f.svc.Campaign(context.Background(), id)
	require.NoError(t, err)
	return *v
}

// checkInvariants asserts raised equals the sum of live stakes and never
// exceeds what the vault holds.
func (f *fixture) checkInvariants(t *testing.T, id domain.CampaignID) {
	t.Helper()
	v := f.view(t, id)
	var sum domain.Amount
	for _, c := range f.ledger.Contributions(id) {
		assert.Positive(t, int64(c.Amount), "live contribution of %s must be positive", c.Contributor)
		sum += c.Amount
	}
	assert.Equal(t, sum, v.Campaign.Raised, "raised must equal the sum of contributions")
	assert.GreaterOrEqual(t, int64(v.VaultBalance), int64(v.Campaign.Raised), "vault must cover raised")
}

func TestScenarioA_GoalMetCreatorWithdraws(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 1000)
	f.fund(t, bob, 1000)
	c := f.open(t, "solar", 1000, 100*time.Second)

	f.clock.Advance(10 * time.Second)
	f.contribute(t, c.ID, alice, 600)
	f.checkInvariants(t, c.ID)
	f.contribute(t, c.ID, bob, 400)
	f.checkInvariants(t, c.ID)

	f.clock.Set(t0.Add(100 * time.Second))
	v := f.view(t, c.ID)
	require.Equal(t, domain.Amount(1000), v.Campaign.Raised)
	require.Equal(t, domain.StateEvaluable, v.State)

	resp, err := f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: creator})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(1000), resp.Transferred)
	assert.Equal(t, creator, resp.Recipient)

	v = f.view(t, c.ID)
	assert.True(t, v.Campaign.Claimed)
	assert.Equal(t, domain.Amount(0), v.VaultBalance)
	assert.Equal(t, domain.StateWithdrawn, v.State)
	assert.Equal(t, domain.Amount(1000), f.ledger.Balance(creator))
}

func TestScenarioB_RefundDestroysContribution(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 500)
	c := f.open(t, "garden", 1000, 100*time.Second)

	f.contribute(t, c.ID, alice, 300)
	f.clock.Set(t0.Add(101 * time.Second))
	require.Equal(t, domain.StateRefunding, f.view(t, c.ID).State)

	resp, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(300), resp.Transferred)
	assert.Equal(t, domain.Amount(0), resp.Remaining)
	assert.Equal(t, domain.Amount(0), resp.Raised)

	assert.Empty(t, f.ledger.Contributions(c.ID))
	assert.Equal(t, domain.Amount(500), f.ledger.Balance(alice))
	v := f.view(t, c.ID)
	assert.Equal(t, domain.Amount(0), v.Campaign.Raised)
	assert.Equal(t, domain.StateDrained, v.State)
	f.checkInvariants(t, c.ID)
}

func TestScenarioC_LastRefundSweepsDust(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 300)
	c := f.open(t, "garden", 1000, 100*time.Second)
	f.contribute(t, c.ID, alice, 300)

	f.fund(t, c.Vault(), 5)
	f.checkInvariants(t, c.ID)

	f.clock.Set(t0.Add(101 * time.Second))
	resp, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(305), resp.Transferred)
	assert.Equal(t, domain.Amount(305), f.ledger.Balance(alice))
	assert.Equal(t, domain.Amount(0), f.ledger.Balance(c.Vault()))
}

func TestScenarioD_ZeroContributionRejected(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 100)
	c := f.open(t, "zero", 1000, time.Hour)

	for _, amount := range []domain.Amount{0, -5} {
		_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: amount})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	}

	assert.Equal(t, domain.Amount(100), f.ledger.Balance(alice))
	assert.Equal(t, domain.Amount(0), f.view(t, c.ID).Campaign.Raised)
	assert.Empty(t, f.ledger.Contributions(c.ID))
}

func TestScenarioE_ContributionAtDeadlineRejected(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 100)
	c := f.open(t, "late", 1000, time.Hour)

	f.clock.Set(c.Deadline)
	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: 50})
	require.ErrorIs(t, err, domain.ErrCampaignEnded)

	f.clock.Advance(time.Minute)
	_, err = f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: 50})
	require.ErrorIs(t, err, domain.ErrCampaignEnded)

	assert.Equal(t, domain.Amount(100), f.ledger.Balance(alice))
	assert.Equal(t, domain.Amount(0), f.ledger.Balance(c.Vault()))
}

func TestScenarioF_NonCreatorCannotWithdraw(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 1000)
	c := f.open(t, "theft", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 1000)
	f.clock.Set(c.Deadline)

	for _, caller := range []domain.AccountID{mallory, alice, ""} {
		_, err := f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: caller})
		require.ErrorIs(t, err, domain.ErrNotAuthorized)
	}

	v := f.view(t, c.ID)
	assert.Equal(t, domain.Amount(1000), v.VaultBalance)
	assert.False(t, v.Campaign.Claimed)
	assert.Equal(t, domain.Amount(0), f.ledger.Balance(mallory))
}

func TestCreateCampaignValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     port.CreateCampaignReq
		wantErr error
	}{
		{
			name:    "name at the byte bound",
			req:     port.CreateCampaignReq{Creator: creator, Name: strings.Repeat("a", domain.MaxNameLen), Goal: 1, Deadline: t0.Add(time.Second)},
			wantErr: nil,
		},
		{
			name:    "name over the byte bound",
			req:     port.CreateCampaignReq{Creator: creator, Name: strings.Repeat("a", domain.MaxNameLen+1), Goal: 1, Deadline: t0.Add(time.Second)},
			wantErr: domain.ErrNameTooLong,
		},
		{
			name:    "multibyte name counted in bytes",
			req:     port.CreateCampaignReq{Creator: creator, Name: strings.Repeat("é", 17), Goal: 1, Deadline: t0.Add(time.Second)},
			wantErr: domain.ErrNameTooLong,
		},
		{
			name:    "zero goal",
			req:     port.CreateCampaignReq{Creator: creator, Name: "g", Goal: 0, Deadline: t0.Add(time.Second)},
			wantErr: domain.ErrInvalidGoal,
		},
		{
			name:    "negative goal",
			req:     port.CreateCampaignReq{Creator: creator, Name: "g", Goal: -1, Deadline: t0.Add(time.Second)},
			wantErr: domain.ErrInvalidGoal,
		},
		{
			name:    "deadline equal to now",
			req:     port.CreateCampaignReq{Creator: creator, Name: "d", Goal: 1, Deadline: t0},
			wantErr: domain.ErrInvalidDeadline,
		},
		{
			name:    "deadline in the past",
			req:     port.CreateCampaignReq{Creator: creator, Name: "d", Goal: 1, Deadline: t0.Add(-time.Hour)},
			wantErr: domain.ErrInvalidDeadline,
		},
		{
			name:    "missing creator",
			req:     port.CreateCampaignReq{Name: "c", Goal: 1, Deadline: t0.Add(time.Second)},
			wantErr: domain.ErrInvalidAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			c, err := f.svc.CreateCampaign(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, err = f.svc.Campaign(context.Background(), domain.NewCampaignID(tt.req.Creator, tt.req.Name))
				require.ErrorIs(t, err, domain.ErrCampaignNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Amount(0), c.Raised)
			assert.False(t, c.Claimed)
			assert.Equal(t, t0, c.CreatedAt)
		})
	}
}

func TestCreateCampaignKeyedByCreatorAndName(t *testing.T) {
	f := newFixture(t, nil)
	first := f.open(t, "alpha", 10, time.Hour)
	second := f.open(t, "beta", 10, time.Hour)
	assert.NotEqual(t, first.ID, second.ID)

	_, err := f.svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator: creator, Name: "alpha", Goal: 99, Deadline: t0.Add(2 * time.Hour),
	})
	require.ErrorIs(t, err, domain.ErrCampaignExists)
	assert.Equal(t, domain.Amount(10), f.view(t, first.ID).Campaign.Goal)

	other, err := f.svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		Creator: alice, Name: "alpha", Goal: 10, Deadline: t0.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestContributionsAccumulateInOneRecord(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 1000)
	c := f.open(t, "repeat", 1000, time.Hour)

	f.contribute(t, c.ID, alice, 100)
	resp, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(350), resp.Contribution.Amount)
	assert.Equal(t, domain.Amount(350), resp.Raised)

	records := f.ledger.Contributions(c.ID)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Amount(350), records[0].Amount)

	stake, err := f.svc.Contribution(context.Background(), c.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(350), stake.Amount)
	f.checkInvariants(t, c.ID)
}

func TestWithdrawPreconditions(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 2000)
	met := f.open(t, "met", 500, time.Hour)
	missed := f.open(t, "missed", 5000, time.Hour)
	f.contribute(t, met.ID, alice, 500)
	f.contribute(t, missed.ID, alice, 500)

	_, err := f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: met.ID, Caller: creator})
	require.ErrorIs(t, err, domain.ErrCampaignNotEnded)

	f.clock.Set(t0.Add(time.Hour))
	_, err = f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: missed.ID, Caller: creator})
	require.ErrorIs(t, err, domain.ErrGoalNotMet)

	_, err = f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: domain.NewCampaignID(creator, "nope"), Caller: creator})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)

	assert.Equal(t, domain.Amount(500), f.ledger.Balance(met.Vault()))
	assert.Equal(t, domain.Amount(500), f.ledger.Balance(missed.Vault()))
}

func TestTerminalExclusivityAfterWithdraw(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 1000)
	c := f.open(t, "once", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 1000)
	f.clock.Set(c.Deadline)

	_, err := f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: creator})
	require.NoError(t, err)

	f.fund(t, c.Vault(), 50)
	_, err = f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: creator})
	require.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	_, err = f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	assert.Equal(t, domain.Amount(1000), f.ledger.Balance(creator))
	assert.Equal(t, domain.Amount(50), f.ledger.Balance(c.Vault()))
}

func TestWithdrawSweepsDust(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 1000)
	c := f.open(t, "dusty", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 1000)
	f.fund(t, c.Vault(), 42)
	f.clock.Set(c.Deadline)

	resp, err := f.svc.Withdraw(context.Background(), port.WithdrawReq{CampaignID: c.ID, Caller: creator})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(1042), resp.Transferred)
	assert.Equal(t, domain.Amount(0), f.ledger.Balance(c.Vault()))
}

func TestRefundPreconditions(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 2000)
	f.fund(t, bob, 2000)
	missed := f.open(t, "missed", 5000, time.Hour)
	met := f.open(t, "met", 100, time.Hour)
	f.contribute(t, missed.ID, alice, 300)
	f.contribute(t, met.ID, alice, 100)

	refund := func(id domain.CampaignID, who domain.AccountID, amount domain.Amount) error {
		_, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: id, Contributor: who, Amount: amount})
		return err
	}

	require.ErrorIs(t, refund(missed.ID, alice, 0), domain.ErrCampaignNotEnded)

	f.clock.Set(t0.Add(time.Hour))
	require.ErrorIs(t, refund(met.ID, alice, 0), domain.ErrGoalMetCannotRefund)
	require.ErrorIs(t, refund(missed.ID, bob, 0), domain.ErrInsufficientContribution)
	require.ErrorIs(t, refund(missed.ID, alice, 301), domain.ErrInsufficientContribution)
	require.ErrorIs(t, refund(missed.ID, alice, -1), domain.ErrInvalidAmount)
	require.ErrorIs(t, refund(missed.ID, "", 0), domain.ErrInvalidAccount)

	assert.Equal(t, domain.Amount(300), f.view(t, missed.ID).Campaign.Raised)
	assert.Equal(t, domain.Amount(1600), f.ledger.Balance(alice))

	require.NoError(t, refund(missed.ID, alice, 0))
	require.ErrorIs(t, refund(missed.ID, alice, 0), domain.ErrInsufficientContribution)
}

func TestPartialRefundKeepsRecord(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 300)
	f.fund(t, bob, 200)
	c := f.open(t, "partial", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 300)
	f.contribute(t, c.ID, bob, 200)
	f.clock.Set(c.Deadline)

	resp, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice, Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(100), resp.Transferred)
	assert.Equal(t, domain.Amount(200), resp.Remaining)
	assert.Equal(t, domain.Amount(400), resp.Raised)
	require.Len(t, f.ledger.Contributions(c.ID), 2)
	f.checkInvariants(t, c.ID)

	_, err = f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice, Amount: 200})
	require.NoError(t, err)
	records := f.ledger.Contributions(c.ID)
	require.Len(t, records, 1)
	assert.Equal(t, bob, records[0].Contributor)
	f.checkInvariants(t, c.ID)
}

func TestNonFinalRefundLeavesDustForLastRefund(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 300)
	f.fund(t, bob, 200)
	c := f.open(t, "griefed", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 300)
	f.contribute(t, c.ID, bob, 200)
	f.fund(t, c.Vault(), 7)
	f.clock.Set(c.Deadline)

	resp, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(300), resp.Transferred, "non-final refund pays exactly the stake")
	assert.Equal(t, domain.Amount(207), f.ledger.Balance(c.Vault()))
	f.checkInvariants(t, c.ID)

	resp, err = f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: bob})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(207), resp.Transferred, "final refund sweeps the dust")
	assert.Equal(t, domain.Amount(0), f.ledger.Balance(c.Vault()))
}

func TestLastRefundSucceedsUnderMinimumBalance(t *testing.T) {
	f := newFixture(t, nil, memory.WithMinBalance(10))
	f.fund(t, alice, 300)
	c := f.open(t, "rent", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 300)
	f.fund(t, c.Vault(), 5)
	f.clock.Set(c.Deadline)

	// Refunding only the stake would strand 5 units below the minimum.
	resp, err := f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(305), resp.Transferred)
	assert.Empty(t, f.ledger.Contributions(c.ID))
}

func TestContributeOverflowIssuesNoTransfer(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, math.MaxInt64-10)
	f.fund(t, bob, 100)
	c := f.open(t, "huge", math.MaxInt64, time.Hour)
	f.contribute(t, c.ID, alice, math.MaxInt64-10)

	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: bob, Amount: 20})
	require.ErrorIs(t, err, domain.ErrArithmeticOverflow)

	assert.Equal(t, domain.Amount(100), f.ledger.Balance(bob))
	assert.Equal(t, domain.Amount(math.MaxInt64-10), f.ledger.Balance(c.Vault()))
	f.checkInvariants(t, c.ID)
}

func TestContributeTransferErrorPropagates(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 50)
	c := f.open(t, "broke", 1000, time.Hour)

	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: 100})
	var terr *domain.TransferError
	require.True(t, errors.As(err, &terr))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, alice, terr.From)
	assert.Equal(t, c.Vault(), terr.To)

	assert.Equal(t, domain.Amount(0), f.view(t, c.ID).Campaign.Raised)
	assert.Empty(t, f.ledger.Contributions(c.ID))
}

func TestContributeUnknownCampaign(t *testing.T) {
	f := newFixture(t, nil)
	f.fund(t, alice, 50)
	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{
		CampaignID: domain.NewCampaignID(creator, "ghost"), Contributor: alice, Amount: 10,
	})
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
	assert.Equal(t, domain.Amount(50), f.ledger.Balance(alice))
}

func TestEventsPublishedOnlyForCommittedOperations(t *testing.T) {
	publisher := mocks.NewMockEventPublisher(t)
	f := newFixture(t, publisher)
	f.fund(t, alice, 100)

	kind := func(k domain.EventKind) interface{} {
		return mock.MatchedBy(func(ev domain.Event) bool { return ev.Kind == k && ev.ID != "" })
	}
	publisher.EXPECT().Publish(mock.Anything, kind(domain.EventCampaignCreated)).Return(nil).Once()
	publisher.EXPECT().
		Publish(mock.Anything, kind(domain.EventContributed)).
		Run(func(_ context.Context, ev domain.Event) {
			assert.Equal(t, alice, ev.Account)
			assert.Equal(t, domain.Amount(60), ev.Amount)
			assert.Equal(t, domain.Amount(60), ev.Raised)
		}).
		Return(errors.New("broker down")).
		Once()
	publisher.EXPECT().Publish(mock.Anything, kind(domain.EventRefunded)).Return(nil).Once()

	c := f.open(t, "events", 1000, time.Hour)
	f.contribute(t, c.ID, alice, 60)

	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, Contributor: alice, Amount: 0})
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	f.clock.Set(c.Deadline)
	_, err = f.svc.Refund(context.Background(), port.RefundReq{CampaignID: c.ID, Contributor: alice})
	require.NoError(t, err)
}

func TestConcurrentContributionsAcrossCampaigns(t *testing.T) {
	f := newFixture(t, nil)
	first := f.open(t, "first", 10_000, time.Hour)
	second := f.open(t, "second", 10_000, time.Hour)

	contributors := []domain.AccountID{"c0", "c1", "c2", "c3", "c4"}
	for _, who := range contributors {
		f.fund(t, who, 1000)
	}

	var wg sync.WaitGroup
	for _, who := range contributors {
		for _, id := range []domain.CampaignID{first.ID, second.ID} {
			who, id := who, id
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 10; i++ {
					_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: id, Contributor: who, Amount: 5})
					assert.NoError(t, err)
				}
			}()
		}
	}
	wg.Wait()

	for _, id := range []domain.CampaignID{first.ID, second.ID} {
		v := f.view(t, id)
		assert.Equal(t, domain.Amount(250), v.Campaign.Raised)
		assert.Equal(t, domain.Amount(250), v.VaultBalance)
		assert.Len(t, f.ledger.Contributions(id), len(contributors))
		f.checkInvariants(t, id)
	}
	for _, who := range contributors {
		assert.Equal(t, domain.Amount(900), f.ledger.Balance(who))
	}
}

func TestContributionOfStranger(t *testing.T) {
	f := newFixture(t, nil)
	c := f.open(t, "quiet", 10, time.Hour)

	stake, err := f.svc.Contribution(context.Background(), c.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(0), stake.Amount)
	assert.Equal(t, c.ID, stake.CampaignID)

	_, err = f.svc.Contribution(context.Background(), domain.NewCampaignID(bob, "quiet"), bob)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}
