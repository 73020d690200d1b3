package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxNameLen bounds a campaign name in bytes.
const MaxNameLen = 32

const vaultPrefix = "vault:"

var campaignNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("crowdfund:campaign"))

// CampaignID identifies a campaign. It is derived from the creator and the
// campaign name, so the pair (creator, name) is the campaign's lookup key.
type CampaignID uuid.UUID

// NewCampaignID derives the id of the campaign named name run by creator.
func NewCampaignID(creator AccountID, name string) CampaignID {
	seed := make([]byte, 0, len(creator)+1+len(name))
	seed = append(seed, creator...)
	seed = append(seed, 0)
	seed = append(seed, name...)
	return CampaignID(uuid.NewSHA1(campaignNamespace, seed))
}

// ParseCampaignID parses the canonical string form of a campaign id.
func ParseCampaignID(s string) (CampaignID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CampaignID{}, err
	}
	return CampaignID(id), nil
}

// String returns the canonical UUID form.
func (id CampaignID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id as its canonical UUID form, so it reads the same
// in JSON bodies and events.
func (id CampaignID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses any form accepted by uuid.Parse.
func (id *CampaignID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// VaultAddress returns the ledger account holding the campaign's funds.
func VaultAddress(id CampaignID) AccountID {
	return AccountID(vaultPrefix + id.String())
}

// IsVaultAddress reports whether account is a campaign vault. Vaults can
// only be debited through a VaultAuthority.
func IsVaultAddress(account AccountID) bool {
	return strings.HasPrefix(string(account), vaultPrefix)
}

// State is the lifecycle position of a campaign.
type State string

const (
	StateOpen      State = "open"      // before deadline, accepting contributions
	StateEvaluable State = "evaluable" // at/after deadline, not yet settled
	StateWithdrawn State = "withdrawn" // goal met, creator claimed
	StateRefunding State = "refunding" // goal missed, stakes outstanding
	StateDrained   State = "drained"   // goal missed, every stake refunded
)

// Campaign is the aggregate fundraising record.
type Campaign struct {
	ID        CampaignID
	Creator   AccountID
	Name      string
	Goal      Amount
	Raised    Amount
	Deadline  time.Time
	Claimed   bool
	CreatedAt time.Time
}

// Vault returns the campaign's vault address.
func (c *Campaign) Vault() AccountID { return VaultAddress(c.ID) }

// Ended reports whether now is at or past the deadline.
func (c *Campaign) Ended(now time.Time) bool { return !now.Before(c.Deadline) }

// GoalMet reports whether the outstanding contributions reach the goal.
func (c *Campaign) GoalMet() bool { return c.Raised >= c.Goal }

// State computes the lifecycle state at now.
func (c *Campaign) State(now time.Time) State {
	switch {
	case c.Claimed:
		return StateWithdrawn
	case !c.Ended(now):
		return StateOpen
	case c.GoalMet():
		return StateEvaluable
	case c.Raised == 0:
		return StateDrained
	default:
		return StateRefunding
	}
}
