package usecase

import "crowdfund/internal/core/domain"

// campaignAuthority is the delegated signer for one campaign's vault. The
// type is unexported so only this package can mint one.
type campaignAuthority struct {
	campaign domain.CampaignID
}

func authorityFor(id domain.CampaignID) campaignAuthority {
	return campaignAuthority{campaign: id}
}

func (a campaignAuthority) ScopedTo() domain.CampaignID { return a.campaign }
