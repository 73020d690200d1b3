package domain

// Contribution is the outstanding stake of one contributor in one campaign.
// There is at most one record per (CampaignID, Contributor); it is created on
// the first contribution and removed once Amount returns to zero.
type Contribution struct {
	CampaignID  CampaignID
	Contributor AccountID
	Amount      Amount
}
