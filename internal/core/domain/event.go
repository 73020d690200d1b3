package domain

import "time"

// EventKind names an escrow outcome. It doubles as the AMQP routing key.
type EventKind string

const (
	EventCampaignCreated EventKind = "campaign.created"
	EventContributed     EventKind = "campaign.contributed"
	EventWithdrawn       EventKind = "campaign.withdrawn"
	EventRefunded        EventKind = "campaign.refunded"
)

// Event records a committed escrow operation. Amount is the value that
// actually moved, which for a sweeping refund or a withdrawal can exceed
// the bookkept stake.
type Event struct {
	ID         string     `json:"id"`
	Kind       EventKind  `json:"kind"`
	CampaignID CampaignID `json:"campaign_id"`
	Account    AccountID  `json:"account"`
	Amount     Amount     `json:"amount"`
	Raised     Amount     `json:"raised"`
	At         time.Time  `json:"at"`
}
